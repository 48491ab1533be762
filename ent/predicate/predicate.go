// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)
