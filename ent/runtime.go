// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/ashwin/studytrack/ent/schema"
	"github.com/ashwin/studytrack/ent/studysession"
	"github.com/ashwin/studytrack/ent/subject"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescUID is the schema descriptor for uid field.
	studysessionDescUID := studysessionFields[0].Descriptor()
	// studysession.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	studysession.UIDValidator = studysessionDescUID.Validators[0].(func(string) error)
	// studysessionDescDate is the schema descriptor for date field.
	studysessionDescDate := studysessionFields[1].Descriptor()
	// studysession.DateValidator is a validator for the "date" field. It is called by the builders before save.
	studysession.DateValidator = studysessionDescDate.Validators[0].(func(string) error)
	// studysessionDescInputMinutes is the schema descriptor for input_minutes field.
	studysessionDescInputMinutes := studysessionFields[2].Descriptor()
	// studysession.DefaultInputMinutes holds the default value on creation for the input_minutes field.
	studysession.DefaultInputMinutes = studysessionDescInputMinutes.Default.(int)
	// studysessionDescOutputMinutes is the schema descriptor for output_minutes field.
	studysessionDescOutputMinutes := studysessionFields[3].Descriptor()
	// studysession.DefaultOutputMinutes holds the default value on creation for the output_minutes field.
	studysession.DefaultOutputMinutes = studysessionDescOutputMinutes.Default.(int)
	// studysessionDescMeetsRequirement is the schema descriptor for meets_requirement field.
	studysessionDescMeetsRequirement := studysessionFields[4].Descriptor()
	// studysession.DefaultMeetsRequirement holds the default value on creation for the meets_requirement field.
	studysession.DefaultMeetsRequirement = studysessionDescMeetsRequirement.Default.(bool)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescUID is the schema descriptor for uid field.
	subjectDescUID := subjectFields[0].Descriptor()
	// subject.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	subject.UIDValidator = subjectDescUID.Validators[0].(func(string) error)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[1].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescLevel is the schema descriptor for level field.
	subjectDescLevel := subjectFields[2].Descriptor()
	// subject.DefaultLevel holds the default value on creation for the level field.
	subject.DefaultLevel = subjectDescLevel.Default.(int)
	// subjectDescStreak is the schema descriptor for streak field.
	subjectDescStreak := subjectFields[3].Descriptor()
	// subject.DefaultStreak holds the default value on creation for the streak field.
	subject.DefaultStreak = subjectDescStreak.Default.(int)
	// subjectDescDaysCompleted is the schema descriptor for days_completed field.
	subjectDescDaysCompleted := subjectFields[4].Descriptor()
	// subject.DefaultDaysCompleted holds the default value on creation for the days_completed field.
	subject.DefaultDaysCompleted = subjectDescDaysCompleted.Default.(int)
	// subjectDescIsArchived is the schema descriptor for is_archived field.
	subjectDescIsArchived := subjectFields[5].Descriptor()
	// subject.DefaultIsArchived holds the default value on creation for the is_archived field.
	subject.DefaultIsArchived = subjectDescIsArchived.Default.(bool)
}
