// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUID holds the string denoting the uid field in the database.
	FieldUID = "uid"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldInputMinutes holds the string denoting the input_minutes field in the database.
	FieldInputMinutes = "input_minutes"
	// FieldOutputMinutes holds the string denoting the output_minutes field in the database.
	FieldOutputMinutes = "output_minutes"
	// FieldMeetsRequirement holds the string denoting the meets_requirement field in the database.
	FieldMeetsRequirement = "meets_requirement"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "study_sessions"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_sessions"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldUID,
	FieldDate,
	FieldInputMinutes,
	FieldOutputMinutes,
	FieldMeetsRequirement,
	FieldPosition,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "study_sessions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"subject_sessions",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	UIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultInputMinutes holds the default value on creation for the "input_minutes" field.
	DefaultInputMinutes int
	// DefaultOutputMinutes holds the default value on creation for the "output_minutes" field.
	DefaultOutputMinutes int
	// DefaultMeetsRequirement holds the default value on creation for the "meets_requirement" field.
	DefaultMeetsRequirement bool
)

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUID orders the results by the uid field.
func ByUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByInputMinutes orders the results by the input_minutes field.
func ByInputMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputMinutes, opts...).ToFunc()
}

// ByOutputMinutes orders the results by the output_minutes field.
func ByOutputMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputMinutes, opts...).ToFunc()
}

// ByMeetsRequirement orders the results by the meets_requirement field.
func ByMeetsRequirement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetsRequirement, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
