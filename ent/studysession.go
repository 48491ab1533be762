// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ashwin/studytrack/ent/studysession"
	"github.com/ashwin/studytrack/ent/subject"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable UUID exposed to the domain layer
	UID string `json:"uid,omitempty"`
	// ISO calendar date (YYYY-MM-DD), no time component
	Date string `json:"date,omitempty"`
	// Minutes of input practice (reading, listening)
	InputMinutes int `json:"input_minutes,omitempty"`
	// Minutes of output practice (writing, speaking)
	OutputMinutes int `json:"output_minutes,omitempty"`
	// Whether the session satisfied the level requirement when logged
	MeetsRequirement bool `json:"meets_requirement,omitempty"`
	// Append order within the subject's history
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudySessionQuery when eager-loading is set.
	Edges            StudySessionEdges `json:"edges"`
	subject_sessions *int
	selectValues     sql.SelectValues
}

// StudySessionEdges holds the relations/edges for other nodes in the graph.
type StudySessionEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldMeetsRequirement:
			values[i] = new(sql.NullBool)
		case studysession.FieldID, studysession.FieldInputMinutes, studysession.FieldOutputMinutes, studysession.FieldPosition:
			values[i] = new(sql.NullInt64)
		case studysession.FieldUID, studysession.FieldDate:
			values[i] = new(sql.NullString)
		case studysession.ForeignKeys[0]: // subject_sessions
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studysession.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case studysession.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case studysession.FieldInputMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_minutes", values[i])
			} else if value.Valid {
				_m.InputMinutes = int(value.Int64)
			}
		case studysession.FieldOutputMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_minutes", values[i])
			} else if value.Valid {
				_m.OutputMinutes = int(value.Int64)
			}
		case studysession.FieldMeetsRequirement:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field meets_requirement", values[i])
			} else if value.Valid {
				_m.MeetsRequirement = value.Bool
			}
		case studysession.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case studysession.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field subject_sessions", value)
			} else if value.Valid {
				_m.subject_sessions = new(int)
				*_m.subject_sessions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the StudySession entity.
func (_m *StudySession) QuerySubject() *SubjectQuery {
	return NewStudySessionClient(_m.config).QuerySubject(_m)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("input_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputMinutes))
	builder.WriteString(", ")
	builder.WriteString("output_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputMinutes))
	builder.WriteString(", ")
	builder.WriteString("meets_requirement=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeetsRequirement))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
