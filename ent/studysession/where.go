// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ashwin/studytrack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// InputMinutes applies equality check predicate on the "input_minutes" field. It's identical to InputMinutesEQ.
func InputMinutes(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldInputMinutes, v))
}

// OutputMinutes applies equality check predicate on the "output_minutes" field. It's identical to OutputMinutesEQ.
func OutputMinutes(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldOutputMinutes, v))
}

// MeetsRequirement applies equality check predicate on the "meets_requirement" field. It's identical to MeetsRequirementEQ.
func MeetsRequirement(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldMeetsRequirement, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldPosition, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldUID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldDate, v))
}

// InputMinutesEQ applies the EQ predicate on the "input_minutes" field.
func InputMinutesEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldInputMinutes, v))
}

// InputMinutesNEQ applies the NEQ predicate on the "input_minutes" field.
func InputMinutesNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldInputMinutes, v))
}

// InputMinutesIn applies the In predicate on the "input_minutes" field.
func InputMinutesIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldInputMinutes, vs...))
}

// InputMinutesNotIn applies the NotIn predicate on the "input_minutes" field.
func InputMinutesNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldInputMinutes, vs...))
}

// InputMinutesGT applies the GT predicate on the "input_minutes" field.
func InputMinutesGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldInputMinutes, v))
}

// InputMinutesGTE applies the GTE predicate on the "input_minutes" field.
func InputMinutesGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldInputMinutes, v))
}

// InputMinutesLT applies the LT predicate on the "input_minutes" field.
func InputMinutesLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldInputMinutes, v))
}

// InputMinutesLTE applies the LTE predicate on the "input_minutes" field.
func InputMinutesLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldInputMinutes, v))
}

// OutputMinutesEQ applies the EQ predicate on the "output_minutes" field.
func OutputMinutesEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldOutputMinutes, v))
}

// OutputMinutesNEQ applies the NEQ predicate on the "output_minutes" field.
func OutputMinutesNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldOutputMinutes, v))
}

// OutputMinutesIn applies the In predicate on the "output_minutes" field.
func OutputMinutesIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldOutputMinutes, vs...))
}

// OutputMinutesNotIn applies the NotIn predicate on the "output_minutes" field.
func OutputMinutesNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldOutputMinutes, vs...))
}

// OutputMinutesGT applies the GT predicate on the "output_minutes" field.
func OutputMinutesGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldOutputMinutes, v))
}

// OutputMinutesGTE applies the GTE predicate on the "output_minutes" field.
func OutputMinutesGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldOutputMinutes, v))
}

// OutputMinutesLT applies the LT predicate on the "output_minutes" field.
func OutputMinutesLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldOutputMinutes, v))
}

// OutputMinutesLTE applies the LTE predicate on the "output_minutes" field.
func OutputMinutesLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldOutputMinutes, v))
}

// MeetsRequirementEQ applies the EQ predicate on the "meets_requirement" field.
func MeetsRequirementEQ(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldMeetsRequirement, v))
}

// MeetsRequirementNEQ applies the NEQ predicate on the "meets_requirement" field.
func MeetsRequirementNEQ(v bool) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldMeetsRequirement, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldPosition, v))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
