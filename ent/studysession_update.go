// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ashwin/studytrack/ent/predicate"
	"github.com/ashwin/studytrack/ent/studysession"
	"github.com/ashwin/studytrack/ent/subject"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUID sets the "uid" field.
func (_u *StudySessionUpdate) SetUID(v string) *StudySessionUpdate {
	_u.mutation.SetUID(v)
	return _u
}

// SetNillableUID sets the "uid" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableUID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetUID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdate) SetDate(v string) *StudySessionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDate(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetInputMinutes sets the "input_minutes" field.
func (_u *StudySessionUpdate) SetInputMinutes(v int) *StudySessionUpdate {
	_u.mutation.ResetInputMinutes()
	_u.mutation.SetInputMinutes(v)
	return _u
}

// SetNillableInputMinutes sets the "input_minutes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableInputMinutes(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetInputMinutes(*v)
	}
	return _u
}

// AddInputMinutes adds value to the "input_minutes" field.
func (_u *StudySessionUpdate) AddInputMinutes(v int) *StudySessionUpdate {
	_u.mutation.AddInputMinutes(v)
	return _u
}

// SetOutputMinutes sets the "output_minutes" field.
func (_u *StudySessionUpdate) SetOutputMinutes(v int) *StudySessionUpdate {
	_u.mutation.ResetOutputMinutes()
	_u.mutation.SetOutputMinutes(v)
	return _u
}

// SetNillableOutputMinutes sets the "output_minutes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableOutputMinutes(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetOutputMinutes(*v)
	}
	return _u
}

// AddOutputMinutes adds value to the "output_minutes" field.
func (_u *StudySessionUpdate) AddOutputMinutes(v int) *StudySessionUpdate {
	_u.mutation.AddOutputMinutes(v)
	return _u
}

// SetMeetsRequirement sets the "meets_requirement" field.
func (_u *StudySessionUpdate) SetMeetsRequirement(v bool) *StudySessionUpdate {
	_u.mutation.SetMeetsRequirement(v)
	return _u
}

// SetNillableMeetsRequirement sets the "meets_requirement" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableMeetsRequirement(v *bool) *StudySessionUpdate {
	if v != nil {
		_u.SetMeetsRequirement(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *StudySessionUpdate) SetPosition(v int) *StudySessionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillablePosition(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *StudySessionUpdate) AddPosition(v int) *StudySessionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSubjectID sets the "subject" edge to the Subject entity by ID.
func (_u *StudySessionUpdate) SetSubjectID(id int) *StudySessionUpdate {
	_u.mutation.SetSubjectID(id)
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *StudySessionUpdate) SetSubject(v *Subject) *StudySessionUpdate {
	return _u.SetSubjectID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *StudySessionUpdate) ClearSubject() *StudySessionUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.UID(); ok {
		if err := studysession.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "StudySession.uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := studysession.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "StudySession.date": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudySession.subject"`)
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UID(); ok {
		_spec.SetField(studysession.FieldUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMinutes(); ok {
		_spec.SetField(studysession.FieldInputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputMinutes(); ok {
		_spec.AddField(studysession.FieldInputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputMinutes(); ok {
		_spec.SetField(studysession.FieldOutputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputMinutes(); ok {
		_spec.AddField(studysession.FieldOutputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeetsRequirement(); ok {
		_spec.SetField(studysession.FieldMeetsRequirement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(studysession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(studysession.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.SubjectTable,
			Columns: []string{studysession.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.SubjectTable,
			Columns: []string{studysession.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetUID sets the "uid" field.
func (_u *StudySessionUpdateOne) SetUID(v string) *StudySessionUpdateOne {
	_u.mutation.SetUID(v)
	return _u
}

// SetNillableUID sets the "uid" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableUID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetUID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdateOne) SetDate(v string) *StudySessionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDate(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetInputMinutes sets the "input_minutes" field.
func (_u *StudySessionUpdateOne) SetInputMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.ResetInputMinutes()
	_u.mutation.SetInputMinutes(v)
	return _u
}

// SetNillableInputMinutes sets the "input_minutes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableInputMinutes(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetInputMinutes(*v)
	}
	return _u
}

// AddInputMinutes adds value to the "input_minutes" field.
func (_u *StudySessionUpdateOne) AddInputMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.AddInputMinutes(v)
	return _u
}

// SetOutputMinutes sets the "output_minutes" field.
func (_u *StudySessionUpdateOne) SetOutputMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.ResetOutputMinutes()
	_u.mutation.SetOutputMinutes(v)
	return _u
}

// SetNillableOutputMinutes sets the "output_minutes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableOutputMinutes(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetOutputMinutes(*v)
	}
	return _u
}

// AddOutputMinutes adds value to the "output_minutes" field.
func (_u *StudySessionUpdateOne) AddOutputMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.AddOutputMinutes(v)
	return _u
}

// SetMeetsRequirement sets the "meets_requirement" field.
func (_u *StudySessionUpdateOne) SetMeetsRequirement(v bool) *StudySessionUpdateOne {
	_u.mutation.SetMeetsRequirement(v)
	return _u
}

// SetNillableMeetsRequirement sets the "meets_requirement" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableMeetsRequirement(v *bool) *StudySessionUpdateOne {
	if v != nil {
		_u.SetMeetsRequirement(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *StudySessionUpdateOne) SetPosition(v int) *StudySessionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillablePosition(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *StudySessionUpdateOne) AddPosition(v int) *StudySessionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSubjectID sets the "subject" edge to the Subject entity by ID.
func (_u *StudySessionUpdateOne) SetSubjectID(id int) *StudySessionUpdateOne {
	_u.mutation.SetSubjectID(id)
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *StudySessionUpdateOne) SetSubject(v *Subject) *StudySessionUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *StudySessionUpdateOne) ClearSubject() *StudySessionUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.UID(); ok {
		if err := studysession.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "StudySession.uid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := studysession.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "StudySession.date": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudySession.subject"`)
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UID(); ok {
		_spec.SetField(studysession.FieldUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputMinutes(); ok {
		_spec.SetField(studysession.FieldInputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputMinutes(); ok {
		_spec.AddField(studysession.FieldInputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputMinutes(); ok {
		_spec.SetField(studysession.FieldOutputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputMinutes(); ok {
		_spec.AddField(studysession.FieldOutputMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeetsRequirement(); ok {
		_spec.SetField(studysession.FieldMeetsRequirement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(studysession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(studysession.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.SubjectTable,
			Columns: []string{studysession.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.SubjectTable,
			Columns: []string{studysession.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
