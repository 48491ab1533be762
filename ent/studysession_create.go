// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ashwin/studytrack/ent/studysession"
	"github.com/ashwin/studytrack/ent/subject"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetUID sets the "uid" field.
func (_c *StudySessionCreate) SetUID(v string) *StudySessionCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *StudySessionCreate) SetDate(v string) *StudySessionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetInputMinutes sets the "input_minutes" field.
func (_c *StudySessionCreate) SetInputMinutes(v int) *StudySessionCreate {
	_c.mutation.SetInputMinutes(v)
	return _c
}

// SetNillableInputMinutes sets the "input_minutes" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableInputMinutes(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetInputMinutes(*v)
	}
	return _c
}

// SetOutputMinutes sets the "output_minutes" field.
func (_c *StudySessionCreate) SetOutputMinutes(v int) *StudySessionCreate {
	_c.mutation.SetOutputMinutes(v)
	return _c
}

// SetNillableOutputMinutes sets the "output_minutes" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableOutputMinutes(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetOutputMinutes(*v)
	}
	return _c
}

// SetMeetsRequirement sets the "meets_requirement" field.
func (_c *StudySessionCreate) SetMeetsRequirement(v bool) *StudySessionCreate {
	_c.mutation.SetMeetsRequirement(v)
	return _c
}

// SetNillableMeetsRequirement sets the "meets_requirement" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableMeetsRequirement(v *bool) *StudySessionCreate {
	if v != nil {
		_c.SetMeetsRequirement(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *StudySessionCreate) SetPosition(v int) *StudySessionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSubjectID sets the "subject" edge to the Subject entity by ID.
func (_c *StudySessionCreate) SetSubjectID(id int) *StudySessionCreate {
	_c.mutation.SetSubjectID(id)
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *StudySessionCreate) SetSubject(v *Subject) *StudySessionCreate {
	return _c.SetSubjectID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.InputMinutes(); !ok {
		v := studysession.DefaultInputMinutes
		_c.mutation.SetInputMinutes(v)
	}
	if _, ok := _c.mutation.OutputMinutes(); !ok {
		v := studysession.DefaultOutputMinutes
		_c.mutation.SetOutputMinutes(v)
	}
	if _, ok := _c.mutation.MeetsRequirement(); !ok {
		v := studysession.DefaultMeetsRequirement
		_c.mutation.SetMeetsRequirement(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "StudySession.uid"`)}
	}
	if v, ok := _c.mutation.UID(); ok {
		if err := studysession.UIDValidator(v); err != nil {
			return &ValidationError{Name: "uid", err: fmt.Errorf(`ent: validator failed for field "StudySession.uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StudySession.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := studysession.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "StudySession.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputMinutes(); !ok {
		return &ValidationError{Name: "input_minutes", err: errors.New(`ent: missing required field "StudySession.input_minutes"`)}
	}
	if _, ok := _c.mutation.OutputMinutes(); !ok {
		return &ValidationError{Name: "output_minutes", err: errors.New(`ent: missing required field "StudySession.output_minutes"`)}
	}
	if _, ok := _c.mutation.MeetsRequirement(); !ok {
		return &ValidationError{Name: "meets_requirement", err: errors.New(`ent: missing required field "StudySession.meets_requirement"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "StudySession.position"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "StudySession.subject"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(studysession.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.InputMinutes(); ok {
		_spec.SetField(studysession.FieldInputMinutes, field.TypeInt, value)
		_node.InputMinutes = value
	}
	if value, ok := _c.mutation.OutputMinutes(); ok {
		_spec.SetField(studysession.FieldOutputMinutes, field.TypeInt, value)
		_node.OutputMinutes = value
	}
	if value, ok := _c.mutation.MeetsRequirement(); ok {
		_spec.SetField(studysession.FieldMeetsRequirement, field.TypeBool, value)
		_node.MeetsRequirement = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(studysession.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_node.subject_sessions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
