// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/turn"
)

// TurnUpdate is the builder for updating Turn entities.
type TurnUpdate struct {
	config
	hooks    []Hook
	mutation *TurnMutation
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdate) Where(ps ...predicate.Turn) *TurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserText sets the "user_text" field.
func (_u *TurnUpdate) SetUserText(v string) *TurnUpdate {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableUserText(v *string) *TurnUpdate {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// SetAssistantText sets the "assistant_text" field.
func (_u *TurnUpdate) SetAssistantText(v string) *TurnUpdate {
	_u.mutation.SetAssistantText(v)
	return _u
}

// SetNillableAssistantText sets the "assistant_text" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableAssistantText(v *string) *TurnUpdate {
	if v != nil {
		_u.SetAssistantText(*v)
	}
	return _u
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdate) Mutation() *TurnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdate) check() error {
	if _u.mutation.EpisodeCleared() && len(_u.mutation.EpisodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Turn.episode"`)
	}
	return nil
}

func (_u *TurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(turn.FieldUserText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantText(); ok {
		_spec.SetField(turn.FieldAssistantText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnUpdateOne is the builder for updating a single Turn entity.
type TurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnMutation
}

// SetUserText sets the "user_text" field.
func (_u *TurnUpdateOne) SetUserText(v string) *TurnUpdateOne {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableUserText(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// SetAssistantText sets the "assistant_text" field.
func (_u *TurnUpdateOne) SetAssistantText(v string) *TurnUpdateOne {
	_u.mutation.SetAssistantText(v)
	return _u
}

// SetNillableAssistantText sets the "assistant_text" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableAssistantText(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetAssistantText(*v)
	}
	return _u
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdateOne) Mutation() *TurnMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdateOne) Where(ps ...predicate.Turn) *TurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnUpdateOne) Select(field string, fields ...string) *TurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Turn entity.
func (_u *TurnUpdateOne) Save(ctx context.Context) (*Turn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdateOne) SaveX(ctx context.Context) *Turn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdateOne) check() error {
	if _u.mutation.EpisodeCleared() && len(_u.mutation.EpisodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Turn.episode"`)
	}
	return nil
}

func (_u *TurnUpdateOne) sqlSave(ctx context.Context) (_node *Turn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Turn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turn.FieldID)
		for _, f := range fields {
			if !turn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turn.FieldID {
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
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(turn.FieldUserText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantText(); ok {
		_spec.SetField(turn.FieldAssistantText, field.TypeString, value)
	}
	_node = &Turn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
