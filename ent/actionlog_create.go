// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/actionlog"
)

// ActionLogCreate is the builder for creating a ActionLog entity.
type ActionLogCreate struct {
	config
	mutation *ActionLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ActionLogCreate) SetUserID(v string) *ActionLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ActionLogCreate) SetToolName(v string) *ActionLogCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolParams sets the "tool_params" field.
func (_c *ActionLogCreate) SetToolParams(v map[string]interface{}) *ActionLogCreate {
	_c.mutation.SetToolParams(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ActionLogCreate) SetSuccess(v bool) *ActionLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ActionLogCreate) SetErrorKind(v string) *ActionLogCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableErrorKind(v *string) *ActionLogCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActionLogCreate) SetTimestamp(v time.Time) *ActionLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableTimestamp(v *time.Time) *ActionLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ActionLogCreate) SetContext(v map[string]interface{}) *ActionLogCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ActionLogCreate) SetSessionID(v string) *ActionLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableSessionID(v *string) *ActionLogCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionLogCreate) SetID(v string) *ActionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionLogMutation object of the builder.
func (_c *ActionLogCreate) Mutation() *ActionLogMutation {
	return _c.mutation
}

// Save creates the ActionLog in the database.
func (_c *ActionLogCreate) Save(ctx context.Context) (*ActionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionLogCreate) SaveX(ctx context.Context) *ActionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := actionlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActionLog.user_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ActionLog.tool_name"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ActionLog.success"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActionLog.timestamp"`)}
	}
	return nil
}

func (_c *ActionLogCreate) sqlSave(ctx context.Context) (*ActionLog, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionLogCreate) createSpec() (*ActionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionlog.Table, sqlgraph.NewFieldSpec(actionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(actionlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(actionlog.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolParams(); ok {
		_spec.SetField(actionlog.FieldToolParams, field.TypeJSON, value)
		_node.ToolParams = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(actionlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(actionlog.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(actionlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(actionlog.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(actionlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	return _node, _spec
}

// ActionLogCreateBulk is the builder for creating many ActionLog entities in bulk.
type ActionLogCreateBulk struct {
	config
	err      error
	builders []*ActionLogCreate
}

// Save creates the ActionLog entities in the database.
func (_c *ActionLogCreateBulk) Save(ctx context.Context) ([]*ActionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionLogMutation)
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
func (_c *ActionLogCreateBulk) SaveX(ctx context.Context) []*ActionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
