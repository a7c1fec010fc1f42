// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/actionlog"
	"github.com/stewardhq/steward/ent/predicate"
)

// ActionLogUpdate is the builder for updating ActionLog entities.
type ActionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActionLogMutation
}

// Where appends a list predicates to the ActionLogUpdate builder.
func (_u *ActionLogUpdate) Where(ps ...predicate.ActionLog) *ActionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ActionLogUpdate) SetToolName(v string) *ActionLogUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ActionLogUpdate) SetNillableToolName(v *string) *ActionLogUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolParams sets the "tool_params" field.
func (_u *ActionLogUpdate) SetToolParams(v map[string]interface{}) *ActionLogUpdate {
	_u.mutation.SetToolParams(v)
	return _u
}

// ClearToolParams clears the value of the "tool_params" field.
func (_u *ActionLogUpdate) ClearToolParams() *ActionLogUpdate {
	_u.mutation.ClearToolParams()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ActionLogUpdate) SetSuccess(v bool) *ActionLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ActionLogUpdate) SetNillableSuccess(v *bool) *ActionLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ActionLogUpdate) SetErrorKind(v string) *ActionLogUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ActionLogUpdate) SetNillableErrorKind(v *string) *ActionLogUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ActionLogUpdate) ClearErrorKind() *ActionLogUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ActionLogUpdate) SetTimestamp(v time.Time) *ActionLogUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ActionLogUpdate) SetNillableTimestamp(v *time.Time) *ActionLogUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ActionLogUpdate) SetContext(v map[string]interface{}) *ActionLogUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActionLogUpdate) ClearContext() *ActionLogUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActionLogUpdate) SetSessionID(v string) *ActionLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActionLogUpdate) SetNillableSessionID(v *string) *ActionLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ActionLogUpdate) ClearSessionID() *ActionLogUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ActionLogMutation object of the builder.
func (_u *ActionLogUpdate) Mutation() *ActionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionlog.Table, actionlog.Columns, sqlgraph.NewFieldSpec(actionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(actionlog.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolParams(); ok {
		_spec.SetField(actionlog.FieldToolParams, field.TypeJSON, value)
	}
	if _u.mutation.ToolParamsCleared() {
		_spec.ClearField(actionlog.FieldToolParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(actionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(actionlog.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(actionlog.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(actionlog.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(actionlog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(actionlog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(actionlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(actionlog.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionLogUpdateOne is the builder for updating a single ActionLog entity.
type ActionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionLogMutation
}

// SetToolName sets the "tool_name" field.
func (_u *ActionLogUpdateOne) SetToolName(v string) *ActionLogUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ActionLogUpdateOne) SetNillableToolName(v *string) *ActionLogUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolParams sets the "tool_params" field.
func (_u *ActionLogUpdateOne) SetToolParams(v map[string]interface{}) *ActionLogUpdateOne {
	_u.mutation.SetToolParams(v)
	return _u
}

// ClearToolParams clears the value of the "tool_params" field.
func (_u *ActionLogUpdateOne) ClearToolParams() *ActionLogUpdateOne {
	_u.mutation.ClearToolParams()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ActionLogUpdateOne) SetSuccess(v bool) *ActionLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ActionLogUpdateOne) SetNillableSuccess(v *bool) *ActionLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ActionLogUpdateOne) SetErrorKind(v string) *ActionLogUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ActionLogUpdateOne) SetNillableErrorKind(v *string) *ActionLogUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ActionLogUpdateOne) ClearErrorKind() *ActionLogUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ActionLogUpdateOne) SetTimestamp(v time.Time) *ActionLogUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ActionLogUpdateOne) SetNillableTimestamp(v *time.Time) *ActionLogUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ActionLogUpdateOne) SetContext(v map[string]interface{}) *ActionLogUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActionLogUpdateOne) ClearContext() *ActionLogUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActionLogUpdateOne) SetSessionID(v string) *ActionLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActionLogUpdateOne) SetNillableSessionID(v *string) *ActionLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ActionLogUpdateOne) ClearSessionID() *ActionLogUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ActionLogMutation object of the builder.
func (_u *ActionLogUpdateOne) Mutation() *ActionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionLogUpdate builder.
func (_u *ActionLogUpdateOne) Where(ps ...predicate.ActionLog) *ActionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionLogUpdateOne) Select(field string, fields ...string) *ActionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionLog entity.
func (_u *ActionLogUpdateOne) Save(ctx context.Context) (*ActionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionLogUpdateOne) SaveX(ctx context.Context) *ActionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionLogUpdateOne) sqlSave(ctx context.Context) (_node *ActionLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionlog.Table, actionlog.Columns, sqlgraph.NewFieldSpec(actionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionlog.FieldID)
		for _, f := range fields {
			if !actionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionlog.FieldID {
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
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(actionlog.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolParams(); ok {
		_spec.SetField(actionlog.FieldToolParams, field.TypeJSON, value)
	}
	if _u.mutation.ToolParamsCleared() {
		_spec.ClearField(actionlog.FieldToolParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(actionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(actionlog.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(actionlog.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(actionlog.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(actionlog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(actionlog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(actionlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(actionlog.FieldSessionID, field.TypeString)
	}
	_node = &ActionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
