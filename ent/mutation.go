// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/actionlog"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/event"
	"github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/ent/interaction"
	"github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/turn"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionLog   = "ActionLog"
	TypeEpisode     = "Episode"
	TypeEvent       = "Event"
	TypeFeedback    = "Feedback"
	TypeInteraction = "Interaction"
	TypeMemoryFact  = "MemoryFact"
	TypeTurn        = "Turn"
)

// ActionLogMutation represents an operation that mutates the ActionLog nodes in the graph.
type ActionLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	tool_name     *string
	tool_params   *map[string]interface{}
	success       *bool
	error_kind    *string
	timestamp     *time.Time
	context       *map[string]interface{}
	session_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActionLog, error)
	predicates    []predicate.ActionLog
}

var _ ent.Mutation = (*ActionLogMutation)(nil)

// actionlogOption allows management of the mutation configuration using functional options.
type actionlogOption func(*ActionLogMutation)

// newActionLogMutation creates new mutation for the ActionLog entity.
func newActionLogMutation(c config, op Op, opts ...actionlogOption) *ActionLogMutation {
	m := &ActionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionLogID sets the ID field of the mutation.
func withActionLogID(id string) actionlogOption {
	return func(m *ActionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionLog
		)
		m.oldValue = func(ctx context.Context) (*ActionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionLog sets the old ActionLog of the mutation.
func withActionLog(node *ActionLog) actionlogOption {
	return func(m *ActionLogMutation) {
		m.oldValue = func(context.Context) (*ActionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionLog entities.
func (m *ActionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ActionLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActionLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActionLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetToolName sets the "tool_name" field.
func (m *ActionLogMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ActionLogMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ActionLogMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolParams sets the "tool_params" field.
func (m *ActionLogMutation) SetToolParams(value map[string]interface{}) {
	m.tool_params = &value
}

// ToolParams returns the value of the "tool_params" field in the mutation.
func (m *ActionLogMutation) ToolParams() (r map[string]interface{}, exists bool) {
	v := m.tool_params
	if v == nil {
		return
	}
	return *v, true
}

// OldToolParams returns the old "tool_params" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldToolParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolParams: %w", err)
	}
	return oldValue.ToolParams, nil
}

// ClearToolParams clears the value of the "tool_params" field.
func (m *ActionLogMutation) ClearToolParams() {
	m.tool_params = nil
	m.clearedFields[actionlog.FieldToolParams] = struct{}{}
}

// ToolParamsCleared returns if the "tool_params" field was cleared in this mutation.
func (m *ActionLogMutation) ToolParamsCleared() bool {
	_, ok := m.clearedFields[actionlog.FieldToolParams]
	return ok
}

// ResetToolParams resets all changes to the "tool_params" field.
func (m *ActionLogMutation) ResetToolParams() {
	m.tool_params = nil
	delete(m.clearedFields, actionlog.FieldToolParams)
}

// SetSuccess sets the "success" field.
func (m *ActionLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ActionLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ActionLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *ActionLogMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ActionLogMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ActionLogMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[actionlog.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ActionLogMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[actionlog.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ActionLogMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, actionlog.FieldErrorKind)
}

// SetTimestamp sets the "timestamp" field.
func (m *ActionLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ActionLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ActionLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetContext sets the "context" field.
func (m *ActionLogMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ActionLogMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ActionLogMutation) ClearContext() {
	m.context = nil
	m.clearedFields[actionlog.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ActionLogMutation) ContextCleared() bool {
	_, ok := m.clearedFields[actionlog.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ActionLogMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, actionlog.FieldContext)
}

// SetSessionID sets the "session_id" field.
func (m *ActionLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActionLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ActionLogMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[actionlog.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ActionLogMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[actionlog.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActionLogMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, actionlog.FieldSessionID)
}

// Where appends a list predicates to the ActionLogMutation builder.
func (m *ActionLogMutation) Where(ps ...predicate.ActionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionLog).
func (m *ActionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, actionlog.FieldUserID)
	}
	if m.tool_name != nil {
		fields = append(fields, actionlog.FieldToolName)
	}
	if m.tool_params != nil {
		fields = append(fields, actionlog.FieldToolParams)
	}
	if m.success != nil {
		fields = append(fields, actionlog.FieldSuccess)
	}
	if m.error_kind != nil {
		fields = append(fields, actionlog.FieldErrorKind)
	}
	if m.timestamp != nil {
		fields = append(fields, actionlog.FieldTimestamp)
	}
	if m.context != nil {
		fields = append(fields, actionlog.FieldContext)
	}
	if m.session_id != nil {
		fields = append(fields, actionlog.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionlog.FieldUserID:
		return m.UserID()
	case actionlog.FieldToolName:
		return m.ToolName()
	case actionlog.FieldToolParams:
		return m.ToolParams()
	case actionlog.FieldSuccess:
		return m.Success()
	case actionlog.FieldErrorKind:
		return m.ErrorKind()
	case actionlog.FieldTimestamp:
		return m.Timestamp()
	case actionlog.FieldContext:
		return m.Context()
	case actionlog.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionlog.FieldUserID:
		return m.OldUserID(ctx)
	case actionlog.FieldToolName:
		return m.OldToolName(ctx)
	case actionlog.FieldToolParams:
		return m.OldToolParams(ctx)
	case actionlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case actionlog.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case actionlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case actionlog.FieldContext:
		return m.OldContext(ctx)
	case actionlog.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown ActionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case actionlog.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case actionlog.FieldToolParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolParams(v)
		return nil
	case actionlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case actionlog.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case actionlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case actionlog.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case actionlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown ActionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionlog.FieldToolParams) {
		fields = append(fields, actionlog.FieldToolParams)
	}
	if m.FieldCleared(actionlog.FieldErrorKind) {
		fields = append(fields, actionlog.FieldErrorKind)
	}
	if m.FieldCleared(actionlog.FieldContext) {
		fields = append(fields, actionlog.FieldContext)
	}
	if m.FieldCleared(actionlog.FieldSessionID) {
		fields = append(fields, actionlog.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionLogMutation) ClearField(name string) error {
	switch name {
	case actionlog.FieldToolParams:
		m.ClearToolParams()
		return nil
	case actionlog.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case actionlog.FieldContext:
		m.ClearContext()
		return nil
	case actionlog.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown ActionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionLogMutation) ResetField(name string) error {
	switch name {
	case actionlog.FieldUserID:
		m.ResetUserID()
		return nil
	case actionlog.FieldToolName:
		m.ResetToolName()
		return nil
	case actionlog.FieldToolParams:
		m.ResetToolParams()
		return nil
	case actionlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case actionlog.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case actionlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case actionlog.FieldContext:
		m.ResetContext()
		return nil
	case actionlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown ActionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionLog edge %s", name)
}

// EpisodeMutation represents an operation that mutates the Episode nodes in the graph.
type EpisodeMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	context_type       *episode.ContextType
	status             *episode.Status
	started_at         *time.Time
	last_activity_at   *time.Time
	timeout_minutes    *int
	addtimeout_minutes *int
	message_count      *int
	addmessage_count   *int
	summary            *string
	closed_at          *time.Time
	clearedFields      map[string]struct{}
	turns              map[string]struct{}
	removedturns       map[string]struct{}
	clearedturns       bool
	done               bool
	oldValue           func(context.Context) (*Episode, error)
	predicates         []predicate.Episode
}

var _ ent.Mutation = (*EpisodeMutation)(nil)

// episodeOption allows management of the mutation configuration using functional options.
type episodeOption func(*EpisodeMutation)

// newEpisodeMutation creates new mutation for the Episode entity.
func newEpisodeMutation(c config, op Op, opts ...episodeOption) *EpisodeMutation {
	m := &EpisodeMutation{
		config:        c,
		op:            op,
		typ:           TypeEpisode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEpisodeID sets the ID field of the mutation.
func withEpisodeID(id string) episodeOption {
	return func(m *EpisodeMutation) {
		var (
			err   error
			once  sync.Once
			value *Episode
		)
		m.oldValue = func(ctx context.Context) (*Episode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Episode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEpisode sets the old Episode of the mutation.
func withEpisode(node *Episode) episodeOption {
	return func(m *EpisodeMutation) {
		m.oldValue = func(context.Context) (*Episode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EpisodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EpisodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Episode entities.
func (m *EpisodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EpisodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EpisodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Episode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EpisodeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EpisodeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EpisodeMutation) ResetUserID() {
	m.user_id = nil
}

// SetContextType sets the "context_type" field.
func (m *EpisodeMutation) SetContextType(et episode.ContextType) {
	m.context_type = &et
}

// ContextType returns the value of the "context_type" field in the mutation.
func (m *EpisodeMutation) ContextType() (r episode.ContextType, exists bool) {
	v := m.context_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContextType returns the old "context_type" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldContextType(ctx context.Context) (v episode.ContextType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextType: %w", err)
	}
	return oldValue.ContextType, nil
}

// ResetContextType resets all changes to the "context_type" field.
func (m *EpisodeMutation) ResetContextType() {
	m.context_type = nil
}

// SetStatus sets the "status" field.
func (m *EpisodeMutation) SetStatus(e episode.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EpisodeMutation) Status() (r episode.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldStatus(ctx context.Context) (v episode.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EpisodeMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *EpisodeMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EpisodeMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EpisodeMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *EpisodeMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *EpisodeMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *EpisodeMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (m *EpisodeMutation) SetTimeoutMinutes(i int) {
	m.timeout_minutes = &i
	m.addtimeout_minutes = nil
}

// TimeoutMinutes returns the value of the "timeout_minutes" field in the mutation.
func (m *EpisodeMutation) TimeoutMinutes() (r int, exists bool) {
	v := m.timeout_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMinutes returns the old "timeout_minutes" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldTimeoutMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMinutes: %w", err)
	}
	return oldValue.TimeoutMinutes, nil
}

// AddTimeoutMinutes adds i to the "timeout_minutes" field.
func (m *EpisodeMutation) AddTimeoutMinutes(i int) {
	if m.addtimeout_minutes != nil {
		*m.addtimeout_minutes += i
	} else {
		m.addtimeout_minutes = &i
	}
}

// AddedTimeoutMinutes returns the value that was added to the "timeout_minutes" field in this mutation.
func (m *EpisodeMutation) AddedTimeoutMinutes() (r int, exists bool) {
	v := m.addtimeout_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMinutes resets all changes to the "timeout_minutes" field.
func (m *EpisodeMutation) ResetTimeoutMinutes() {
	m.timeout_minutes = nil
	m.addtimeout_minutes = nil
}

// SetMessageCount sets the "message_count" field.
func (m *EpisodeMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *EpisodeMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *EpisodeMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *EpisodeMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *EpisodeMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetSummary sets the "summary" field.
func (m *EpisodeMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EpisodeMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *EpisodeMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[episode.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *EpisodeMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[episode.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *EpisodeMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, episode.FieldSummary)
}

// SetClosedAt sets the "closed_at" field.
func (m *EpisodeMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *EpisodeMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *EpisodeMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[episode.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *EpisodeMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[episode.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *EpisodeMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, episode.FieldClosedAt)
}

// AddTurnIDs adds the "turns" edge to the Turn entity by ids.
func (m *EpisodeMutation) AddTurnIDs(ids ...string) {
	if m.turns == nil {
		m.turns = make(map[string]struct{})
	}
	for i := range ids {
		m.turns[ids[i]] = struct{}{}
	}
}

// ClearTurns clears the "turns" edge to the Turn entity.
func (m *EpisodeMutation) ClearTurns() {
	m.clearedturns = true
}

// TurnsCleared reports if the "turns" edge to the Turn entity was cleared.
func (m *EpisodeMutation) TurnsCleared() bool {
	return m.clearedturns
}

// RemoveTurnIDs removes the "turns" edge to the Turn entity by IDs.
func (m *EpisodeMutation) RemoveTurnIDs(ids ...string) {
	if m.removedturns == nil {
		m.removedturns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.turns, ids[i])
		m.removedturns[ids[i]] = struct{}{}
	}
}

// RemovedTurns returns the removed IDs of the "turns" edge to the Turn entity.
func (m *EpisodeMutation) RemovedTurnsIDs() (ids []string) {
	for id := range m.removedturns {
		ids = append(ids, id)
	}
	return
}

// TurnsIDs returns the "turns" edge IDs in the mutation.
func (m *EpisodeMutation) TurnsIDs() (ids []string) {
	for id := range m.turns {
		ids = append(ids, id)
	}
	return
}

// ResetTurns resets all changes to the "turns" edge.
func (m *EpisodeMutation) ResetTurns() {
	m.turns = nil
	m.clearedturns = false
	m.removedturns = nil
}

// Where appends a list predicates to the EpisodeMutation builder.
func (m *EpisodeMutation) Where(ps ...predicate.Episode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EpisodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EpisodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Episode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EpisodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EpisodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Episode).
func (m *EpisodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EpisodeMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, episode.FieldUserID)
	}
	if m.context_type != nil {
		fields = append(fields, episode.FieldContextType)
	}
	if m.status != nil {
		fields = append(fields, episode.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, episode.FieldStartedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, episode.FieldLastActivityAt)
	}
	if m.timeout_minutes != nil {
		fields = append(fields, episode.FieldTimeoutMinutes)
	}
	if m.message_count != nil {
		fields = append(fields, episode.FieldMessageCount)
	}
	if m.summary != nil {
		fields = append(fields, episode.FieldSummary)
	}
	if m.closed_at != nil {
		fields = append(fields, episode.FieldClosedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EpisodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case episode.FieldUserID:
		return m.UserID()
	case episode.FieldContextType:
		return m.ContextType()
	case episode.FieldStatus:
		return m.Status()
	case episode.FieldStartedAt:
		return m.StartedAt()
	case episode.FieldLastActivityAt:
		return m.LastActivityAt()
	case episode.FieldTimeoutMinutes:
		return m.TimeoutMinutes()
	case episode.FieldMessageCount:
		return m.MessageCount()
	case episode.FieldSummary:
		return m.Summary()
	case episode.FieldClosedAt:
		return m.ClosedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EpisodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case episode.FieldUserID:
		return m.OldUserID(ctx)
	case episode.FieldContextType:
		return m.OldContextType(ctx)
	case episode.FieldStatus:
		return m.OldStatus(ctx)
	case episode.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case episode.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case episode.FieldTimeoutMinutes:
		return m.OldTimeoutMinutes(ctx)
	case episode.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case episode.FieldSummary:
		return m.OldSummary(ctx)
	case episode.FieldClosedAt:
		return m.OldClosedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Episode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpisodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case episode.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case episode.FieldContextType:
		v, ok := value.(episode.ContextType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextType(v)
		return nil
	case episode.FieldStatus:
		v, ok := value.(episode.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case episode.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case episode.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case episode.FieldTimeoutMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMinutes(v)
		return nil
	case episode.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case episode.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case episode.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Episode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EpisodeMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_minutes != nil {
		fields = append(fields, episode.FieldTimeoutMinutes)
	}
	if m.addmessage_count != nil {
		fields = append(fields, episode.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EpisodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case episode.FieldTimeoutMinutes:
		return m.AddedTimeoutMinutes()
	case episode.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpisodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case episode.FieldTimeoutMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMinutes(v)
		return nil
	case episode.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Episode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EpisodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(episode.FieldSummary) {
		fields = append(fields, episode.FieldSummary)
	}
	if m.FieldCleared(episode.FieldClosedAt) {
		fields = append(fields, episode.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EpisodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EpisodeMutation) ClearField(name string) error {
	switch name {
	case episode.FieldSummary:
		m.ClearSummary()
		return nil
	case episode.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Episode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EpisodeMutation) ResetField(name string) error {
	switch name {
	case episode.FieldUserID:
		m.ResetUserID()
		return nil
	case episode.FieldContextType:
		m.ResetContextType()
		return nil
	case episode.FieldStatus:
		m.ResetStatus()
		return nil
	case episode.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case episode.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case episode.FieldTimeoutMinutes:
		m.ResetTimeoutMinutes()
		return nil
	case episode.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case episode.FieldSummary:
		m.ResetSummary()
		return nil
	case episode.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Episode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EpisodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turns != nil {
		edges = append(edges, episode.EdgeTurns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EpisodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case episode.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.turns))
		for id := range m.turns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EpisodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedturns != nil {
		edges = append(edges, episode.EdgeTurns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EpisodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case episode.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.removedturns))
		for id := range m.removedturns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EpisodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturns {
		edges = append(edges, episode.EdgeTurns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EpisodeMutation) EdgeCleared(name string) bool {
	switch name {
	case episode.EdgeTurns:
		return m.clearedturns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EpisodeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Episode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EpisodeMutation) ResetEdge(name string) error {
	switch name {
	case episode.EdgeTurns:
		m.ResetTurns()
		return nil
	}
	return fmt.Errorf("unknown Episode edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	user_id       *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *EventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[event.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *EventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[event.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, event.FieldUserID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldUserID:
		return m.UserID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldUserID) {
		fields = append(fields, event.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	kind               *feedback.Kind
	value              *float64
	addvalue           *float64
	text               *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	interaction        *string
	clearedinteraction bool
	done               bool
	oldValue           func(context.Context) (*Feedback, error)
	predicates         []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id string) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feedback entities.
func (m *FeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *FeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetInteractionID sets the "interaction_id" field.
func (m *FeedbackMutation) SetInteractionID(s string) {
	m.interaction = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *FeedbackMutation) InteractionID() (r string, exists bool) {
	v := m.interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *FeedbackMutation) ResetInteractionID() {
	m.interaction = nil
}

// SetKind sets the "kind" field.
func (m *FeedbackMutation) SetKind(f feedback.Kind) {
	m.kind = &f
}

// Kind returns the value of the "kind" field in the mutation.
func (m *FeedbackMutation) Kind() (r feedback.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldKind(ctx context.Context) (v feedback.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *FeedbackMutation) ResetKind() {
	m.kind = nil
}

// SetValue sets the "value" field.
func (m *FeedbackMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *FeedbackMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *FeedbackMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *FeedbackMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *FeedbackMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[feedback.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *FeedbackMutation) ValueCleared() bool {
	_, ok := m.clearedFields[feedback.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *FeedbackMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, feedback.FieldValue)
}

// SetText sets the "text" field.
func (m *FeedbackMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *FeedbackMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *FeedbackMutation) ClearText() {
	m.text = nil
	m.clearedFields[feedback.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *FeedbackMutation) TextCleared() bool {
	_, ok := m.clearedFields[feedback.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *FeedbackMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, feedback.FieldText)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (m *FeedbackMutation) ClearInteraction() {
	m.clearedinteraction = true
	m.clearedFields[feedback.FieldInteractionID] = struct{}{}
}

// InteractionCleared reports if the "interaction" edge to the Interaction entity was cleared.
func (m *FeedbackMutation) InteractionCleared() bool {
	return m.clearedinteraction
}

// InteractionIDs returns the "interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InteractionID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) InteractionIDs() (ids []string) {
	if id := m.interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInteraction resets all changes to the "interaction" edge.
func (m *FeedbackMutation) ResetInteraction() {
	m.interaction = nil
	m.clearedinteraction = false
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, feedback.FieldUserID)
	}
	if m.interaction != nil {
		fields = append(fields, feedback.FieldInteractionID)
	}
	if m.kind != nil {
		fields = append(fields, feedback.FieldKind)
	}
	if m.value != nil {
		fields = append(fields, feedback.FieldValue)
	}
	if m.text != nil {
		fields = append(fields, feedback.FieldText)
	}
	if m.created_at != nil {
		fields = append(fields, feedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldUserID:
		return m.UserID()
	case feedback.FieldInteractionID:
		return m.InteractionID()
	case feedback.FieldKind:
		return m.Kind()
	case feedback.FieldValue:
		return m.Value()
	case feedback.FieldText:
		return m.Text()
	case feedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldUserID:
		return m.OldUserID(ctx)
	case feedback.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case feedback.FieldKind:
		return m.OldKind(ctx)
	case feedback.FieldValue:
		return m.OldValue(ctx)
	case feedback.FieldText:
		return m.OldText(ctx)
	case feedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case feedback.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case feedback.FieldKind:
		v, ok := value.(feedback.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case feedback.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case feedback.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case feedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, feedback.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedback.FieldValue) {
		fields = append(fields, feedback.FieldValue)
	}
	if m.FieldCleared(feedback.FieldText) {
		fields = append(fields, feedback.FieldText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	switch name {
	case feedback.FieldValue:
		m.ClearValue()
		return nil
	case feedback.FieldText:
		m.ClearText()
		return nil
	}
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldUserID:
		m.ResetUserID()
		return nil
	case feedback.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case feedback.FieldKind:
		m.ResetKind()
		return nil
	case feedback.FieldValue:
		m.ResetValue()
		return nil
	case feedback.FieldText:
		m.ResetText()
		return nil
	case feedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.interaction != nil {
		edges = append(edges, feedback.EdgeInteraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedback.EdgeInteraction:
		if id := m.interaction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinteraction {
		edges = append(edges, feedback.EdgeInteraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case feedback.EdgeInteraction:
		return m.clearedinteraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	switch name {
	case feedback.EdgeInteraction:
		m.ClearInteraction()
		return nil
	}
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	switch name {
	case feedback.EdgeInteraction:
		m.ResetInteraction()
		return nil
	}
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// InteractionMutation represents an operation that mutates the Interaction nodes in the graph.
type InteractionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	user_id                   *string
	request_text              *string
	response_text             *string
	response_time_ms          *int
	addresponse_time_ms       *int
	task_completed            *bool
	engagement_duration_ms    *int
	addengagement_duration_ms *int
	follow_up_in_60s          *bool
	context                   *map[string]interface{}
	created_at                *time.Time
	clearedFields             map[string]struct{}
	feedbacks                 map[string]struct{}
	removedfeedbacks          map[string]struct{}
	clearedfeedbacks          bool
	done                      bool
	oldValue                  func(context.Context) (*Interaction, error)
	predicates                []predicate.Interaction
}

var _ ent.Mutation = (*InteractionMutation)(nil)

// interactionOption allows management of the mutation configuration using functional options.
type interactionOption func(*InteractionMutation)

// newInteractionMutation creates new mutation for the Interaction entity.
func newInteractionMutation(c config, op Op, opts ...interactionOption) *InteractionMutation {
	m := &InteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionID sets the ID field of the mutation.
func withInteractionID(id string) interactionOption {
	return func(m *InteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Interaction
		)
		m.oldValue = func(ctx context.Context) (*Interaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteraction sets the old Interaction of the mutation.
func withInteraction(node *Interaction) interactionOption {
	return func(m *InteractionMutation) {
		m.oldValue = func(context.Context) (*Interaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interaction entities.
func (m *InteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InteractionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionMutation) ResetUserID() {
	m.user_id = nil
}

// SetRequestText sets the "request_text" field.
func (m *InteractionMutation) SetRequestText(s string) {
	m.request_text = &s
}

// RequestText returns the value of the "request_text" field in the mutation.
func (m *InteractionMutation) RequestText() (r string, exists bool) {
	v := m.request_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestText returns the old "request_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldRequestText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestText: %w", err)
	}
	return oldValue.RequestText, nil
}

// ResetRequestText resets all changes to the "request_text" field.
func (m *InteractionMutation) ResetRequestText() {
	m.request_text = nil
}

// SetResponseText sets the "response_text" field.
func (m *InteractionMutation) SetResponseText(s string) {
	m.response_text = &s
}

// ResponseText returns the value of the "response_text" field in the mutation.
func (m *InteractionMutation) ResponseText() (r string, exists bool) {
	v := m.response_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseText returns the old "response_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldResponseText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseText: %w", err)
	}
	return oldValue.ResponseText, nil
}

// ResetResponseText resets all changes to the "response_text" field.
func (m *InteractionMutation) ResetResponseText() {
	m.response_text = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *InteractionMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *InteractionMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *InteractionMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *InteractionMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *InteractionMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetTaskCompleted sets the "task_completed" field.
func (m *InteractionMutation) SetTaskCompleted(b bool) {
	m.task_completed = &b
}

// TaskCompleted returns the value of the "task_completed" field in the mutation.
func (m *InteractionMutation) TaskCompleted() (r bool, exists bool) {
	v := m.task_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskCompleted returns the old "task_completed" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTaskCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskCompleted: %w", err)
	}
	return oldValue.TaskCompleted, nil
}

// ResetTaskCompleted resets all changes to the "task_completed" field.
func (m *InteractionMutation) ResetTaskCompleted() {
	m.task_completed = nil
}

// SetEngagementDurationMs sets the "engagement_duration_ms" field.
func (m *InteractionMutation) SetEngagementDurationMs(i int) {
	m.engagement_duration_ms = &i
	m.addengagement_duration_ms = nil
}

// EngagementDurationMs returns the value of the "engagement_duration_ms" field in the mutation.
func (m *InteractionMutation) EngagementDurationMs() (r int, exists bool) {
	v := m.engagement_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementDurationMs returns the old "engagement_duration_ms" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldEngagementDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementDurationMs: %w", err)
	}
	return oldValue.EngagementDurationMs, nil
}

// AddEngagementDurationMs adds i to the "engagement_duration_ms" field.
func (m *InteractionMutation) AddEngagementDurationMs(i int) {
	if m.addengagement_duration_ms != nil {
		*m.addengagement_duration_ms += i
	} else {
		m.addengagement_duration_ms = &i
	}
}

// AddedEngagementDurationMs returns the value that was added to the "engagement_duration_ms" field in this mutation.
func (m *InteractionMutation) AddedEngagementDurationMs() (r int, exists bool) {
	v := m.addengagement_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearEngagementDurationMs clears the value of the "engagement_duration_ms" field.
func (m *InteractionMutation) ClearEngagementDurationMs() {
	m.engagement_duration_ms = nil
	m.addengagement_duration_ms = nil
	m.clearedFields[interaction.FieldEngagementDurationMs] = struct{}{}
}

// EngagementDurationMsCleared returns if the "engagement_duration_ms" field was cleared in this mutation.
func (m *InteractionMutation) EngagementDurationMsCleared() bool {
	_, ok := m.clearedFields[interaction.FieldEngagementDurationMs]
	return ok
}

// ResetEngagementDurationMs resets all changes to the "engagement_duration_ms" field.
func (m *InteractionMutation) ResetEngagementDurationMs() {
	m.engagement_duration_ms = nil
	m.addengagement_duration_ms = nil
	delete(m.clearedFields, interaction.FieldEngagementDurationMs)
}

// SetFollowUpIn60s sets the "follow_up_in_60s" field.
func (m *InteractionMutation) SetFollowUpIn60s(b bool) {
	m.follow_up_in_60s = &b
}

// FollowUpIn60s returns the value of the "follow_up_in_60s" field in the mutation.
func (m *InteractionMutation) FollowUpIn60s() (r bool, exists bool) {
	v := m.follow_up_in_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpIn60s returns the old "follow_up_in_60s" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldFollowUpIn60s(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpIn60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpIn60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpIn60s: %w", err)
	}
	return oldValue.FollowUpIn60s, nil
}

// ClearFollowUpIn60s clears the value of the "follow_up_in_60s" field.
func (m *InteractionMutation) ClearFollowUpIn60s() {
	m.follow_up_in_60s = nil
	m.clearedFields[interaction.FieldFollowUpIn60s] = struct{}{}
}

// FollowUpIn60sCleared returns if the "follow_up_in_60s" field was cleared in this mutation.
func (m *InteractionMutation) FollowUpIn60sCleared() bool {
	_, ok := m.clearedFields[interaction.FieldFollowUpIn60s]
	return ok
}

// ResetFollowUpIn60s resets all changes to the "follow_up_in_60s" field.
func (m *InteractionMutation) ResetFollowUpIn60s() {
	m.follow_up_in_60s = nil
	delete(m.clearedFields, interaction.FieldFollowUpIn60s)
}

// SetContext sets the "context" field.
func (m *InteractionMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *InteractionMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *InteractionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[interaction.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *InteractionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[interaction.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *InteractionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, interaction.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by ids.
func (m *InteractionMutation) AddFeedbackIDs(ids ...string) {
	if m.feedbacks == nil {
		m.feedbacks = make(map[string]struct{})
	}
	for i := range ids {
		m.feedbacks[ids[i]] = struct{}{}
	}
}

// ClearFeedbacks clears the "feedbacks" edge to the Feedback entity.
func (m *InteractionMutation) ClearFeedbacks() {
	m.clearedfeedbacks = true
}

// FeedbacksCleared reports if the "feedbacks" edge to the Feedback entity was cleared.
func (m *InteractionMutation) FeedbacksCleared() bool {
	return m.clearedfeedbacks
}

// RemoveFeedbackIDs removes the "feedbacks" edge to the Feedback entity by IDs.
func (m *InteractionMutation) RemoveFeedbackIDs(ids ...string) {
	if m.removedfeedbacks == nil {
		m.removedfeedbacks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedbacks, ids[i])
		m.removedfeedbacks[ids[i]] = struct{}{}
	}
}

// RemovedFeedbacks returns the removed IDs of the "feedbacks" edge to the Feedback entity.
func (m *InteractionMutation) RemovedFeedbacksIDs() (ids []string) {
	for id := range m.removedfeedbacks {
		ids = append(ids, id)
	}
	return
}

// FeedbacksIDs returns the "feedbacks" edge IDs in the mutation.
func (m *InteractionMutation) FeedbacksIDs() (ids []string) {
	for id := range m.feedbacks {
		ids = append(ids, id)
	}
	return
}

// ResetFeedbacks resets all changes to the "feedbacks" edge.
func (m *InteractionMutation) ResetFeedbacks() {
	m.feedbacks = nil
	m.clearedfeedbacks = false
	m.removedfeedbacks = nil
}

// Where appends a list predicates to the InteractionMutation builder.
func (m *InteractionMutation) Where(ps ...predicate.Interaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interaction).
func (m *InteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, interaction.FieldUserID)
	}
	if m.request_text != nil {
		fields = append(fields, interaction.FieldRequestText)
	}
	if m.response_text != nil {
		fields = append(fields, interaction.FieldResponseText)
	}
	if m.response_time_ms != nil {
		fields = append(fields, interaction.FieldResponseTimeMs)
	}
	if m.task_completed != nil {
		fields = append(fields, interaction.FieldTaskCompleted)
	}
	if m.engagement_duration_ms != nil {
		fields = append(fields, interaction.FieldEngagementDurationMs)
	}
	if m.follow_up_in_60s != nil {
		fields = append(fields, interaction.FieldFollowUpIn60s)
	}
	if m.context != nil {
		fields = append(fields, interaction.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, interaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldUserID:
		return m.UserID()
	case interaction.FieldRequestText:
		return m.RequestText()
	case interaction.FieldResponseText:
		return m.ResponseText()
	case interaction.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case interaction.FieldTaskCompleted:
		return m.TaskCompleted()
	case interaction.FieldEngagementDurationMs:
		return m.EngagementDurationMs()
	case interaction.FieldFollowUpIn60s:
		return m.FollowUpIn60s()
	case interaction.FieldContext:
		return m.Context()
	case interaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interaction.FieldUserID:
		return m.OldUserID(ctx)
	case interaction.FieldRequestText:
		return m.OldRequestText(ctx)
	case interaction.FieldResponseText:
		return m.OldResponseText(ctx)
	case interaction.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case interaction.FieldTaskCompleted:
		return m.OldTaskCompleted(ctx)
	case interaction.FieldEngagementDurationMs:
		return m.OldEngagementDurationMs(ctx)
	case interaction.FieldFollowUpIn60s:
		return m.OldFollowUpIn60s(ctx)
	case interaction.FieldContext:
		return m.OldContext(ctx)
	case interaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interaction.FieldRequestText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestText(v)
		return nil
	case interaction.FieldResponseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseText(v)
		return nil
	case interaction.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case interaction.FieldTaskCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskCompleted(v)
		return nil
	case interaction.FieldEngagementDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementDurationMs(v)
		return nil
	case interaction.FieldFollowUpIn60s:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpIn60s(v)
		return nil
	case interaction.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case interaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, interaction.FieldResponseTimeMs)
	}
	if m.addengagement_duration_ms != nil {
		fields = append(fields, interaction.FieldEngagementDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case interaction.FieldEngagementDurationMs:
		return m.AddedEngagementDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case interaction.FieldEngagementDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interaction.FieldEngagementDurationMs) {
		fields = append(fields, interaction.FieldEngagementDurationMs)
	}
	if m.FieldCleared(interaction.FieldFollowUpIn60s) {
		fields = append(fields, interaction.FieldFollowUpIn60s)
	}
	if m.FieldCleared(interaction.FieldContext) {
		fields = append(fields, interaction.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionMutation) ClearField(name string) error {
	switch name {
	case interaction.FieldEngagementDurationMs:
		m.ClearEngagementDurationMs()
		return nil
	case interaction.FieldFollowUpIn60s:
		m.ClearFollowUpIn60s()
		return nil
	case interaction.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown Interaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionMutation) ResetField(name string) error {
	switch name {
	case interaction.FieldUserID:
		m.ResetUserID()
		return nil
	case interaction.FieldRequestText:
		m.ResetRequestText()
		return nil
	case interaction.FieldResponseText:
		m.ResetResponseText()
		return nil
	case interaction.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case interaction.FieldTaskCompleted:
		m.ResetTaskCompleted()
		return nil
	case interaction.FieldEngagementDurationMs:
		m.ResetEngagementDurationMs()
		return nil
	case interaction.FieldFollowUpIn60s:
		m.ResetFollowUpIn60s()
		return nil
	case interaction.FieldContext:
		m.ResetContext()
		return nil
	case interaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.feedbacks != nil {
		edges = append(edges, interaction.EdgeFeedbacks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interaction.EdgeFeedbacks:
		ids := make([]ent.Value, 0, len(m.feedbacks))
		for id := range m.feedbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfeedbacks != nil {
		edges = append(edges, interaction.EdgeFeedbacks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case interaction.EdgeFeedbacks:
		ids := make([]ent.Value, 0, len(m.removedfeedbacks))
		for id := range m.removedfeedbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfeedbacks {
		edges = append(edges, interaction.EdgeFeedbacks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case interaction.EdgeFeedbacks:
		return m.clearedfeedbacks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Interaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionMutation) ResetEdge(name string) error {
	switch name {
	case interaction.EdgeFeedbacks:
		m.ResetFeedbacks()
		return nil
	}
	return fmt.Errorf("unknown Interaction edge %s", name)
}

// MemoryFactMutation represents an operation that mutates the MemoryFact nodes in the graph.
type MemoryFactMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	subject_kind     *memoryfact.SubjectKind
	subject_id       *string
	text             *string
	importance       *float64
	addimportance    *float64
	embedding        *[]byte
	created_at       *time.Time
	last_accessed_at *time.Time
	access_count     *int
	addaccess_count  *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MemoryFact, error)
	predicates       []predicate.MemoryFact
}

var _ ent.Mutation = (*MemoryFactMutation)(nil)

// memoryfactOption allows management of the mutation configuration using functional options.
type memoryfactOption func(*MemoryFactMutation)

// newMemoryFactMutation creates new mutation for the MemoryFact entity.
func newMemoryFactMutation(c config, op Op, opts ...memoryfactOption) *MemoryFactMutation {
	m := &MemoryFactMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryFact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryFactID sets the ID field of the mutation.
func withMemoryFactID(id string) memoryfactOption {
	return func(m *MemoryFactMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryFact
		)
		m.oldValue = func(ctx context.Context) (*MemoryFact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryFact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryFact sets the old MemoryFact of the mutation.
func withMemoryFact(node *MemoryFact) memoryfactOption {
	return func(m *MemoryFactMutation) {
		m.oldValue = func(context.Context) (*MemoryFact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryFactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryFactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryFact entities.
func (m *MemoryFactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryFactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryFactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryFact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MemoryFactMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemoryFactMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemoryFactMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectKind sets the "subject_kind" field.
func (m *MemoryFactMutation) SetSubjectKind(mk memoryfact.SubjectKind) {
	m.subject_kind = &mk
}

// SubjectKind returns the value of the "subject_kind" field in the mutation.
func (m *MemoryFactMutation) SubjectKind() (r memoryfact.SubjectKind, exists bool) {
	v := m.subject_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectKind returns the old "subject_kind" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldSubjectKind(ctx context.Context) (v memoryfact.SubjectKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectKind: %w", err)
	}
	return oldValue.SubjectKind, nil
}

// ResetSubjectKind resets all changes to the "subject_kind" field.
func (m *MemoryFactMutation) ResetSubjectKind() {
	m.subject_kind = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *MemoryFactMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *MemoryFactMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *MemoryFactMutation) ClearSubjectID() {
	m.subject_id = nil
	m.clearedFields[memoryfact.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *MemoryFactMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[memoryfact.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *MemoryFactMutation) ResetSubjectID() {
	m.subject_id = nil
	delete(m.clearedFields, memoryfact.FieldSubjectID)
}

// SetText sets the "text" field.
func (m *MemoryFactMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *MemoryFactMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *MemoryFactMutation) ResetText() {
	m.text = nil
}

// SetImportance sets the "importance" field.
func (m *MemoryFactMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *MemoryFactMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldImportance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *MemoryFactMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *MemoryFactMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportance resets all changes to the "importance" field.
func (m *MemoryFactMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryFactMutation) SetEmbedding(b []byte) {
	m.embedding = &b
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryFactMutation) Embedding() (r []byte, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldEmbedding(ctx context.Context) (v *[]byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryFactMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[memoryfact.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryFactMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memoryfact.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryFactMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, memoryfact.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryFactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryFactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryFactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *MemoryFactMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *MemoryFactMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldLastAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *MemoryFactMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
}

// SetAccessCount sets the "access_count" field.
func (m *MemoryFactMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *MemoryFactMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the MemoryFact entity.
// If the MemoryFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryFactMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *MemoryFactMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *MemoryFactMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *MemoryFactMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// Where appends a list predicates to the MemoryFactMutation builder.
func (m *MemoryFactMutation) Where(ps ...predicate.MemoryFact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryFactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryFactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryFact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryFactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryFactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryFact).
func (m *MemoryFactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryFactMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, memoryfact.FieldUserID)
	}
	if m.subject_kind != nil {
		fields = append(fields, memoryfact.FieldSubjectKind)
	}
	if m.subject_id != nil {
		fields = append(fields, memoryfact.FieldSubjectID)
	}
	if m.text != nil {
		fields = append(fields, memoryfact.FieldText)
	}
	if m.importance != nil {
		fields = append(fields, memoryfact.FieldImportance)
	}
	if m.embedding != nil {
		fields = append(fields, memoryfact.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, memoryfact.FieldCreatedAt)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, memoryfact.FieldLastAccessedAt)
	}
	if m.access_count != nil {
		fields = append(fields, memoryfact.FieldAccessCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryFactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryfact.FieldUserID:
		return m.UserID()
	case memoryfact.FieldSubjectKind:
		return m.SubjectKind()
	case memoryfact.FieldSubjectID:
		return m.SubjectID()
	case memoryfact.FieldText:
		return m.Text()
	case memoryfact.FieldImportance:
		return m.Importance()
	case memoryfact.FieldEmbedding:
		return m.Embedding()
	case memoryfact.FieldCreatedAt:
		return m.CreatedAt()
	case memoryfact.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case memoryfact.FieldAccessCount:
		return m.AccessCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryFactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryfact.FieldUserID:
		return m.OldUserID(ctx)
	case memoryfact.FieldSubjectKind:
		return m.OldSubjectKind(ctx)
	case memoryfact.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case memoryfact.FieldText:
		return m.OldText(ctx)
	case memoryfact.FieldImportance:
		return m.OldImportance(ctx)
	case memoryfact.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memoryfact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryfact.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case memoryfact.FieldAccessCount:
		return m.OldAccessCount(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryFact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryFactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryfact.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case memoryfact.FieldSubjectKind:
		v, ok := value.(memoryfact.SubjectKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectKind(v)
		return nil
	case memoryfact.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case memoryfact.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case memoryfact.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case memoryfact.FieldEmbedding:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memoryfact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryfact.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case memoryfact.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryFact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryFactMutation) AddedFields() []string {
	var fields []string
	if m.addimportance != nil {
		fields = append(fields, memoryfact.FieldImportance)
	}
	if m.addaccess_count != nil {
		fields = append(fields, memoryfact.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryFactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryfact.FieldImportance:
		return m.AddedImportance()
	case memoryfact.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryFactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryfact.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	case memoryfact.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryFact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryFactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryfact.FieldSubjectID) {
		fields = append(fields, memoryfact.FieldSubjectID)
	}
	if m.FieldCleared(memoryfact.FieldEmbedding) {
		fields = append(fields, memoryfact.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryFactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryFactMutation) ClearField(name string) error {
	switch name {
	case memoryfact.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	case memoryfact.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown MemoryFact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryFactMutation) ResetField(name string) error {
	switch name {
	case memoryfact.FieldUserID:
		m.ResetUserID()
		return nil
	case memoryfact.FieldSubjectKind:
		m.ResetSubjectKind()
		return nil
	case memoryfact.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case memoryfact.FieldText:
		m.ResetText()
		return nil
	case memoryfact.FieldImportance:
		m.ResetImportance()
		return nil
	case memoryfact.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memoryfact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryfact.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case memoryfact.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	}
	return fmt.Errorf("unknown MemoryFact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryFactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryFactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryFactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryFactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryFactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryFactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryFactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryFact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryFactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryFact edge %s", name)
}

// TurnMutation represents an operation that mutates the Turn nodes in the graph.
type TurnMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_text      *string
	assistant_text *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	episode        *string
	clearedepisode bool
	done           bool
	oldValue       func(context.Context) (*Turn, error)
	predicates     []predicate.Turn
}

var _ ent.Mutation = (*TurnMutation)(nil)

// turnOption allows management of the mutation configuration using functional options.
type turnOption func(*TurnMutation)

// newTurnMutation creates new mutation for the Turn entity.
func newTurnMutation(c config, op Op, opts ...turnOption) *TurnMutation {
	m := &TurnMutation{
		config:        c,
		op:            op,
		typ:           TypeTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnID sets the ID field of the mutation.
func withTurnID(id string) turnOption {
	return func(m *TurnMutation) {
		var (
			err   error
			once  sync.Once
			value *Turn
		)
		m.oldValue = func(ctx context.Context) (*Turn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Turn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurn sets the old Turn of the mutation.
func withTurn(node *Turn) turnOption {
	return func(m *TurnMutation) {
		m.oldValue = func(context.Context) (*Turn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Turn entities.
func (m *TurnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Turn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpisodeID sets the "episode_id" field.
func (m *TurnMutation) SetEpisodeID(s string) {
	m.episode = &s
}

// EpisodeID returns the value of the "episode_id" field in the mutation.
func (m *TurnMutation) EpisodeID() (r string, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisodeID returns the old "episode_id" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldEpisodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisodeID: %w", err)
	}
	return oldValue.EpisodeID, nil
}

// ResetEpisodeID resets all changes to the "episode_id" field.
func (m *TurnMutation) ResetEpisodeID() {
	m.episode = nil
}

// SetUserText sets the "user_text" field.
func (m *TurnMutation) SetUserText(s string) {
	m.user_text = &s
}

// UserText returns the value of the "user_text" field in the mutation.
func (m *TurnMutation) UserText() (r string, exists bool) {
	v := m.user_text
	if v == nil {
		return
	}
	return *v, true
}

// OldUserText returns the old "user_text" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldUserText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserText: %w", err)
	}
	return oldValue.UserText, nil
}

// ResetUserText resets all changes to the "user_text" field.
func (m *TurnMutation) ResetUserText() {
	m.user_text = nil
}

// SetAssistantText sets the "assistant_text" field.
func (m *TurnMutation) SetAssistantText(s string) {
	m.assistant_text = &s
}

// AssistantText returns the value of the "assistant_text" field in the mutation.
func (m *TurnMutation) AssistantText() (r string, exists bool) {
	v := m.assistant_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistantText returns the old "assistant_text" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldAssistantText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistantText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistantText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistantText: %w", err)
	}
	return oldValue.AssistantText, nil
}

// ResetAssistantText resets all changes to the "assistant_text" field.
func (m *TurnMutation) ResetAssistantText() {
	m.assistant_text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TurnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TurnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TurnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEpisode clears the "episode" edge to the Episode entity.
func (m *TurnMutation) ClearEpisode() {
	m.clearedepisode = true
	m.clearedFields[turn.FieldEpisodeID] = struct{}{}
}

// EpisodeCleared reports if the "episode" edge to the Episode entity was cleared.
func (m *TurnMutation) EpisodeCleared() bool {
	return m.clearedepisode
}

// EpisodeIDs returns the "episode" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpisodeID instead. It exists only for internal usage by the builders.
func (m *TurnMutation) EpisodeIDs() (ids []string) {
	if id := m.episode; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpisode resets all changes to the "episode" edge.
func (m *TurnMutation) ResetEpisode() {
	m.episode = nil
	m.clearedepisode = false
}

// Where appends a list predicates to the TurnMutation builder.
func (m *TurnMutation) Where(ps ...predicate.Turn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Turn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Turn).
func (m *TurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.episode != nil {
		fields = append(fields, turn.FieldEpisodeID)
	}
	if m.user_text != nil {
		fields = append(fields, turn.FieldUserText)
	}
	if m.assistant_text != nil {
		fields = append(fields, turn.FieldAssistantText)
	}
	if m.created_at != nil {
		fields = append(fields, turn.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turn.FieldEpisodeID:
		return m.EpisodeID()
	case turn.FieldUserText:
		return m.UserText()
	case turn.FieldAssistantText:
		return m.AssistantText()
	case turn.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turn.FieldEpisodeID:
		return m.OldEpisodeID(ctx)
	case turn.FieldUserText:
		return m.OldUserText(ctx)
	case turn.FieldAssistantText:
		return m.OldAssistantText(ctx)
	case turn.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Turn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turn.FieldEpisodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisodeID(v)
		return nil
	case turn.FieldUserText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserText(v)
		return nil
	case turn.FieldAssistantText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistantText(v)
		return nil
	case turn.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Turn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Turn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Turn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnMutation) ResetField(name string) error {
	switch name {
	case turn.FieldEpisodeID:
		m.ResetEpisodeID()
		return nil
	case turn.FieldUserText:
		m.ResetUserText()
		return nil
	case turn.FieldAssistantText:
		m.ResetAssistantText()
		return nil
	case turn.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Turn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.episode != nil {
		edges = append(edges, turn.EdgeEpisode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case turn.EdgeEpisode:
		if id := m.episode; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedepisode {
		edges = append(edges, turn.EdgeEpisode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnMutation) EdgeCleared(name string) bool {
	switch name {
	case turn.EdgeEpisode:
		return m.clearedepisode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnMutation) ClearEdge(name string) error {
	switch name {
	case turn.EdgeEpisode:
		m.ClearEpisode()
		return nil
	}
	return fmt.Errorf("unknown Turn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnMutation) ResetEdge(name string) error {
	switch name {
	case turn.EdgeEpisode:
		m.ResetEpisode()
		return nil
	}
	return fmt.Errorf("unknown Turn edge %s", name)
}
