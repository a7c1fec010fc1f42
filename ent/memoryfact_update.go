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
	"github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/ent/predicate"
)

// MemoryFactUpdate is the builder for updating MemoryFact entities.
type MemoryFactUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryFactMutation
}

// Where appends a list predicates to the MemoryFactUpdate builder.
func (_u *MemoryFactUpdate) Where(ps ...predicate.MemoryFact) *MemoryFactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectKind sets the "subject_kind" field.
func (_u *MemoryFactUpdate) SetSubjectKind(v memoryfact.SubjectKind) *MemoryFactUpdate {
	_u.mutation.SetSubjectKind(v)
	return _u
}

// SetNillableSubjectKind sets the "subject_kind" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableSubjectKind(v *memoryfact.SubjectKind) *MemoryFactUpdate {
	if v != nil {
		_u.SetSubjectKind(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *MemoryFactUpdate) SetSubjectID(v string) *MemoryFactUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableSubjectID(v *string) *MemoryFactUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *MemoryFactUpdate) ClearSubjectID() *MemoryFactUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetText sets the "text" field.
func (_u *MemoryFactUpdate) SetText(v string) *MemoryFactUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableText(v *string) *MemoryFactUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryFactUpdate) SetImportance(v float64) *MemoryFactUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableImportance(v *float64) *MemoryFactUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryFactUpdate) AddImportance(v float64) *MemoryFactUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryFactUpdate) SetEmbedding(v []byte) *MemoryFactUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryFactUpdate) ClearEmbedding() *MemoryFactUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryFactUpdate) SetLastAccessedAt(v time.Time) *MemoryFactUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableLastAccessedAt(v *time.Time) *MemoryFactUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryFactUpdate) SetAccessCount(v int) *MemoryFactUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryFactUpdate) SetNillableAccessCount(v *int) *MemoryFactUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryFactUpdate) AddAccessCount(v int) *MemoryFactUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// Mutation returns the MemoryFactMutation object of the builder.
func (_u *MemoryFactUpdate) Mutation() *MemoryFactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryFactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryFactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryFactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryFactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryFactUpdate) check() error {
	if v, ok := _u.mutation.SubjectKind(); ok {
		if err := memoryfact.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.subject_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := memoryfact.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Importance(); ok {
		if err := memoryfact.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.importance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCount(); ok {
		if err := memoryfact.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.access_count": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryFactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryfact.Table, memoryfact.Columns, sqlgraph.NewFieldSpec(memoryfact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectKind(); ok {
		_spec.SetField(memoryfact.FieldSubjectKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(memoryfact.FieldSubjectID, field.TypeString, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(memoryfact.FieldSubjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(memoryfact.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memoryfact.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memoryfact.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryfact.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryfact.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryfact.FieldLastAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memoryfact.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memoryfact.FieldAccessCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryFactUpdateOne is the builder for updating a single MemoryFact entity.
type MemoryFactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryFactMutation
}

// SetSubjectKind sets the "subject_kind" field.
func (_u *MemoryFactUpdateOne) SetSubjectKind(v memoryfact.SubjectKind) *MemoryFactUpdateOne {
	_u.mutation.SetSubjectKind(v)
	return _u
}

// SetNillableSubjectKind sets the "subject_kind" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableSubjectKind(v *memoryfact.SubjectKind) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetSubjectKind(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *MemoryFactUpdateOne) SetSubjectID(v string) *MemoryFactUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableSubjectID(v *string) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *MemoryFactUpdateOne) ClearSubjectID() *MemoryFactUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetText sets the "text" field.
func (_u *MemoryFactUpdateOne) SetText(v string) *MemoryFactUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableText(v *string) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryFactUpdateOne) SetImportance(v float64) *MemoryFactUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableImportance(v *float64) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryFactUpdateOne) AddImportance(v float64) *MemoryFactUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryFactUpdateOne) SetEmbedding(v []byte) *MemoryFactUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryFactUpdateOne) ClearEmbedding() *MemoryFactUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryFactUpdateOne) SetLastAccessedAt(v time.Time) *MemoryFactUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableLastAccessedAt(v *time.Time) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryFactUpdateOne) SetAccessCount(v int) *MemoryFactUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryFactUpdateOne) SetNillableAccessCount(v *int) *MemoryFactUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryFactUpdateOne) AddAccessCount(v int) *MemoryFactUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// Mutation returns the MemoryFactMutation object of the builder.
func (_u *MemoryFactUpdateOne) Mutation() *MemoryFactMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryFactUpdate builder.
func (_u *MemoryFactUpdateOne) Where(ps ...predicate.MemoryFact) *MemoryFactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryFactUpdateOne) Select(field string, fields ...string) *MemoryFactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryFact entity.
func (_u *MemoryFactUpdateOne) Save(ctx context.Context) (*MemoryFact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryFactUpdateOne) SaveX(ctx context.Context) *MemoryFact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryFactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryFactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryFactUpdateOne) check() error {
	if v, ok := _u.mutation.SubjectKind(); ok {
		if err := memoryfact.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.subject_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := memoryfact.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Importance(); ok {
		if err := memoryfact.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.importance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCount(); ok {
		if err := memoryfact.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.access_count": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryFactUpdateOne) sqlSave(ctx context.Context) (_node *MemoryFact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryfact.Table, memoryfact.Columns, sqlgraph.NewFieldSpec(memoryfact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryFact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryfact.FieldID)
		for _, f := range fields {
			if !memoryfact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryfact.FieldID {
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
	if value, ok := _u.mutation.SubjectKind(); ok {
		_spec.SetField(memoryfact.FieldSubjectKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(memoryfact.FieldSubjectID, field.TypeString, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(memoryfact.FieldSubjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(memoryfact.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memoryfact.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memoryfact.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryfact.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryfact.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryfact.FieldLastAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memoryfact.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memoryfact.FieldAccessCount, field.TypeInt, value)
	}
	_node = &MemoryFact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
