// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/memoryfact"
)

// MemoryFactCreate is the builder for creating a MemoryFact entity.
type MemoryFactCreate struct {
	config
	mutation *MemoryFactMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MemoryFactCreate) SetUserID(v string) *MemoryFactCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectKind sets the "subject_kind" field.
func (_c *MemoryFactCreate) SetSubjectKind(v memoryfact.SubjectKind) *MemoryFactCreate {
	_c.mutation.SetSubjectKind(v)
	return _c
}

// SetNillableSubjectKind sets the "subject_kind" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableSubjectKind(v *memoryfact.SubjectKind) *MemoryFactCreate {
	if v != nil {
		_c.SetSubjectKind(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *MemoryFactCreate) SetSubjectID(v string) *MemoryFactCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableSubjectID(v *string) *MemoryFactCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *MemoryFactCreate) SetText(v string) *MemoryFactCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetImportance sets the "importance" field.
func (_c *MemoryFactCreate) SetImportance(v float64) *MemoryFactCreate {
	_c.mutation.SetImportance(v)
	return _c
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableImportance(v *float64) *MemoryFactCreate {
	if v != nil {
		_c.SetImportance(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryFactCreate) SetEmbedding(v []byte) *MemoryFactCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryFactCreate) SetCreatedAt(v time.Time) *MemoryFactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableCreatedAt(v *time.Time) *MemoryFactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *MemoryFactCreate) SetLastAccessedAt(v time.Time) *MemoryFactCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableLastAccessedAt(v *time.Time) *MemoryFactCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *MemoryFactCreate) SetAccessCount(v int) *MemoryFactCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *MemoryFactCreate) SetNillableAccessCount(v *int) *MemoryFactCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryFactCreate) SetID(v string) *MemoryFactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryFactMutation object of the builder.
func (_c *MemoryFactCreate) Mutation() *MemoryFactMutation {
	return _c.mutation
}

// Save creates the MemoryFact in the database.
func (_c *MemoryFactCreate) Save(ctx context.Context) (*MemoryFact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryFactCreate) SaveX(ctx context.Context) *MemoryFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryFactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryFactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryFactCreate) defaults() {
	if _, ok := _c.mutation.SubjectKind(); !ok {
		v := memoryfact.DefaultSubjectKind
		_c.mutation.SetSubjectKind(v)
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		v := memoryfact.DefaultSubjectID
		_c.mutation.SetSubjectID(v)
	}
	if _, ok := _c.mutation.Importance(); !ok {
		v := memoryfact.DefaultImportance
		_c.mutation.SetImportance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryfact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		v := memoryfact.DefaultLastAccessedAt()
		_c.mutation.SetLastAccessedAt(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := memoryfact.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryFactCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MemoryFact.user_id"`)}
	}
	if _, ok := _c.mutation.SubjectKind(); !ok {
		return &ValidationError{Name: "subject_kind", err: errors.New(`ent: missing required field "MemoryFact.subject_kind"`)}
	}
	if v, ok := _c.mutation.SubjectKind(); ok {
		if err := memoryfact.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.subject_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "MemoryFact.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := memoryfact.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Importance(); !ok {
		return &ValidationError{Name: "importance", err: errors.New(`ent: missing required field "MemoryFact.importance"`)}
	}
	if v, ok := _c.mutation.Importance(); ok {
		if err := memoryfact.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.importance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryFact.created_at"`)}
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		return &ValidationError{Name: "last_accessed_at", err: errors.New(`ent: missing required field "MemoryFact.last_accessed_at"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "MemoryFact.access_count"`)}
	}
	if v, ok := _c.mutation.AccessCount(); ok {
		if err := memoryfact.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "MemoryFact.access_count": %w`, err)}
		}
	}
	return nil
}

func (_c *MemoryFactCreate) sqlSave(ctx context.Context) (*MemoryFact, error) {
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
			return nil, fmt.Errorf("unexpected MemoryFact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryFactCreate) createSpec() (*MemoryFact, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryFact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryfact.Table, sqlgraph.NewFieldSpec(memoryfact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(memoryfact.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectKind(); ok {
		_spec.SetField(memoryfact.FieldSubjectKind, field.TypeEnum, value)
		_node.SubjectKind = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(memoryfact.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(memoryfact.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Importance(); ok {
		_spec.SetField(memoryfact.FieldImportance, field.TypeFloat64, value)
		_node.Importance = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memoryfact.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryfact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryfact.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(memoryfact.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	return _node, _spec
}

// MemoryFactCreateBulk is the builder for creating many MemoryFact entities in bulk.
type MemoryFactCreateBulk struct {
	config
	err      error
	builders []*MemoryFactCreate
}

// Save creates the MemoryFact entities in the database.
func (_c *MemoryFactCreateBulk) Save(ctx context.Context) ([]*MemoryFact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryFact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryFactMutation)
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
func (_c *MemoryFactCreateBulk) SaveX(ctx context.Context) []*MemoryFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryFactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryFactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
