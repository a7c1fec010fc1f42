// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/turn"
)

// EpisodeCreate is the builder for creating a Episode entity.
type EpisodeCreate struct {
	config
	mutation *EpisodeMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EpisodeCreate) SetUserID(v string) *EpisodeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContextType sets the "context_type" field.
func (_c *EpisodeCreate) SetContextType(v episode.ContextType) *EpisodeCreate {
	_c.mutation.SetContextType(v)
	return _c
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableContextType(v *episode.ContextType) *EpisodeCreate {
	if v != nil {
		_c.SetContextType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EpisodeCreate) SetStatus(v episode.Status) *EpisodeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableStatus(v *episode.Status) *EpisodeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EpisodeCreate) SetStartedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableStartedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *EpisodeCreate) SetLastActivityAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableLastActivityAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_c *EpisodeCreate) SetTimeoutMinutes(v int) *EpisodeCreate {
	_c.mutation.SetTimeoutMinutes(v)
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *EpisodeCreate) SetMessageCount(v int) *EpisodeCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableMessageCount(v *int) *EpisodeCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EpisodeCreate) SetSummary(v string) *EpisodeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableSummary(v *string) *EpisodeCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *EpisodeCreate) SetClosedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableClosedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EpisodeCreate) SetID(v string) *EpisodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_c *EpisodeCreate) AddTurnIDs(ids ...string) *EpisodeCreate {
	_c.mutation.AddTurnIDs(ids...)
	return _c
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_c *EpisodeCreate) AddTurns(v ...*Turn) *EpisodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTurnIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_c *EpisodeCreate) Mutation() *EpisodeMutation {
	return _c.mutation
}

// Save creates the Episode in the database.
func (_c *EpisodeCreate) Save(ctx context.Context) (*Episode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EpisodeCreate) SaveX(ctx context.Context) *Episode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EpisodeCreate) defaults() {
	if _, ok := _c.mutation.ContextType(); !ok {
		v := episode.DefaultContextType
		_c.mutation.SetContextType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := episode.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := episode.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := episode.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := episode.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EpisodeCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Episode.user_id"`)}
	}
	if _, ok := _c.mutation.ContextType(); !ok {
		return &ValidationError{Name: "context_type", err: errors.New(`ent: missing required field "Episode.context_type"`)}
	}
	if v, ok := _c.mutation.ContextType(); ok {
		if err := episode.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "Episode.context_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Episode.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Episode.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "Episode.last_activity_at"`)}
	}
	if _, ok := _c.mutation.TimeoutMinutes(); !ok {
		return &ValidationError{Name: "timeout_minutes", err: errors.New(`ent: missing required field "Episode.timeout_minutes"`)}
	}
	if v, ok := _c.mutation.TimeoutMinutes(); ok {
		if err := episode.TimeoutMinutesValidator(v); err != nil {
			return &ValidationError{Name: "timeout_minutes", err: fmt.Errorf(`ent: validator failed for field "Episode.timeout_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "Episode.message_count"`)}
	}
	if v, ok := _c.mutation.MessageCount(); ok {
		if err := episode.MessageCountValidator(v); err != nil {
			return &ValidationError{Name: "message_count", err: fmt.Errorf(`ent: validator failed for field "Episode.message_count": %w`, err)}
		}
	}
	return nil
}

func (_c *EpisodeCreate) sqlSave(ctx context.Context) (*Episode, error) {
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
			return nil, fmt.Errorf("unexpected Episode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EpisodeCreate) createSpec() (*Episode, *sqlgraph.CreateSpec) {
	var (
		_node = &Episode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(episode.Table, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(episode.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ContextType(); ok {
		_spec.SetField(episode.FieldContextType, field.TypeEnum, value)
		_node.ContextType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(episode.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(episode.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.TimeoutMinutes(); ok {
		_spec.SetField(episode.FieldTimeoutMinutes, field.TypeInt, value)
		_node.TimeoutMinutes = value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(episode.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(episode.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(episode.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if nodes := _c.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   episode.TurnsTable,
			Columns: []string{episode.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EpisodeCreateBulk is the builder for creating many Episode entities in bulk.
type EpisodeCreateBulk struct {
	config
	err      error
	builders []*EpisodeCreate
}

// Save creates the Episode entities in the database.
func (_c *EpisodeCreateBulk) Save(ctx context.Context) ([]*Episode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Episode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EpisodeMutation)
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
func (_c *EpisodeCreateBulk) SaveX(ctx context.Context) []*Episode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
