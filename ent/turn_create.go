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

// TurnCreate is the builder for creating a Turn entity.
type TurnCreate struct {
	config
	mutation *TurnMutation
	hooks    []Hook
}

// SetEpisodeID sets the "episode_id" field.
func (_c *TurnCreate) SetEpisodeID(v string) *TurnCreate {
	_c.mutation.SetEpisodeID(v)
	return _c
}

// SetUserText sets the "user_text" field.
func (_c *TurnCreate) SetUserText(v string) *TurnCreate {
	_c.mutation.SetUserText(v)
	return _c
}

// SetAssistantText sets the "assistant_text" field.
func (_c *TurnCreate) SetAssistantText(v string) *TurnCreate {
	_c.mutation.SetAssistantText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TurnCreate) SetCreatedAt(v time.Time) *TurnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TurnCreate) SetNillableCreatedAt(v *time.Time) *TurnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TurnCreate) SetID(v string) *TurnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEpisode sets the "episode" edge to the Episode entity.
func (_c *TurnCreate) SetEpisode(v *Episode) *TurnCreate {
	return _c.SetEpisodeID(v.ID)
}

// Mutation returns the TurnMutation object of the builder.
func (_c *TurnCreate) Mutation() *TurnMutation {
	return _c.mutation
}

// Save creates the Turn in the database.
func (_c *TurnCreate) Save(ctx context.Context) (*Turn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnCreate) SaveX(ctx context.Context) *Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := turn.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnCreate) check() error {
	if _, ok := _c.mutation.EpisodeID(); !ok {
		return &ValidationError{Name: "episode_id", err: errors.New(`ent: missing required field "Turn.episode_id"`)}
	}
	if _, ok := _c.mutation.UserText(); !ok {
		return &ValidationError{Name: "user_text", err: errors.New(`ent: missing required field "Turn.user_text"`)}
	}
	if _, ok := _c.mutation.AssistantText(); !ok {
		return &ValidationError{Name: "assistant_text", err: errors.New(`ent: missing required field "Turn.assistant_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Turn.created_at"`)}
	}
	if len(_c.mutation.EpisodeIDs()) == 0 {
		return &ValidationError{Name: "episode", err: errors.New(`ent: missing required edge "Turn.episode"`)}
	}
	return nil
}

func (_c *TurnCreate) sqlSave(ctx context.Context) (*Turn, error) {
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
			return nil, fmt.Errorf("unexpected Turn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnCreate) createSpec() (*Turn, *sqlgraph.CreateSpec) {
	var (
		_node = &Turn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turn.Table, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserText(); ok {
		_spec.SetField(turn.FieldUserText, field.TypeString, value)
		_node.UserText = value
	}
	if value, ok := _c.mutation.AssistantText(); ok {
		_spec.SetField(turn.FieldAssistantText, field.TypeString, value)
		_node.AssistantText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(turn.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EpisodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.EpisodeTable,
			Columns: []string{turn.EpisodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EpisodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TurnCreateBulk is the builder for creating many Turn entities in bulk.
type TurnCreateBulk struct {
	config
	err      error
	builders []*TurnCreate
}

// Save creates the Turn entities in the database.
func (_c *TurnCreateBulk) Save(ctx context.Context) ([]*Turn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Turn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnMutation)
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
func (_c *TurnCreateBulk) SaveX(ctx context.Context) []*Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
