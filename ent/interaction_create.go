// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/ent/interaction"
)

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InteractionCreate) SetUserID(v string) *InteractionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRequestText sets the "request_text" field.
func (_c *InteractionCreate) SetRequestText(v string) *InteractionCreate {
	_c.mutation.SetRequestText(v)
	return _c
}

// SetResponseText sets the "response_text" field.
func (_c *InteractionCreate) SetResponseText(v string) *InteractionCreate {
	_c.mutation.SetResponseText(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *InteractionCreate) SetResponseTimeMs(v int) *InteractionCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetTaskCompleted sets the "task_completed" field.
func (_c *InteractionCreate) SetTaskCompleted(v bool) *InteractionCreate {
	_c.mutation.SetTaskCompleted(v)
	return _c
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableTaskCompleted(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetTaskCompleted(*v)
	}
	return _c
}

// SetEngagementDurationMs sets the "engagement_duration_ms" field.
func (_c *InteractionCreate) SetEngagementDurationMs(v int) *InteractionCreate {
	_c.mutation.SetEngagementDurationMs(v)
	return _c
}

// SetNillableEngagementDurationMs sets the "engagement_duration_ms" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableEngagementDurationMs(v *int) *InteractionCreate {
	if v != nil {
		_c.SetEngagementDurationMs(*v)
	}
	return _c
}

// SetFollowUpIn60s sets the "follow_up_in_60s" field.
func (_c *InteractionCreate) SetFollowUpIn60s(v bool) *InteractionCreate {
	_c.mutation.SetFollowUpIn60s(v)
	return _c
}

// SetNillableFollowUpIn60s sets the "follow_up_in_60s" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableFollowUpIn60s(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetFollowUpIn60s(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *InteractionCreate) SetContext(v map[string]interface{}) *InteractionCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionCreate) SetCreatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCreatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionCreate) SetID(v string) *InteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by IDs.
func (_c *InteractionCreate) AddFeedbackIDs(ids ...string) *InteractionCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedbacks adds the "feedbacks" edges to the Feedback entity.
func (_c *InteractionCreate) AddFeedbacks(v ...*Feedback) *InteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.TaskCompleted(); !ok {
		v := interaction.DefaultTaskCompleted
		_c.mutation.SetTaskCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Interaction.user_id"`)}
	}
	if _, ok := _c.mutation.RequestText(); !ok {
		return &ValidationError{Name: "request_text", err: errors.New(`ent: missing required field "Interaction.request_text"`)}
	}
	if _, ok := _c.mutation.ResponseText(); !ok {
		return &ValidationError{Name: "response_text", err: errors.New(`ent: missing required field "Interaction.response_text"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "Interaction.response_time_ms"`)}
	}
	if v, ok := _c.mutation.ResponseTimeMs(); ok {
		if err := interaction.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "Interaction.response_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskCompleted(); !ok {
		return &ValidationError{Name: "task_completed", err: errors.New(`ent: missing required field "Interaction.task_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interaction.created_at"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
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
			return nil, fmt.Errorf("unexpected Interaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interaction.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RequestText(); ok {
		_spec.SetField(interaction.FieldRequestText, field.TypeString, value)
		_node.RequestText = value
	}
	if value, ok := _c.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
		_node.ResponseText = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interaction.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.TaskCompleted(); ok {
		_spec.SetField(interaction.FieldTaskCompleted, field.TypeBool, value)
		_node.TaskCompleted = value
	}
	if value, ok := _c.mutation.EngagementDurationMs(); ok {
		_spec.SetField(interaction.FieldEngagementDurationMs, field.TypeInt, value)
		_node.EngagementDurationMs = &value
	}
	if value, ok := _c.mutation.FollowUpIn60s(); ok {
		_spec.SetField(interaction.FieldFollowUpIn60s, field.TypeBool, value)
		_node.FollowUpIn60s = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(interaction.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FeedbacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.FeedbacksTable,
			Columns: []string{interaction.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
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
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
