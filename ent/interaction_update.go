// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/ent/interaction"
	"github.com/stewardhq/steward/ent/predicate"
)

// InteractionUpdate is the builder for updating Interaction entities.
type InteractionUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionMutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdate) Where(ps ...predicate.Interaction) *InteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestText sets the "request_text" field.
func (_u *InteractionUpdate) SetRequestText(v string) *InteractionUpdate {
	_u.mutation.SetRequestText(v)
	return _u
}

// SetNillableRequestText sets the "request_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableRequestText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetRequestText(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InteractionUpdate) SetResponseText(v string) *InteractionUpdate {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableResponseText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *InteractionUpdate) SetResponseTimeMs(v int) *InteractionUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableResponseTimeMs(v *int) *InteractionUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *InteractionUpdate) AddResponseTimeMs(v int) *InteractionUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetTaskCompleted sets the "task_completed" field.
func (_u *InteractionUpdate) SetTaskCompleted(v bool) *InteractionUpdate {
	_u.mutation.SetTaskCompleted(v)
	return _u
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableTaskCompleted(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetTaskCompleted(*v)
	}
	return _u
}

// SetEngagementDurationMs sets the "engagement_duration_ms" field.
func (_u *InteractionUpdate) SetEngagementDurationMs(v int) *InteractionUpdate {
	_u.mutation.ResetEngagementDurationMs()
	_u.mutation.SetEngagementDurationMs(v)
	return _u
}

// SetNillableEngagementDurationMs sets the "engagement_duration_ms" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableEngagementDurationMs(v *int) *InteractionUpdate {
	if v != nil {
		_u.SetEngagementDurationMs(*v)
	}
	return _u
}

// AddEngagementDurationMs adds value to the "engagement_duration_ms" field.
func (_u *InteractionUpdate) AddEngagementDurationMs(v int) *InteractionUpdate {
	_u.mutation.AddEngagementDurationMs(v)
	return _u
}

// ClearEngagementDurationMs clears the value of the "engagement_duration_ms" field.
func (_u *InteractionUpdate) ClearEngagementDurationMs() *InteractionUpdate {
	_u.mutation.ClearEngagementDurationMs()
	return _u
}

// SetFollowUpIn60s sets the "follow_up_in_60s" field.
func (_u *InteractionUpdate) SetFollowUpIn60s(v bool) *InteractionUpdate {
	_u.mutation.SetFollowUpIn60s(v)
	return _u
}

// SetNillableFollowUpIn60s sets the "follow_up_in_60s" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableFollowUpIn60s(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetFollowUpIn60s(*v)
	}
	return _u
}

// ClearFollowUpIn60s clears the value of the "follow_up_in_60s" field.
func (_u *InteractionUpdate) ClearFollowUpIn60s() *InteractionUpdate {
	_u.mutation.ClearFollowUpIn60s()
	return _u
}

// SetContext sets the "context" field.
func (_u *InteractionUpdate) SetContext(v map[string]interface{}) *InteractionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *InteractionUpdate) ClearContext() *InteractionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by IDs.
func (_u *InteractionUpdate) AddFeedbackIDs(ids ...string) *InteractionUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedbacks adds the "feedbacks" edges to the Feedback entity.
func (_u *InteractionUpdate) AddFeedbacks(v ...*Feedback) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdate) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearFeedbacks clears all "feedbacks" edges to the Feedback entity.
func (_u *InteractionUpdate) ClearFeedbacks() *InteractionUpdate {
	_u.mutation.ClearFeedbacks()
	return _u
}

// RemoveFeedbackIDs removes the "feedbacks" edge to Feedback entities by IDs.
func (_u *InteractionUpdate) RemoveFeedbackIDs(ids ...string) *InteractionUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedbacks removes "feedbacks" edges to Feedback entities.
func (_u *InteractionUpdate) RemoveFeedbacks(v ...*Feedback) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdate) check() error {
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := interaction.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "Interaction.response_time_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestText(); ok {
		_spec.SetField(interaction.FieldRequestText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interaction.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(interaction.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCompleted(); ok {
		_spec.SetField(interaction.FieldTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EngagementDurationMs(); ok {
		_spec.SetField(interaction.FieldEngagementDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementDurationMs(); ok {
		_spec.AddField(interaction.FieldEngagementDurationMs, field.TypeInt, value)
	}
	if _u.mutation.EngagementDurationMsCleared() {
		_spec.ClearField(interaction.FieldEngagementDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FollowUpIn60s(); ok {
		_spec.SetField(interaction.FieldFollowUpIn60s, field.TypeBool, value)
	}
	if _u.mutation.FollowUpIn60sCleared() {
		_spec.ClearField(interaction.FieldFollowUpIn60s, field.TypeBool)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(interaction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(interaction.FieldContext, field.TypeJSON)
	}
	if _u.mutation.FeedbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbacksIDs(); len(nodes) > 0 && !_u.mutation.FeedbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbacksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionUpdateOne is the builder for updating a single Interaction entity.
type InteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionMutation
}

// SetRequestText sets the "request_text" field.
func (_u *InteractionUpdateOne) SetRequestText(v string) *InteractionUpdateOne {
	_u.mutation.SetRequestText(v)
	return _u
}

// SetNillableRequestText sets the "request_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableRequestText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetRequestText(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InteractionUpdateOne) SetResponseText(v string) *InteractionUpdateOne {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableResponseText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *InteractionUpdateOne) SetResponseTimeMs(v int) *InteractionUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableResponseTimeMs(v *int) *InteractionUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *InteractionUpdateOne) AddResponseTimeMs(v int) *InteractionUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetTaskCompleted sets the "task_completed" field.
func (_u *InteractionUpdateOne) SetTaskCompleted(v bool) *InteractionUpdateOne {
	_u.mutation.SetTaskCompleted(v)
	return _u
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableTaskCompleted(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetTaskCompleted(*v)
	}
	return _u
}

// SetEngagementDurationMs sets the "engagement_duration_ms" field.
func (_u *InteractionUpdateOne) SetEngagementDurationMs(v int) *InteractionUpdateOne {
	_u.mutation.ResetEngagementDurationMs()
	_u.mutation.SetEngagementDurationMs(v)
	return _u
}

// SetNillableEngagementDurationMs sets the "engagement_duration_ms" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableEngagementDurationMs(v *int) *InteractionUpdateOne {
	if v != nil {
		_u.SetEngagementDurationMs(*v)
	}
	return _u
}

// AddEngagementDurationMs adds value to the "engagement_duration_ms" field.
func (_u *InteractionUpdateOne) AddEngagementDurationMs(v int) *InteractionUpdateOne {
	_u.mutation.AddEngagementDurationMs(v)
	return _u
}

// ClearEngagementDurationMs clears the value of the "engagement_duration_ms" field.
func (_u *InteractionUpdateOne) ClearEngagementDurationMs() *InteractionUpdateOne {
	_u.mutation.ClearEngagementDurationMs()
	return _u
}

// SetFollowUpIn60s sets the "follow_up_in_60s" field.
func (_u *InteractionUpdateOne) SetFollowUpIn60s(v bool) *InteractionUpdateOne {
	_u.mutation.SetFollowUpIn60s(v)
	return _u
}

// SetNillableFollowUpIn60s sets the "follow_up_in_60s" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableFollowUpIn60s(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetFollowUpIn60s(*v)
	}
	return _u
}

// ClearFollowUpIn60s clears the value of the "follow_up_in_60s" field.
func (_u *InteractionUpdateOne) ClearFollowUpIn60s() *InteractionUpdateOne {
	_u.mutation.ClearFollowUpIn60s()
	return _u
}

// SetContext sets the "context" field.
func (_u *InteractionUpdateOne) SetContext(v map[string]interface{}) *InteractionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *InteractionUpdateOne) ClearContext() *InteractionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by IDs.
func (_u *InteractionUpdateOne) AddFeedbackIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedbacks adds the "feedbacks" edges to the Feedback entity.
func (_u *InteractionUpdateOne) AddFeedbacks(v ...*Feedback) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdateOne) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearFeedbacks clears all "feedbacks" edges to the Feedback entity.
func (_u *InteractionUpdateOne) ClearFeedbacks() *InteractionUpdateOne {
	_u.mutation.ClearFeedbacks()
	return _u
}

// RemoveFeedbackIDs removes the "feedbacks" edge to Feedback entities by IDs.
func (_u *InteractionUpdateOne) RemoveFeedbackIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedbacks removes "feedbacks" edges to Feedback entities.
func (_u *InteractionUpdateOne) RemoveFeedbacks(v ...*Feedback) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdateOne) Where(ps ...predicate.Interaction) *InteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionUpdateOne) Select(field string, fields ...string) *InteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interaction entity.
func (_u *InteractionUpdateOne) Save(ctx context.Context) (*Interaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdateOne) SaveX(ctx context.Context) *Interaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := interaction.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "Interaction.response_time_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdateOne) sqlSave(ctx context.Context) (_node *Interaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for _, f := range fields {
			if !interaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interaction.FieldID {
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
	if value, ok := _u.mutation.RequestText(); ok {
		_spec.SetField(interaction.FieldRequestText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interaction.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(interaction.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCompleted(); ok {
		_spec.SetField(interaction.FieldTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EngagementDurationMs(); ok {
		_spec.SetField(interaction.FieldEngagementDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementDurationMs(); ok {
		_spec.AddField(interaction.FieldEngagementDurationMs, field.TypeInt, value)
	}
	if _u.mutation.EngagementDurationMsCleared() {
		_spec.ClearField(interaction.FieldEngagementDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FollowUpIn60s(); ok {
		_spec.SetField(interaction.FieldFollowUpIn60s, field.TypeBool, value)
	}
	if _u.mutation.FollowUpIn60sCleared() {
		_spec.ClearField(interaction.FieldFollowUpIn60s, field.TypeBool)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(interaction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(interaction.FieldContext, field.TypeJSON)
	}
	if _u.mutation.FeedbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbacksIDs(); len(nodes) > 0 && !_u.mutation.FeedbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbacksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
