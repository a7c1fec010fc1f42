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
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/turn"
)

// EpisodeUpdate is the builder for updating Episode entities.
type EpisodeUpdate struct {
	config
	hooks    []Hook
	mutation *EpisodeMutation
}

// Where appends a list predicates to the EpisodeUpdate builder.
func (_u *EpisodeUpdate) Where(ps ...predicate.Episode) *EpisodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EpisodeUpdate) SetStatus(v episode.Status) *EpisodeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableStatus(v *episode.Status) *EpisodeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *EpisodeUpdate) SetLastActivityAt(v time.Time) *EpisodeUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableLastActivityAt(v *time.Time) *EpisodeUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_u *EpisodeUpdate) SetTimeoutMinutes(v int) *EpisodeUpdate {
	_u.mutation.ResetTimeoutMinutes()
	_u.mutation.SetTimeoutMinutes(v)
	return _u
}

// SetNillableTimeoutMinutes sets the "timeout_minutes" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableTimeoutMinutes(v *int) *EpisodeUpdate {
	if v != nil {
		_u.SetTimeoutMinutes(*v)
	}
	return _u
}

// AddTimeoutMinutes adds value to the "timeout_minutes" field.
func (_u *EpisodeUpdate) AddTimeoutMinutes(v int) *EpisodeUpdate {
	_u.mutation.AddTimeoutMinutes(v)
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *EpisodeUpdate) SetMessageCount(v int) *EpisodeUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableMessageCount(v *int) *EpisodeUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *EpisodeUpdate) AddMessageCount(v int) *EpisodeUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EpisodeUpdate) SetSummary(v string) *EpisodeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableSummary(v *string) *EpisodeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EpisodeUpdate) ClearSummary() *EpisodeUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *EpisodeUpdate) SetClosedAt(v time.Time) *EpisodeUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableClosedAt(v *time.Time) *EpisodeUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *EpisodeUpdate) ClearClosedAt() *EpisodeUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_u *EpisodeUpdate) AddTurnIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_u *EpisodeUpdate) AddTurns(v ...*Turn) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_u *EpisodeUpdate) Mutation() *EpisodeMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the Turn entity.
func (_u *EpisodeUpdate) ClearTurns() *EpisodeUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to Turn entities by IDs.
func (_u *EpisodeUpdate) RemoveTurnIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to Turn entities.
func (_u *EpisodeUpdate) RemoveTurns(v ...*Turn) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EpisodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EpisodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EpisodeUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeoutMinutes(); ok {
		if err := episode.TimeoutMinutesValidator(v); err != nil {
			return &ValidationError{Name: "timeout_minutes", err: fmt.Errorf(`ent: validator failed for field "Episode.timeout_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageCount(); ok {
		if err := episode.MessageCountValidator(v); err != nil {
			return &ValidationError{Name: "message_count", err: fmt.Errorf(`ent: validator failed for field "Episode.message_count": %w`, err)}
		}
	}
	return nil
}

func (_u *EpisodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(episode.Table, episode.Columns, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(episode.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutMinutes(); ok {
		_spec.SetField(episode.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMinutes(); ok {
		_spec.AddField(episode.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(episode.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(episode.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(episode.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(episode.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(episode.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(episode.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EpisodeUpdateOne is the builder for updating a single Episode entity.
type EpisodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EpisodeMutation
}

// SetStatus sets the "status" field.
func (_u *EpisodeUpdateOne) SetStatus(v episode.Status) *EpisodeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableStatus(v *episode.Status) *EpisodeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *EpisodeUpdateOne) SetLastActivityAt(v time.Time) *EpisodeUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableLastActivityAt(v *time.Time) *EpisodeUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_u *EpisodeUpdateOne) SetTimeoutMinutes(v int) *EpisodeUpdateOne {
	_u.mutation.ResetTimeoutMinutes()
	_u.mutation.SetTimeoutMinutes(v)
	return _u
}

// SetNillableTimeoutMinutes sets the "timeout_minutes" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableTimeoutMinutes(v *int) *EpisodeUpdateOne {
	if v != nil {
		_u.SetTimeoutMinutes(*v)
	}
	return _u
}

// AddTimeoutMinutes adds value to the "timeout_minutes" field.
func (_u *EpisodeUpdateOne) AddTimeoutMinutes(v int) *EpisodeUpdateOne {
	_u.mutation.AddTimeoutMinutes(v)
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *EpisodeUpdateOne) SetMessageCount(v int) *EpisodeUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableMessageCount(v *int) *EpisodeUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *EpisodeUpdateOne) AddMessageCount(v int) *EpisodeUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EpisodeUpdateOne) SetSummary(v string) *EpisodeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableSummary(v *string) *EpisodeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EpisodeUpdateOne) ClearSummary() *EpisodeUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *EpisodeUpdateOne) SetClosedAt(v time.Time) *EpisodeUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableClosedAt(v *time.Time) *EpisodeUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *EpisodeUpdateOne) ClearClosedAt() *EpisodeUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_u *EpisodeUpdateOne) AddTurnIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_u *EpisodeUpdateOne) AddTurns(v ...*Turn) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_u *EpisodeUpdateOne) Mutation() *EpisodeMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the Turn entity.
func (_u *EpisodeUpdateOne) ClearTurns() *EpisodeUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to Turn entities by IDs.
func (_u *EpisodeUpdateOne) RemoveTurnIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to Turn entities.
func (_u *EpisodeUpdateOne) RemoveTurns(v ...*Turn) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Where appends a list predicates to the EpisodeUpdate builder.
func (_u *EpisodeUpdateOne) Where(ps ...predicate.Episode) *EpisodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EpisodeUpdateOne) Select(field string, fields ...string) *EpisodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Episode entity.
func (_u *EpisodeUpdateOne) Save(ctx context.Context) (*Episode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeUpdateOne) SaveX(ctx context.Context) *Episode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EpisodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EpisodeUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeoutMinutes(); ok {
		if err := episode.TimeoutMinutesValidator(v); err != nil {
			return &ValidationError{Name: "timeout_minutes", err: fmt.Errorf(`ent: validator failed for field "Episode.timeout_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageCount(); ok {
		if err := episode.MessageCountValidator(v); err != nil {
			return &ValidationError{Name: "message_count", err: fmt.Errorf(`ent: validator failed for field "Episode.message_count": %w`, err)}
		}
	}
	return nil
}

func (_u *EpisodeUpdateOne) sqlSave(ctx context.Context) (_node *Episode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(episode.Table, episode.Columns, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Episode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, episode.FieldID)
		for _, f := range fields {
			if !episode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != episode.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(episode.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutMinutes(); ok {
		_spec.SetField(episode.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMinutes(); ok {
		_spec.AddField(episode.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(episode.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(episode.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(episode.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(episode.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(episode.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(episode.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Episode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
