// Code generated by ent, DO NOT EDIT.

package turn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldID, id))
}

// EpisodeID applies equality check predicate on the "episode_id" field. It's identical to EpisodeIDEQ.
func EpisodeID(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldEpisodeID, v))
}

// UserText applies equality check predicate on the "user_text" field. It's identical to UserTextEQ.
func UserText(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldUserText, v))
}

// AssistantText applies equality check predicate on the "assistant_text" field. It's identical to AssistantTextEQ.
func AssistantText(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldAssistantText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldCreatedAt, v))
}

// EpisodeIDEQ applies the EQ predicate on the "episode_id" field.
func EpisodeIDEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldEpisodeID, v))
}

// EpisodeIDNEQ applies the NEQ predicate on the "episode_id" field.
func EpisodeIDNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldEpisodeID, v))
}

// EpisodeIDIn applies the In predicate on the "episode_id" field.
func EpisodeIDIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldEpisodeID, vs...))
}

// EpisodeIDNotIn applies the NotIn predicate on the "episode_id" field.
func EpisodeIDNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldEpisodeID, vs...))
}

// EpisodeIDGT applies the GT predicate on the "episode_id" field.
func EpisodeIDGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldEpisodeID, v))
}

// EpisodeIDGTE applies the GTE predicate on the "episode_id" field.
func EpisodeIDGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldEpisodeID, v))
}

// EpisodeIDLT applies the LT predicate on the "episode_id" field.
func EpisodeIDLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldEpisodeID, v))
}

// EpisodeIDLTE applies the LTE predicate on the "episode_id" field.
func EpisodeIDLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldEpisodeID, v))
}

// EpisodeIDContains applies the Contains predicate on the "episode_id" field.
func EpisodeIDContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldEpisodeID, v))
}

// EpisodeIDHasPrefix applies the HasPrefix predicate on the "episode_id" field.
func EpisodeIDHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldEpisodeID, v))
}

// EpisodeIDHasSuffix applies the HasSuffix predicate on the "episode_id" field.
func EpisodeIDHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldEpisodeID, v))
}

// EpisodeIDEqualFold applies the EqualFold predicate on the "episode_id" field.
func EpisodeIDEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldEpisodeID, v))
}

// EpisodeIDContainsFold applies the ContainsFold predicate on the "episode_id" field.
func EpisodeIDContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldEpisodeID, v))
}

// UserTextEQ applies the EQ predicate on the "user_text" field.
func UserTextEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldUserText, v))
}

// UserTextNEQ applies the NEQ predicate on the "user_text" field.
func UserTextNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldUserText, v))
}

// UserTextIn applies the In predicate on the "user_text" field.
func UserTextIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldUserText, vs...))
}

// UserTextNotIn applies the NotIn predicate on the "user_text" field.
func UserTextNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldUserText, vs...))
}

// UserTextGT applies the GT predicate on the "user_text" field.
func UserTextGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldUserText, v))
}

// UserTextGTE applies the GTE predicate on the "user_text" field.
func UserTextGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldUserText, v))
}

// UserTextLT applies the LT predicate on the "user_text" field.
func UserTextLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldUserText, v))
}

// UserTextLTE applies the LTE predicate on the "user_text" field.
func UserTextLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldUserText, v))
}

// UserTextContains applies the Contains predicate on the "user_text" field.
func UserTextContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldUserText, v))
}

// UserTextHasPrefix applies the HasPrefix predicate on the "user_text" field.
func UserTextHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldUserText, v))
}

// UserTextHasSuffix applies the HasSuffix predicate on the "user_text" field.
func UserTextHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldUserText, v))
}

// UserTextEqualFold applies the EqualFold predicate on the "user_text" field.
func UserTextEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldUserText, v))
}

// UserTextContainsFold applies the ContainsFold predicate on the "user_text" field.
func UserTextContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldUserText, v))
}

// AssistantTextEQ applies the EQ predicate on the "assistant_text" field.
func AssistantTextEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldAssistantText, v))
}

// AssistantTextNEQ applies the NEQ predicate on the "assistant_text" field.
func AssistantTextNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldAssistantText, v))
}

// AssistantTextIn applies the In predicate on the "assistant_text" field.
func AssistantTextIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldAssistantText, vs...))
}

// AssistantTextNotIn applies the NotIn predicate on the "assistant_text" field.
func AssistantTextNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldAssistantText, vs...))
}

// AssistantTextGT applies the GT predicate on the "assistant_text" field.
func AssistantTextGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldAssistantText, v))
}

// AssistantTextGTE applies the GTE predicate on the "assistant_text" field.
func AssistantTextGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldAssistantText, v))
}

// AssistantTextLT applies the LT predicate on the "assistant_text" field.
func AssistantTextLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldAssistantText, v))
}

// AssistantTextLTE applies the LTE predicate on the "assistant_text" field.
func AssistantTextLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldAssistantText, v))
}

// AssistantTextContains applies the Contains predicate on the "assistant_text" field.
func AssistantTextContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldAssistantText, v))
}

// AssistantTextHasPrefix applies the HasPrefix predicate on the "assistant_text" field.
func AssistantTextHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldAssistantText, v))
}

// AssistantTextHasSuffix applies the HasSuffix predicate on the "assistant_text" field.
func AssistantTextHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldAssistantText, v))
}

// AssistantTextEqualFold applies the EqualFold predicate on the "assistant_text" field.
func AssistantTextEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldAssistantText, v))
}

// AssistantTextContainsFold applies the ContainsFold predicate on the "assistant_text" field.
func AssistantTextContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldAssistantText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEpisode applies the HasEdge predicate on the "episode" edge.
func HasEpisode() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EpisodeTable, EpisodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEpisodeWith applies the HasEdge predicate on the "episode" edge with a given conditions (other predicates).
func HasEpisodeWith(preds ...predicate.Episode) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newEpisodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.NotPredicates(p))
}
