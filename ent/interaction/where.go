// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUserID, v))
}

// RequestText applies equality check predicate on the "request_text" field. It's identical to RequestTextEQ.
func RequestText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRequestText, v))
}

// ResponseText applies equality check predicate on the "response_text" field. It's identical to ResponseTextEQ.
func ResponseText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseTimeMs, v))
}

// TaskCompleted applies equality check predicate on the "task_completed" field. It's identical to TaskCompletedEQ.
func TaskCompleted(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTaskCompleted, v))
}

// EngagementDurationMs applies equality check predicate on the "engagement_duration_ms" field. It's identical to EngagementDurationMsEQ.
func EngagementDurationMs(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldEngagementDurationMs, v))
}

// FollowUpIn60s applies equality check predicate on the "follow_up_in_60s" field. It's identical to FollowUpIn60sEQ.
func FollowUpIn60s(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldFollowUpIn60s, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldUserID, v))
}

// RequestTextEQ applies the EQ predicate on the "request_text" field.
func RequestTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRequestText, v))
}

// RequestTextNEQ applies the NEQ predicate on the "request_text" field.
func RequestTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldRequestText, v))
}

// RequestTextIn applies the In predicate on the "request_text" field.
func RequestTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldRequestText, vs...))
}

// RequestTextNotIn applies the NotIn predicate on the "request_text" field.
func RequestTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldRequestText, vs...))
}

// RequestTextGT applies the GT predicate on the "request_text" field.
func RequestTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldRequestText, v))
}

// RequestTextGTE applies the GTE predicate on the "request_text" field.
func RequestTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldRequestText, v))
}

// RequestTextLT applies the LT predicate on the "request_text" field.
func RequestTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldRequestText, v))
}

// RequestTextLTE applies the LTE predicate on the "request_text" field.
func RequestTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldRequestText, v))
}

// RequestTextContains applies the Contains predicate on the "request_text" field.
func RequestTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldRequestText, v))
}

// RequestTextHasPrefix applies the HasPrefix predicate on the "request_text" field.
func RequestTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldRequestText, v))
}

// RequestTextHasSuffix applies the HasSuffix predicate on the "request_text" field.
func RequestTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldRequestText, v))
}

// RequestTextEqualFold applies the EqualFold predicate on the "request_text" field.
func RequestTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldRequestText, v))
}

// RequestTextContainsFold applies the ContainsFold predicate on the "request_text" field.
func RequestTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldRequestText, v))
}

// ResponseTextEQ applies the EQ predicate on the "response_text" field.
func ResponseTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTextNEQ applies the NEQ predicate on the "response_text" field.
func ResponseTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldResponseText, v))
}

// ResponseTextIn applies the In predicate on the "response_text" field.
func ResponseTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldResponseText, vs...))
}

// ResponseTextNotIn applies the NotIn predicate on the "response_text" field.
func ResponseTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldResponseText, vs...))
}

// ResponseTextGT applies the GT predicate on the "response_text" field.
func ResponseTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldResponseText, v))
}

// ResponseTextGTE applies the GTE predicate on the "response_text" field.
func ResponseTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldResponseText, v))
}

// ResponseTextLT applies the LT predicate on the "response_text" field.
func ResponseTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldResponseText, v))
}

// ResponseTextLTE applies the LTE predicate on the "response_text" field.
func ResponseTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldResponseText, v))
}

// ResponseTextContains applies the Contains predicate on the "response_text" field.
func ResponseTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldResponseText, v))
}

// ResponseTextHasPrefix applies the HasPrefix predicate on the "response_text" field.
func ResponseTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldResponseText, v))
}

// ResponseTextHasSuffix applies the HasSuffix predicate on the "response_text" field.
func ResponseTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldResponseText, v))
}

// ResponseTextEqualFold applies the EqualFold predicate on the "response_text" field.
func ResponseTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldResponseText, v))
}

// ResponseTextContainsFold applies the ContainsFold predicate on the "response_text" field.
func ResponseTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldResponseText, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldResponseTimeMs, v))
}

// TaskCompletedEQ applies the EQ predicate on the "task_completed" field.
func TaskCompletedEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTaskCompleted, v))
}

// TaskCompletedNEQ applies the NEQ predicate on the "task_completed" field.
func TaskCompletedNEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldTaskCompleted, v))
}

// EngagementDurationMsEQ applies the EQ predicate on the "engagement_duration_ms" field.
func EngagementDurationMsEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldEngagementDurationMs, v))
}

// EngagementDurationMsNEQ applies the NEQ predicate on the "engagement_duration_ms" field.
func EngagementDurationMsNEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldEngagementDurationMs, v))
}

// EngagementDurationMsIn applies the In predicate on the "engagement_duration_ms" field.
func EngagementDurationMsIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldEngagementDurationMs, vs...))
}

// EngagementDurationMsNotIn applies the NotIn predicate on the "engagement_duration_ms" field.
func EngagementDurationMsNotIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldEngagementDurationMs, vs...))
}

// EngagementDurationMsGT applies the GT predicate on the "engagement_duration_ms" field.
func EngagementDurationMsGT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldEngagementDurationMs, v))
}

// EngagementDurationMsGTE applies the GTE predicate on the "engagement_duration_ms" field.
func EngagementDurationMsGTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldEngagementDurationMs, v))
}

// EngagementDurationMsLT applies the LT predicate on the "engagement_duration_ms" field.
func EngagementDurationMsLT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldEngagementDurationMs, v))
}

// EngagementDurationMsLTE applies the LTE predicate on the "engagement_duration_ms" field.
func EngagementDurationMsLTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldEngagementDurationMs, v))
}

// EngagementDurationMsIsNil applies the IsNil predicate on the "engagement_duration_ms" field.
func EngagementDurationMsIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldEngagementDurationMs))
}

// EngagementDurationMsNotNil applies the NotNil predicate on the "engagement_duration_ms" field.
func EngagementDurationMsNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldEngagementDurationMs))
}

// FollowUpIn60sEQ applies the EQ predicate on the "follow_up_in_60s" field.
func FollowUpIn60sEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldFollowUpIn60s, v))
}

// FollowUpIn60sNEQ applies the NEQ predicate on the "follow_up_in_60s" field.
func FollowUpIn60sNEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldFollowUpIn60s, v))
}

// FollowUpIn60sIsNil applies the IsNil predicate on the "follow_up_in_60s" field.
func FollowUpIn60sIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldFollowUpIn60s))
}

// FollowUpIn60sNotNil applies the NotNil predicate on the "follow_up_in_60s" field.
func FollowUpIn60sNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldFollowUpIn60s))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFeedbacks applies the HasEdge predicate on the "feedbacks" edge.
func HasFeedbacks() predicate.Interaction {
	return predicate.Interaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbacksTable, FeedbacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbacksWith applies the HasEdge predicate on the "feedbacks" edge with a given conditions (other predicates).
func HasFeedbacksWith(preds ...predicate.Feedback) predicate.Interaction {
	return predicate.Interaction(func(s *sql.Selector) {
		step := newFeedbacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.NotPredicates(p))
}
