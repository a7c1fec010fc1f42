// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interaction type in the database.
	Label = "interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "interaction_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRequestText holds the string denoting the request_text field in the database.
	FieldRequestText = "request_text"
	// FieldResponseText holds the string denoting the response_text field in the database.
	FieldResponseText = "response_text"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldTaskCompleted holds the string denoting the task_completed field in the database.
	FieldTaskCompleted = "task_completed"
	// FieldEngagementDurationMs holds the string denoting the engagement_duration_ms field in the database.
	FieldEngagementDurationMs = "engagement_duration_ms"
	// FieldFollowUpIn60s holds the string denoting the follow_up_in_60s field in the database.
	FieldFollowUpIn60s = "follow_up_in_60s"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFeedbacks holds the string denoting the feedbacks edge name in mutations.
	EdgeFeedbacks = "feedbacks"
	// FeedbackFieldID holds the string denoting the ID field of the Feedback.
	FeedbackFieldID = "feedback_id"
	// Table holds the table name of the interaction in the database.
	Table = "interactions"
	// FeedbacksTable is the table that holds the feedbacks relation/edge.
	FeedbacksTable = "feedbacks"
	// FeedbacksInverseTable is the table name for the Feedback entity.
	// It exists in this package in order to avoid circular dependency with the "feedback" package.
	FeedbacksInverseTable = "feedbacks"
	// FeedbacksColumn is the table column denoting the feedbacks relation/edge.
	FeedbacksColumn = "interaction_id"
)

// Columns holds all SQL columns for interaction fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRequestText,
	FieldResponseText,
	FieldResponseTimeMs,
	FieldTaskCompleted,
	FieldEngagementDurationMs,
	FieldFollowUpIn60s,
	FieldContext,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	ResponseTimeMsValidator func(int) error
	// DefaultTaskCompleted holds the default value on creation for the "task_completed" field.
	DefaultTaskCompleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Interaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRequestText orders the results by the request_text field.
func ByRequestText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestText, opts...).ToFunc()
}

// ByResponseText orders the results by the response_text field.
func ByResponseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseText, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByTaskCompleted orders the results by the task_completed field.
func ByTaskCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskCompleted, opts...).ToFunc()
}

// ByEngagementDurationMs orders the results by the engagement_duration_ms field.
func ByEngagementDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementDurationMs, opts...).ToFunc()
}

// ByFollowUpIn60s orders the results by the follow_up_in_60s field.
func ByFollowUpIn60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpIn60s, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFeedbacksCount orders the results by feedbacks count.
func ByFeedbacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbacksStep(), opts...)
	}
}

// ByFeedbacks orders the results by feedbacks terms.
func ByFeedbacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFeedbacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbacksInverseTable, FeedbackFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbacksTable, FeedbacksColumn),
	)
}
