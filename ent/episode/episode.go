// Code generated by ent, DO NOT EDIT.

package episode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the episode type in the database.
	Label = "episode"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "episode_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldContextType holds the string denoting the context_type field in the database.
	FieldContextType = "context_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldTimeoutMinutes holds the string denoting the timeout_minutes field in the database.
	FieldTimeoutMinutes = "timeout_minutes"
	// FieldMessageCount holds the string denoting the message_count field in the database.
	FieldMessageCount = "message_count"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// EdgeTurns holds the string denoting the turns edge name in mutations.
	EdgeTurns = "turns"
	// TurnFieldID holds the string denoting the ID field of the Turn.
	TurnFieldID = "turn_id"
	// Table holds the table name of the episode in the database.
	Table = "episodes"
	// TurnsTable is the table that holds the turns relation/edge.
	TurnsTable = "turns"
	// TurnsInverseTable is the table name for the Turn entity.
	// It exists in this package in order to avoid circular dependency with the "turn" package.
	TurnsInverseTable = "turns"
	// TurnsColumn is the table column denoting the turns relation/edge.
	TurnsColumn = "episode_id"
)

// Columns holds all SQL columns for episode fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldContextType,
	FieldStatus,
	FieldStartedAt,
	FieldLastActivityAt,
	FieldTimeoutMinutes,
	FieldMessageCount,
	FieldSummary,
	FieldClosedAt,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// TimeoutMinutesValidator is a validator for the "timeout_minutes" field. It is called by the builders before save.
	TimeoutMinutesValidator func(int) error
	// DefaultMessageCount holds the default value on creation for the "message_count" field.
	DefaultMessageCount int
	// MessageCountValidator is a validator for the "message_count" field. It is called by the builders before save.
	MessageCountValidator func(int) error
)

// ContextType defines the type for the "context_type" enum field.
type ContextType string

// ContextTypeChat is the default value of the ContextType enum.
const DefaultContextType = ContextTypeChat

// ContextType values.
const (
	ContextTypeChat        ContextType = "chat"
	ContextTypeDevelopment ContextType = "development"
	ContextTypePlanning    ContextType = "planning"
	ContextTypeGeneral     ContextType = "general"
)

func (ct ContextType) String() string {
	return string(ct)
}

// ContextTypeValidator is a validator for the "context_type" field enum values. It is called by the builders before save.
func ContextTypeValidator(ct ContextType) error {
	switch ct {
	case ContextTypeChat, ContextTypeDevelopment, ContextTypePlanning, ContextTypeGeneral:
		return nil
	default:
		return fmt.Errorf("episode: invalid enum value for context_type field: %q", ct)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusClosed:
		return nil
	default:
		return fmt.Errorf("episode: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Episode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByContextType orders the results by the context_type field.
func ByContextType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByTimeoutMinutes orders the results by the timeout_minutes field.
func ByTimeoutMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMinutes, opts...).ToFunc()
}

// ByMessageCount orders the results by the message_count field.
func ByMessageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageCount, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}

// ByTurnsCount orders the results by turns count.
func ByTurnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTurnsStep(), opts...)
	}
}

// ByTurns orders the results by turns terms.
func ByTurns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTurnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTurnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TurnsInverseTable, TurnFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
	)
}
