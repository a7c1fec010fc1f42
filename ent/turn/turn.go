// Code generated by ent, DO NOT EDIT.

package turn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the turn type in the database.
	Label = "turn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "turn_id"
	// FieldEpisodeID holds the string denoting the episode_id field in the database.
	FieldEpisodeID = "episode_id"
	// FieldUserText holds the string denoting the user_text field in the database.
	FieldUserText = "user_text"
	// FieldAssistantText holds the string denoting the assistant_text field in the database.
	FieldAssistantText = "assistant_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEpisode holds the string denoting the episode edge name in mutations.
	EdgeEpisode = "episode"
	// EpisodeFieldID holds the string denoting the ID field of the Episode.
	EpisodeFieldID = "episode_id"
	// Table holds the table name of the turn in the database.
	Table = "turns"
	// EpisodeTable is the table that holds the episode relation/edge.
	EpisodeTable = "turns"
	// EpisodeInverseTable is the table name for the Episode entity.
	// It exists in this package in order to avoid circular dependency with the "episode" package.
	EpisodeInverseTable = "episodes"
	// EpisodeColumn is the table column denoting the episode relation/edge.
	EpisodeColumn = "episode_id"
)

// Columns holds all SQL columns for turn fields.
var Columns = []string{
	FieldID,
	FieldEpisodeID,
	FieldUserText,
	FieldAssistantText,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Turn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEpisodeID orders the results by the episode_id field.
func ByEpisodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpisodeID, opts...).ToFunc()
}

// ByUserText orders the results by the user_text field.
func ByUserText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserText, opts...).ToFunc()
}

// ByAssistantText orders the results by the assistant_text field.
func ByAssistantText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEpisodeField orders the results by episode field.
func ByEpisodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEpisodeStep(), sql.OrderByField(field, opts...))
	}
}
func newEpisodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EpisodeInverseTable, EpisodeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EpisodeTable, EpisodeColumn),
	)
}
