package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionLog holds the schema definition for the ActionLog entity.
// Append-only record of every expert tool execution, success or failure.
type ActionLog struct {
	ent.Schema
}

// Fields of the ActionLog.
func (ActionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tool_name").
			Comment("Expert tool identifier, e.g. 'list.add'"),
		field.JSON("tool_params", map[string]interface{}{}).
			Optional().
			Comment("Redacted parameters the tool was invoked with"),
		field.Bool("success"),
		field.String("error_kind").
			Optional().
			Nillable().
			Comment("Fault kind when success=false"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("Completion time of the execution, not its start"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.String("session_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the ActionLog.
func (ActionLog) Indexes() []ent.Index {
	return []ent.Index{
		// Per-user recency reads
		index.Fields("user_id", "timestamp"),

		// Per-tool analytics
		index.Fields("tool_name", "timestamp"),
	}
}
