package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Episode holds the schema definition for the Episode entity.
// A bounded conversational window for one user in one context.
type Episode struct {
	ent.Schema
}

// Fields of the Episode.
func (Episode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("episode_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("context_type").
			Values("chat", "development", "planning", "general").
			Default("chat").
			Immutable(),
		field.Enum("status").
			Values("active", "closed").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Staleness clock for the timeout sweeper"),
		field.Int("timeout_minutes").
			Positive(),
		field.Int("message_count").
			Default(0).
			NonNegative(),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("LLM-produced episode summary, at most 300 words"),
		field.Time("closed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Episode.
func (Episode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("turns", Turn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Episode.
func (Episode) Indexes() []ent.Index {
	return []ent.Index{
		// Active-episode lookup per user/context
		index.Fields("user_id", "context_type", "status"),

		// Timeout sweeper scan
		index.Fields("status", "last_activity_at"),

		// At most one active episode per (user_id, context_type); the
		// episode service recovers from the constraint race on open.
		index.Fields("user_id", "context_type").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")),
	}
}
