package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Turn holds the schema definition for the Turn entity.
// One user message paired with the assistant's response. Append-only;
// rows are removed only when the owning episode is deleted.
type Turn struct {
	ent.Schema
}

// Fields of the Turn.
func (Turn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("turn_id").
			Unique().
			Immutable(),
		field.String("episode_id").
			Immutable(),
		field.Text("user_text"),
		field.Text("assistant_text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Turn.
func (Turn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("episode", Episode.Type).
			Ref("turns").
			Field("episode_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Turn.
func (Turn) Indexes() []ent.Index {
	return []ent.Index{
		// Recent-turns read path, newest first
		index.Fields("episode_id", "created_at"),
	}
}
