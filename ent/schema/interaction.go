package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction holds the schema definition for the Interaction entity.
// Exactly one row per turn that reached prompt composition; the unit of
// satisfaction measurement.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("request_text"),
		field.Text("response_text"),
		field.Int("response_time_ms").
			NonNegative(),
		field.Bool("task_completed").
			Default(false),
		field.Int("engagement_duration_ms").
			Optional().
			Nillable().
			Comment("Implicit client signal"),
		field.Bool("follow_up_in_60s").
			Optional().
			Nillable().
			Comment("Implicit client signal"),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Episode id, executed experts, partial flag"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("feedbacks", Feedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
