package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feedback holds the schema definition for the Feedback entity.
// Zero or more explicit or implicit feedback rows per interaction.
type Feedback struct {
	ent.Schema
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("interaction_id").
			Immutable(),
		field.Enum("kind").
			Values("rating", "thumbs", "text", "implicit"),
		field.Float("value").
			Optional().
			Nillable().
			Comment("rating 1-5, thumbs 1/0, implicit normalized 0-1"),
		field.Text("text").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Feedback.
func (Feedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("feedbacks").
			Field("interaction_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("interaction_id"),
		index.Fields("user_id", "created_at"),
	}
}
