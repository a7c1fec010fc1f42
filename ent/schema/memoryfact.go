package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryFact holds the schema definition for the MemoryFact entity.
// Long-term searchable knowledge with decay-weighted retrieval.
type MemoryFact struct {
	ent.Schema
}

// Fields of the MemoryFact.
func (MemoryFact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("fact_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("subject_kind").
			Values("person", "project", "general").
			Default("general"),
		field.String("subject_id").
			Optional().
			Default("").
			Comment("Empty when the fact is not tied to a subject; part of the idempotence key"),
		field.Text("text").
			NotEmpty().
			Comment("Fact body (full-text searchable)"),
		field.Float("importance").
			Default(5).
			Min(0).
			Max(10),
		field.Bytes("embedding").
			Optional().
			Nillable().
			Comment("Opaque vector blob, unused unless a vector index is configured"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_accessed_at").
			Default(time.Now),
		field.Int("access_count").
			Default(0).
			NonNegative(),
	}
}

// Indexes of the MemoryFact.
func (MemoryFact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "subject_kind"),
	}
}

// The GIN full-text index over "text" and the idempotence unique index
// (user_id, subject_id, md5(text)) are expression indexes created by the
// SQL migrations; ent cannot express either.
