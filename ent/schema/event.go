package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Durable copy of published activity events, used by WebSocket clients to
// catch up after a reconnect (last_event_id replay). Rows are short-lived;
// the retention sweeper prunes them.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The integer primary key is the catch-up cursor: BIGSERIAL, monotonically
// increasing within a channel.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Default("").
			Comment("Empty for global activity events"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up replay scans a channel from a cursor
		index.Fields("channel", "id"),

		// Retention pruning
		index.Fields("created_at"),
	}
}
