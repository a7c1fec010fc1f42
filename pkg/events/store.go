package events

import (
	"context"
	"fmt"
	"time"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/event"
)

// EventStore reads and prunes rows in the events table. It backs the
// WebSocket catch-up mechanism (via CatchupAdapter) and the retention
// sweeper.
type EventStore struct {
	client *ent.Client
}

// NewEventStore creates a new EventStore.
func NewEventStore(client *ent.Client) *EventStore {
	return &EventStore{client: client}
}

// GetEventsSince returns events on a channel with ID greater than sinceID,
// ordered by ID ascending, up to limit rows.
func (s *EventStore) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events on %s since %d: %w", channel, sinceID, err)
	}
	return events, nil
}

// DeleteEventsBefore removes events created before the cutoff and returns
// the number of rows removed. Used by the retention sweeper; event rows
// only need to outlive a client reconnect window.
func (s *EventStore) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
