package events

import (
	"context"

	"github.com/stewardhq/steward/ent"
)

// eventQuerier is the slice of EventStore the catchup path needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]*ent.Event, error)
}

// CatchupAdapter wraps an EventStore to implement CatchupQuerier.
type CatchupAdapter struct {
	querier eventQuerier
}

// NewCatchupAdapter creates a CatchupQuerier from an EventStore.
func NewCatchupAdapter(q eventQuerier) *CatchupAdapter {
	return &CatchupAdapter{querier: q}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup mechanism.
func (a *CatchupAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	events, err := a.querier.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		}
	}
	return result, nil
}
