package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes activity events for WebSocket delivery.
// Every event is stored in the events table and broadcast via NOTIFY on
// the owning user's channel in one transaction, then mirrored NOTIFY-only
// to the global activity channel.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed via
// persistAndNotify and notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishEpisodeOpened publishes an episode.opened event.
func (p *EventPublisher) PublishEpisodeOpened(ctx context.Context, userID string, payload EpisodeOpenedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EpisodeOpenedPayload: %w", err)
	}
	return p.publish(ctx, userID, payloadJSON)
}

// PublishEpisodeClosed publishes an episode.closed event.
// Fired both on explicit close and on inactivity rotation.
func (p *EventPublisher) PublishEpisodeClosed(ctx context.Context, userID string, payload EpisodeClosedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EpisodeClosedPayload: %w", err)
	}
	return p.publish(ctx, userID, payloadJSON)
}

// PublishActionLogged publishes an action.logged event.
// Fired after an expert tool execution is recorded in the action log.
func (p *EventPublisher) PublishActionLogged(ctx context.Context, userID string, payload ActionLoggedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ActionLoggedPayload: %w", err)
	}
	return p.publish(ctx, userID, payloadJSON)
}

// PublishInteractionRecorded publishes an interaction.recorded event.
// Fired when the satisfaction tracker stores a turn's interaction row.
func (p *EventPublisher) PublishInteractionRecorded(ctx context.Context, userID string, payload InteractionRecordedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal InteractionRecordedPayload: %w", err)
	}
	return p.publish(ctx, userID, payloadJSON)
}

// PublishFeedbackRecorded publishes a feedback.recorded event.
func (p *EventPublisher) PublishFeedbackRecorded(ctx context.Context, userID string, payload FeedbackRecordedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal FeedbackRecordedPayload: %w", err)
	}
	return p.publish(ctx, userID, payloadJSON)
}

// --- Internal core methods ---

// publish persists an event under the user's durable channel and mirrors a
// transient copy to the global activity feed. Both sends are attempted even
// if the first fails; the first error encountered is returned.
func (p *EventPublisher) publish(ctx context.Context, userID string, payloadJSON []byte) error {
	var firstErr error

	if err := p.persistAndNotify(ctx, userID, UserChannel(userID), payloadJSON); err != nil {
		slog.Warn("Failed to publish event to user channel",
			"user_id", userID, "error", err)
		firstErr = err
	}

	// Transient mirror for the admin activity page. No db_event_id here —
	// position tracking only applies to durable channels.
	if err := p.notifyOnly(ctx, ActivityChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish event to activity channel",
			"user_id", userID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, userID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (user_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		UserID    string `json:"user_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"user_id":   routing.UserID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
