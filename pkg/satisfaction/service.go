// Package satisfaction records interactions and feedback and derives
// aggregate satisfaction statistics lazily on read. No learning happens
// here; the tracker only stores signals and interprets them when asked.
package satisfaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/ent"
	entfeedback "github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/ent/interaction"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
)

// statsWindow bounds how many recent interactions the lazy aggregates read.
const statsWindow = 100

// trendSampleSize is how many scored interactions each trend bucket holds.
const trendSampleSize = 10

// trendThreshold is the satisfaction delta that separates stable from
// improving/declining.
const trendThreshold = 0.05

// Feedback kinds accepted by RecordFeedback.
const (
	KindRating   = "rating"
	KindThumbs   = "thumbs"
	KindText     = "text"
	KindImplicit = "implicit"
)

// Trend describes how recent satisfaction compares with the stretch before.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Publisher publishes tracker events for the live feeds. Implemented by
// events.EventPublisher; nil disables publishing.
type Publisher interface {
	PublishInteractionRecorded(ctx context.Context, userID string, payload events.InteractionRecordedPayload) error
	PublishFeedbackRecorded(ctx context.Context, userID string, payload events.FeedbackRecordedPayload) error
}

// Service is the satisfaction tracker.
type Service struct {
	client    *ent.Client
	publisher Publisher
	logger    *slog.Logger
}

// NewService creates a satisfaction tracker.
func NewService(client *ent.Client, publisher Publisher) *Service {
	return &Service{
		client:    client,
		publisher: publisher,
		logger:    slog.With("component", "satisfaction"),
	}
}

// Interaction describes one completed turn for recording. The orchestrator
// builds exactly one per turn that reached prompt composition.
type Interaction struct {
	UserID          string
	RequestText     string
	ResponseText    string
	ResponseTimeMs  int
	TaskCompleted   bool
	EpisodeID       string
	ExecutedExperts []string
	Partial         bool

	// Implicit client signals, stored verbatim and interpreted at read time.
	EngagementDurationMs *int
	FollowUpIn60s        *bool
}

// RecordInteraction persists one interaction row and returns it.
func (s *Service) RecordInteraction(ctx context.Context, rec Interaction) (*ent.Interaction, error) {
	if rec.UserID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	if rec.ResponseTimeMs < 0 {
		rec.ResponseTimeMs = 0
	}

	turnContext := map[string]interface{}{}
	if rec.EpisodeID != "" {
		turnContext["episode_id"] = rec.EpisodeID
	}
	if len(rec.ExecutedExperts) > 0 {
		turnContext["executed_experts"] = rec.ExecutedExperts
	}
	if rec.Partial {
		turnContext["partial"] = true
	}

	create := s.client.Interaction.Create().
		SetID(uuid.New().String()).
		SetUserID(rec.UserID).
		SetRequestText(rec.RequestText).
		SetResponseText(rec.ResponseText).
		SetResponseTimeMs(rec.ResponseTimeMs).
		SetTaskCompleted(rec.TaskCompleted).
		SetNillableEngagementDurationMs(rec.EngagementDurationMs).
		SetNillableFollowUpIn60s(rec.FollowUpIn60s)
	if len(turnContext) > 0 {
		create.SetContext(turnContext)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	s.publishInteraction(row, rec)
	return row, nil
}

// RecordFeedback validates and persists one feedback row against an
// existing interaction. userID scopes the lookup so one user cannot attach
// feedback to another user's interaction.
//
// Value ranges by kind: rating 1-5, thumbs 0/1, implicit 0-1; text carries
// no value requirement but any provided value must be 0-1.
func (s *Service) RecordFeedback(ctx context.Context, userID, interactionID, kind string, value *float64, text *string) (*ent.Feedback, error) {
	if err := validateFeedback(kind, value, text); err != nil {
		return nil, err
	}

	// Ownership check doubles as existence check.
	exists, err := s.client.Interaction.Query().
		Where(interaction.ID(interactionID), interaction.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up interaction %s: %w", interactionID, err)
	}
	if !exists {
		return nil, fault.NotFound(fmt.Sprintf("interaction %s not found", interactionID))
	}

	row, err := s.client.Feedback.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetInteractionID(interactionID).
		SetKind(entfeedback.Kind(kind)).
		SetNillableValue(value).
		SetNillableText(text).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	s.publishFeedback(row)
	return row, nil
}

func validateFeedback(kind string, value *float64, text *string) error {
	switch kind {
	case KindRating:
		if value == nil || *value < 1 || *value > 5 {
			return fault.Invalid("rating feedback requires a value between 1 and 5")
		}
	case KindThumbs:
		if value == nil || (*value != 0 && *value != 1) {
			return fault.Invalid("thumbs feedback requires a value of 0 or 1")
		}
	case KindImplicit:
		if value == nil || *value < 0 || *value > 1 {
			return fault.Invalid("implicit feedback requires a value between 0 and 1")
		}
	case KindText:
		if text == nil || *text == "" {
			return fault.Invalid("text feedback requires text")
		}
		if value != nil && (*value < 0 || *value > 1) {
			return fault.Invalid("text feedback value must be between 0 and 1")
		}
	default:
		return fault.Invalid(fmt.Sprintf("unknown feedback kind %q", kind))
	}
	return nil
}

// Stats holds lazily computed aggregates over a user's recent interactions.
type Stats struct {
	UserID           string   `json:"user_id"`
	InteractionCount int      `json:"interaction_count"`
	FeedbackCount    int      `json:"feedback_count"`
	AvgSatisfaction  *float64 `json:"avg_satisfaction"` // nil until any feedback exists
	Trend            Trend    `json:"trend"`
	AvgResponseTime  int      `json:"avg_response_time_ms"`
	CompletionRate   float64  `json:"completion_rate"`
}

// Stats computes satisfaction aggregates over the user's most recent
// interactions (bounded window). Nothing is cached; every call reads the
// current rows.
func (s *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	rows, err := s.client.Interaction.Query().
		Where(interaction.UserID(userID)).
		WithFeedbacks().
		Order(ent.Desc(interaction.FieldCreatedAt)).
		Limit(statsWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions for %s: %w", userID, err)
	}

	stats := &Stats{UserID: userID, Trend: TrendStable, InteractionCount: len(rows)}
	if len(rows) == 0 {
		return stats, nil
	}

	var (
		scores        []float64 // per-interaction satisfaction, newest first
		totalTime     int
		completed     int
		feedbackCount int
	)
	for _, row := range rows {
		totalTime += row.ResponseTimeMs
		if row.TaskCompleted {
			completed++
		}
		feedbackCount += len(row.Edges.Feedbacks)
		if score, ok := interactionScore(row.Edges.Feedbacks); ok {
			scores = append(scores, score)
		}
	}

	stats.FeedbackCount = feedbackCount
	stats.AvgResponseTime = totalTime / len(rows)
	stats.CompletionRate = float64(completed) / float64(len(rows))
	if len(scores) > 0 {
		avg := mean(scores)
		stats.AvgSatisfaction = &avg
	}
	stats.Trend = trend(scores)
	return stats, nil
}

// interactionScore folds an interaction's feedback rows into one normalized
// satisfaction score in [0,1]. Interactions without feedback carry no score.
func interactionScore(rows []*ent.Feedback) (float64, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	var sum float64
	for _, fb := range rows {
		sum += normalize(fb)
	}
	return sum / float64(len(rows)), true
}

// normalize maps a feedback row to [0,1]: ratings scale from 1-5, thumbs
// are already 0/1, implicit values are stored normalized, and text without
// a value counts as neutral.
func normalize(fb *ent.Feedback) float64 {
	switch fb.Kind {
	case entfeedback.KindRating:
		if fb.Value == nil {
			return 0.5
		}
		return (*fb.Value - 1) / 4
	case entfeedback.KindText:
		if fb.Value == nil {
			return 0.5
		}
		return clamp01(*fb.Value)
	default: // thumbs, implicit
		if fb.Value == nil {
			return 0.5
		}
		return clamp01(*fb.Value)
	}
}

// trend compares the newest scored interactions with the stretch before
// them. scores must be ordered newest first.
func trend(scores []float64) Trend {
	if len(scores) <= trendSampleSize {
		return TrendStable
	}
	newest := scores[:trendSampleSize]
	previous := scores[trendSampleSize:]
	if len(previous) > trendSampleSize {
		previous = previous[:trendSampleSize]
	}

	delta := mean(newest) - mean(previous)
	switch {
	case delta > trendThreshold:
		return TrendImproving
	case delta < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (s *Service) publishInteraction(row *ent.Interaction, rec Interaction) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := events.InteractionRecordedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeInteractionRecorded,
			UserID:    row.UserID,
			Timestamp: row.CreatedAt.Format(time.RFC3339Nano),
		},
		InteractionID:  row.ID,
		EpisodeID:      rec.EpisodeID,
		Experts:        rec.ExecutedExperts,
		TaskCompleted:  row.TaskCompleted,
		Partial:        rec.Partial,
		ResponseTimeMs: row.ResponseTimeMs,
	}
	if err := s.publisher.PublishInteractionRecorded(ctx, row.UserID, payload); err != nil {
		s.logger.Warn("Failed to publish interaction.recorded event",
			"interaction_id", row.ID, "error", err)
	}
}

func (s *Service) publishFeedback(row *ent.Feedback) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := events.FeedbackRecordedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeFeedbackRecorded,
			UserID:    row.UserID,
			Timestamp: row.CreatedAt.Format(time.RFC3339Nano),
		},
		FeedbackID:    row.ID,
		InteractionID: row.InteractionID,
		Kind:          string(row.Kind),
		Value:         row.Value,
	}
	if err := s.publisher.PublishFeedbackRecorded(ctx, row.UserID, payload); err != nil {
		s.logger.Warn("Failed to publish feedback.recorded event",
			"feedback_id", row.ID, "error", err)
	}
}
