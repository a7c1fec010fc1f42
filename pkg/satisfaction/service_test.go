package satisfaction

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	entfeedback "github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTrackerPublisher struct {
	mu           sync.Mutex
	interactions []events.InteractionRecordedPayload
	feedbacks    []events.FeedbackRecordedPayload
}

func (m *mockTrackerPublisher) PublishInteractionRecorded(_ context.Context, _ string, p events.InteractionRecordedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions = append(m.interactions, p)
	return nil
}

func (m *mockTrackerPublisher) PublishFeedbackRecorded(_ context.Context, _ string, p events.FeedbackRecordedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedbacks = append(m.feedbacks, p)
	return nil
}

func (m *mockTrackerPublisher) interactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.interactions)
}

func (m *mockTrackerPublisher) feedbackCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.feedbacks)
}

func newTrackerService(t *testing.T) (*Service, *ent.Client, *mockTrackerPublisher) {
	t.Helper()
	client := testdb.NewTestClient(t)
	pub := &mockTrackerPublisher{}
	return NewService(client.Client, pub), client.Client, pub
}

func sampleInteraction(userID string) Interaction {
	return Interaction{
		UserID:          userID,
		RequestText:     "add milk to my shopping list",
		ResponseText:    "Added milk to your shopping list.",
		ResponseTimeMs:  420,
		TaskCompleted:   true,
		EpisodeID:       uuid.New().String(),
		ExecutedExperts: []string{"list"},
	}
}

func TestRecordInteraction(t *testing.T) {
	svc, client, pub := newTrackerService(t)
	userID := uuid.New().String()

	rec := sampleInteraction(userID)
	row, err := svc.RecordInteraction(context.Background(), rec)
	require.NoError(t, err)
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, userID, row.UserID)
	assert.Equal(t, 420, row.ResponseTimeMs)
	assert.True(t, row.TaskCompleted)
	assert.Equal(t, rec.EpisodeID, row.Context["episode_id"])

	reloaded, err := client.Interaction.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.RequestText, reloaded.RequestText)

	assert.Equal(t, 1, pub.interactionCount())
	assert.Equal(t, events.EventTypeInteractionRecorded, pub.interactions[0].Type)
	assert.Equal(t, row.ID, pub.interactions[0].InteractionID)
	assert.Equal(t, []string{"list"}, pub.interactions[0].Experts)
}

func TestRecordInteractionStoresImplicitSignals(t *testing.T) {
	svc, client, _ := newTrackerService(t)
	userID := uuid.New().String()

	rec := sampleInteraction(userID)
	rec.EngagementDurationMs = config.IntPtr(15000)
	rec.FollowUpIn60s = config.BoolPtr(true)

	row, err := svc.RecordInteraction(context.Background(), rec)
	require.NoError(t, err)

	reloaded, err := client.Interaction.Get(context.Background(), row.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.EngagementDurationMs)
	assert.Equal(t, 15000, *reloaded.EngagementDurationMs)
	require.NotNil(t, reloaded.FollowUpIn60s)
	assert.True(t, *reloaded.FollowUpIn60s)
}

func TestRecordInteractionRequiresUser(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	rec := sampleInteraction("")
	_, err := svc.RecordInteraction(context.Background(), rec)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestRecordFeedbackKinds(t *testing.T) {
	svc, _, pub := newTrackerService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	row, err := svc.RecordInteraction(ctx, sampleInteraction(userID))
	require.NoError(t, err)

	tests := []struct {
		name  string
		kind  string
		value *float64
		text  *string
	}{
		{"rating", KindRating, config.Float64Ptr(4), nil},
		{"thumbs up", KindThumbs, config.Float64Ptr(1), nil},
		{"thumbs down", KindThumbs, config.Float64Ptr(0), nil},
		{"text only", KindText, nil, config.StringPtr("thanks, that worked")},
		{"implicit", KindImplicit, config.Float64Ptr(0.8), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := svc.RecordFeedback(ctx, userID, row.ID, tt.kind, tt.value, tt.text)
			require.NoError(t, err)
			assert.Equal(t, entfeedback.Kind(tt.kind), fb.Kind)
			assert.Equal(t, row.ID, fb.InteractionID)
		})
	}

	assert.Equal(t, len(tests), pub.feedbackCount())
}

func TestRecordFeedbackValidation(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	row, err := svc.RecordInteraction(ctx, sampleInteraction(userID))
	require.NoError(t, err)

	tests := []struct {
		name  string
		kind  string
		value *float64
		text  *string
	}{
		{"unknown kind", "stars", config.Float64Ptr(3), nil},
		{"rating missing value", KindRating, nil, nil},
		{"rating out of range", KindRating, config.Float64Ptr(6), nil},
		{"rating below range", KindRating, config.Float64Ptr(0), nil},
		{"thumbs fractional", KindThumbs, config.Float64Ptr(0.5), nil},
		{"implicit out of range", KindImplicit, config.Float64Ptr(1.5), nil},
		{"text without text", KindText, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordFeedback(ctx, userID, row.ID, tt.kind, tt.value, tt.text)
			require.Error(t, err)
			assert.True(t, fault.Is(err, fault.KindInvalid))
		})
	}
}

func TestRecordFeedbackUnknownInteraction(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	userID := uuid.New().String()

	_, err := svc.RecordFeedback(context.Background(), userID, uuid.New().String(),
		KindRating, config.Float64Ptr(5), nil)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func TestRecordFeedbackEnforcesUserIsolation(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()

	owner := uuid.New().String()
	row, err := svc.RecordInteraction(ctx, sampleInteraction(owner))
	require.NoError(t, err)

	intruder := uuid.New().String()
	_, err = svc.RecordFeedback(ctx, intruder, row.ID, KindThumbs, config.Float64Ptr(1), nil)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindNotFound),
		"foreign interactions must look nonexistent")
}

func TestStatsEmpty(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	stats, err := svc.Stats(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.InteractionCount)
	assert.Nil(t, stats.AvgSatisfaction)
	assert.Equal(t, TrendStable, stats.Trend)
	assert.Zero(t, stats.CompletionRate)
}

func TestStatsAggregates(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	// Three interactions: completed/rated 5, completed/thumbs down, failed/no feedback.
	first, err := svc.RecordInteraction(ctx, Interaction{
		UserID: userID, RequestText: "q1", ResponseText: "a1",
		ResponseTimeMs: 100, TaskCompleted: true,
	})
	require.NoError(t, err)
	_, err = svc.RecordFeedback(ctx, userID, first.ID, KindRating, config.Float64Ptr(5), nil)
	require.NoError(t, err)

	second, err := svc.RecordInteraction(ctx, Interaction{
		UserID: userID, RequestText: "q2", ResponseText: "a2",
		ResponseTimeMs: 300, TaskCompleted: true,
	})
	require.NoError(t, err)
	_, err = svc.RecordFeedback(ctx, userID, second.ID, KindThumbs, config.Float64Ptr(0), nil)
	require.NoError(t, err)

	_, err = svc.RecordInteraction(ctx, Interaction{
		UserID: userID, RequestText: "q3", ResponseText: "a3",
		ResponseTimeMs: 200, TaskCompleted: false,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.InteractionCount)
	assert.Equal(t, 2, stats.FeedbackCount)
	assert.Equal(t, 200, stats.AvgResponseTime)
	assert.InDelta(t, 2.0/3.0, stats.CompletionRate, 1e-9)

	// Rating 5 normalizes to 1.0, thumbs down to 0.0; the unscored
	// interaction is excluded.
	require.NotNil(t, stats.AvgSatisfaction)
	assert.InDelta(t, 0.5, *stats.AvgSatisfaction, 1e-9)
}

func TestStatsTextFeedbackIsNeutral(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	row, err := svc.RecordInteraction(ctx, sampleInteraction(userID))
	require.NoError(t, err)
	_, err = svc.RecordFeedback(ctx, userID, row.ID, KindText, nil, config.StringPtr("hm"))
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stats.AvgSatisfaction)
	assert.InDelta(t, 0.5, *stats.AvgSatisfaction, 1e-9)
}

func TestStatsUserIsolation(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()

	other := uuid.New().String()
	row, err := svc.RecordInteraction(ctx, sampleInteraction(other))
	require.NoError(t, err)
	_, err = svc.RecordFeedback(ctx, other, row.ID, KindRating, config.Float64Ptr(5), nil)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.InteractionCount)
	assert.Nil(t, stats.AvgSatisfaction)
}

// seedScored inserts one interaction with a single implicit feedback row,
// pinned to a specific creation time so trend ordering is deterministic.
func seedScored(t *testing.T, client *ent.Client, userID string, score float64, at time.Time) {
	t.Helper()
	ctx := context.Background()
	id := uuid.New().String()
	_, err := client.Interaction.Create().
		SetID(id).
		SetUserID(userID).
		SetRequestText(fmt.Sprintf("q-%s", id[:8])).
		SetResponseText("ok").
		SetResponseTimeMs(100).
		SetTaskCompleted(true).
		SetCreatedAt(at).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Feedback.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetInteractionID(id).
		SetKind(entfeedback.KindImplicit).
		SetValue(score).
		SetCreatedAt(at).
		Save(ctx)
	require.NoError(t, err)
}

func TestStatsTrend(t *testing.T) {
	tests := []struct {
		name          string
		older, newest float64
		want          Trend
	}{
		{"improving", 0.2, 0.9, TrendImproving},
		{"declining", 0.9, 0.2, TrendDeclining},
		{"stable", 0.50, 0.52, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client, _ := newTrackerService(t)
			userID := uuid.New().String()
			base := time.Now().Add(-time.Hour)

			for i := 0; i < 10; i++ {
				seedScored(t, client, userID, tt.older, base.Add(time.Duration(i)*time.Minute))
			}
			for i := 10; i < 20; i++ {
				seedScored(t, client, userID, tt.newest, base.Add(time.Duration(i)*time.Minute))
			}

			stats, err := svc.Stats(context.Background(), userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.Trend)
		})
	}
}

func TestStatsTrendNeedsHistory(t *testing.T) {
	svc, client, _ := newTrackerService(t)
	userID := uuid.New().String()
	base := time.Now().Add(-time.Hour)

	// Ten scored interactions fill only the newest bucket.
	for i := 0; i < 10; i++ {
		seedScored(t, client, userID, 0.9, base.Add(time.Duration(i)*time.Minute))
	}

	stats, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, TrendStable, stats.Trend)
}
