package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/fault"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactService(t *testing.T) (*FactService, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.MemoryConfig{RecallK: 5, DecayHalflifeDays: 30}
	return NewFactService(client.Client, client.DB(), cfg), client
}

// seedFact inserts a fact with pinned timestamps and counters, bypassing
// the service so ranking inputs are exact.
func seedFact(t *testing.T, client *ent.Client, userID, text string, importance float64, age time.Duration, accessCount int) *ent.MemoryFact {
	t.Helper()
	at := time.Now().Add(-age)
	fact, err := client.MemoryFact.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetSubjectKind(memoryfact.SubjectKindGeneral).
		SetSubjectID("").
		SetText(text).
		SetImportance(importance).
		SetCreatedAt(at).
		SetLastAccessedAt(at).
		SetAccessCount(accessCount).
		Save(context.Background())
	require.NoError(t, err)
	return fact
}

func TestCreateFact(t *testing.T) {
	svc, _ := newFactService(t)
	userID := uuid.New().String()

	fact, err := svc.Create(context.Background(), CreateFactRequest{
		UserID: userID,
		Text:   "  Marta's birthday is March 3rd  ",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, fact.UserID)
	assert.Equal(t, "Marta's birthday is March 3rd", fact.Text, "text is trimmed")
	assert.Equal(t, memoryfact.SubjectKindGeneral, fact.SubjectKind)
	assert.Equal(t, 5.0, fact.Importance, "schema default")
	assert.Equal(t, 0, fact.AccessCount)
}

func TestCreateFactValidation(t *testing.T) {
	svc, _ := newFactService(t)

	_, err := svc.Create(context.Background(), CreateFactRequest{Text: "orphan"})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))

	_, err = svc.Create(context.Background(), CreateFactRequest{UserID: "u", Text: "   "})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))

	_, err = svc.Create(context.Background(), CreateFactRequest{
		UserID: "u", Text: "x", SubjectKind: "animal",
	})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestCreateFactIdempotent(t *testing.T) {
	svc, _ := newFactService(t)
	userID := uuid.New().String()
	req := CreateFactRequest{
		UserID:      userID,
		SubjectKind: "person",
		SubjectID:   "marta",
		Text:        "prefers green tea over coffee",
	}

	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "replay returns the existing row")

	count, err := svc.client.MemoryFact.Query().
		Where(memoryfact.UserIDEQ(userID)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateFactClampsImportance(t *testing.T) {
	svc, _ := newFactService(t)

	fact, err := svc.Create(context.Background(), CreateFactRequest{
		UserID:     uuid.New().String(),
		Text:       "extremely important",
		Importance: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, fact.Importance)
}

func TestSearchFullText(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	match := seedFact(t, client.Client, userID, "buys groceries every saturday morning", 5, time.Hour, 0)
	seedFact(t, client.Client, userID, "works on the garden project", 5, time.Hour, 0)
	seedFact(t, client.Client, uuid.New().String(), "groceries for someone else", 5, time.Hour, 0)

	facts, err := svc.Search(context.Background(), userID, "groceries", 5)
	require.NoError(t, err)
	require.Len(t, facts, 1, "only the owner's matching fact")
	assert.Equal(t, match.ID, facts[0].ID)
}

func TestSearchStemming(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	seedFact(t, client.Client, userID, "enjoys running in the park", 5, time.Hour, 0)

	// Full-text search stems "run" -> matches "running".
	facts, err := svc.Search(context.Background(), userID, "run", 5)
	require.NoError(t, err)
	require.Len(t, facts, 1)
}

func TestSearchSubstringFallback(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	seedFact(t, client.Client, userID, "plays in the band Xyzzyqux on weekends", 5, time.Hour, 0)

	// "xyzzyq" matches no FTS token but is a substring of the band name.
	facts, err := svc.Search(context.Background(), userID, "xyzzyq", 5)
	require.NoError(t, err)
	require.Len(t, facts, 1)
}

func TestSearchDecayRanking(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	fresh := seedFact(t, client.Client, userID, "coffee order: flat white", 5, time.Hour, 0)
	old := seedFact(t, client.Client, userID, "coffee machine descaled in spring", 5, 90*24*time.Hour, 0)

	facts, err := svc.Search(context.Background(), userID, "coffee", 5)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, fresh.ID, facts[0].ID, "fresh fact outranks a 90-day-old one")
	assert.Equal(t, old.ID, facts[1].ID)
}

func TestSearchAccessBoost(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	popular := seedFact(t, client.Client, userID, "tea cupboard is by the window", 5, 24*time.Hour, 20)
	seedFact(t, client.Client, userID, "tea kettle needs descaling", 5, 24*time.Hour, 0)

	facts, err := svc.Search(context.Background(), userID, "tea", 5)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, popular.ID, facts[0].ID, "frequently accessed fact ranks first")
}

func TestSearchImportanceDominates(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	vital := seedFact(t, client.Client, userID, "allergic to peanuts, carries epipen", 10, 24*time.Hour, 0)
	seedFact(t, client.Client, userID, "mildly dislikes peanut butter texture", 2, 24*time.Hour, 0)

	facts, err := svc.Search(context.Background(), userID, "peanuts", 5)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, vital.ID, facts[0].ID)
}

func TestSearchCapsAtK(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	for i := 0; i < 8; i++ {
		seedFact(t, client.Client, userID, "likes hiking trail number "+uuid.New().String()[:8], 5, time.Hour, i)
	}

	facts, err := svc.Search(context.Background(), userID, "hiking", 3)
	require.NoError(t, err)
	assert.Len(t, facts, 3)
}

func TestSearchBumpsAccessCounters(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	fact := seedFact(t, client.Client, userID, "bikes to work on fridays", 5, 48*time.Hour, 0)

	_, err := svc.Search(context.Background(), userID, "bikes", 5)
	require.NoError(t, err)

	reloaded, err := client.Client.MemoryFact.Get(context.Background(), fact.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.AccessCount)
	assert.WithinDuration(t, time.Now(), reloaded.LastAccessedAt, 5*time.Second)
}

func TestSearchEdgeCases(t *testing.T) {
	svc, _ := newFactService(t)

	facts, err := svc.Search(context.Background(), uuid.New().String(), "   ", 5)
	require.NoError(t, err)
	assert.Nil(t, facts, "blank query returns nothing")

	facts, err = svc.Search(context.Background(), uuid.New().String(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, facts, "no facts stored")

	_, err = svc.Search(context.Background(), "", "anything", 5)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestDecaySweep(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	fresh := seedFact(t, client.Client, userID, "fresh fact", 5, time.Hour, 0)
	stale := seedFact(t, client.Client, userID, "stale fact", 5, 40*24*time.Hour, 0)
	doomed := seedFact(t, client.Client, userID, "decayed fact", 0.4, 70*24*time.Hour, 0)

	pruned, err := svc.DecaySweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	ctx := context.Background()
	reloaded, err := client.Client.MemoryFact.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, reloaded.Importance, "fresh fact untouched")

	reloaded, err = client.Client.MemoryFact.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, reloaded.Importance, 1e-9, "stale fact demoted once")

	_, err = client.Client.MemoryFact.Get(ctx, doomed.ID)
	require.Error(t, err, "fact under the floor after two halflives is pruned")
	assert.True(t, ent.IsNotFound(err))
}

func TestDecaySweepRepeatable(t *testing.T) {
	svc, client := newFactService(t)
	userID := uuid.New().String()

	stale := seedFact(t, client.Client, userID, "repeatedly stale", 5, 40*24*time.Hour, 0)

	_, err := svc.DecaySweep(context.Background())
	require.NoError(t, err)
	_, err = svc.DecaySweep(context.Background())
	require.NoError(t, err)

	reloaded, err := client.Client.MemoryFact.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0*0.9*0.9, reloaded.Importance, 1e-9,
		"each sweep demotes multiplicatively")
}
