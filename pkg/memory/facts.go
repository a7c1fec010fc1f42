package memory

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

const (
	// demotionFactor shrinks importance of facts idle past one halflife.
	demotionFactor = 0.9

	// pruneImportanceFloor is the importance below which an idle fact is
	// deleted outright after two halflives.
	pruneImportanceFloor = 0.5
)

// CreateFactRequest describes one fact write. Zero Importance picks up
// the schema default; out-of-range values are clamped to [0, 10].
type CreateFactRequest struct {
	UserID      string
	SubjectKind string
	SubjectID   string
	Text        string
	Importance  float64
}

// FactService stores and retrieves long-term memory facts. The raw db
// handle exists only for the set-based decay statement; everything else
// goes through the generated client.
type FactService struct {
	client *ent.Client
	db     *stdsql.DB
	cfg    *config.MemoryConfig
}

// NewFactService creates a new fact service. The db parameter should be
// the *sql.DB from database.Client.DB().
func NewFactService(client *ent.Client, db *stdsql.DB, cfg *config.MemoryConfig) *FactService {
	return &FactService{client: client, db: db, cfg: cfg}
}

// Search returns the user's top-k facts for the query, ranked by
// importance * exp(-age_days/halflife) * (1 + ln(1+access_count)).
// Candidate selection widens in tiers: full-text match on all terms,
// then on any term, then a case-insensitive substring scan. Returned
// facts get their access counters bumped best-effort.
func (s *FactService) Search(ctx context.Context, userID, query string, k int) ([]*ent.MemoryFact, error) {
	if userID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if k <= 0 {
		k = s.recallK()
	}
	candidateLimit := k * 4
	if candidateLimit < 20 {
		candidateLimit = 20
	}

	// Tier 1: all significant terms present (precise).
	candidates, err := s.client.MemoryFact.Query().
		Where(memoryfact.UserIDEQ(userID)).
		// $2: the user_id predicate above consumes $1.
		Where(func(sel *entsql.Selector) {
			sel.Where(entsql.ExprP("to_tsvector('english', text) @@ plainto_tsquery('english', $2)", query))
		}).
		Limit(candidateLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search facts: %w", err)
	}

	// Tier 2: any significant term. Recall questions rarely repeat every
	// word of the stored fact ("what kind of milk do I like" must still
	// find "I prefer oat milk").
	if len(candidates) == 0 {
		if orQuery := orTSQuery(query); orQuery != "" {
			candidates, err = s.client.MemoryFact.Query().
				Where(memoryfact.UserIDEQ(userID)).
				Where(func(sel *entsql.Selector) {
					sel.Where(entsql.ExprP("to_tsvector('english', text) @@ to_tsquery('english', $2)", orQuery))
				}).
				Limit(candidateLimit).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to search facts by term: %w", err)
			}
		}
	}

	// Tier 3: raw substring, for text stemming cannot see (model numbers,
	// wifi-ssid style tokens).
	if len(candidates) == 0 {
		candidates, err = s.client.MemoryFact.Query().
			Where(
				memoryfact.UserIDEQ(userID),
				memoryfact.TextContainsFold(query),
			).
			Limit(candidateLimit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to search facts by substring: %w", err)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	now := time.Now()
	sort.SliceStable(candidates, func(i, j int) bool {
		return s.score(candidates[i], now) > s.score(candidates[j], now)
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	s.touch(candidates)
	return candidates, nil
}

// orTSQuery renders the query as an OR tsquery over its words. Only
// letters and digits survive, so user punctuation cannot break tsquery
// syntax; stopwords stay in and are dropped by to_tsquery itself.
// Returns "" when no term survives.
func orTSQuery(query string) string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		var b strings.Builder
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		t := b.String()
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		terms = append(terms, t)
	}
	return strings.Join(terms, " | ")
}

// score implements the decay-weighted ranking. Importance is the base
// relevance; age decays it with a halflife, access frequency boosts it.
func (s *FactService) score(f *ent.MemoryFact, now time.Time) float64 {
	ageDays := now.Sub(f.CreatedAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return f.Importance *
		math.Exp(-ageDays/s.halflifeDays()) *
		(1 + math.Log(1+float64(f.AccessCount)))
}

// touch bumps access counters for returned facts. Best-effort: counter
// freshness never fails a search.
func (s *FactService) touch(facts []*ent.MemoryFact) {
	ids := make([]string, len(facts))
	for i, f := range facts {
		ids[i] = f.ID
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	err := s.client.MemoryFact.Update().
		Where(memoryfact.IDIn(ids...)).
		AddAccessCount(1).
		SetLastAccessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to bump fact access counters",
			"count", len(ids), "error", err)
	}
}

// Create stores a fact, idempotently per (user_id, subject_id, text):
// replaying the same fact returns the existing row untouched.
func (s *FactService) Create(ctx context.Context, req CreateFactRequest) (*ent.MemoryFact, error) {
	if req.UserID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fault.Invalid("fact text is required")
	}
	kind := req.SubjectKind
	if kind == "" {
		kind = string(memoryfact.SubjectKindGeneral)
	}
	if err := memoryfact.SubjectKindValidator(memoryfact.SubjectKind(kind)); err != nil {
		return nil, fault.Invalid(fmt.Sprintf("unknown subject_kind %q", kind))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.MemoryFact.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetSubjectKind(memoryfact.SubjectKind(kind)).
		SetSubjectID(req.SubjectID).
		SetText(text)
	if req.Importance > 0 {
		builder = builder.SetImportance(clampImportance(req.Importance))
	}

	fact, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := s.client.MemoryFact.Query().
				Where(
					memoryfact.UserIDEQ(req.UserID),
					memoryfact.SubjectIDEQ(req.SubjectID),
					memoryfact.TextEQ(text),
				).
				Only(writeCtx)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to load existing fact: %w", lookupErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create fact: %w", err)
	}
	return fact, nil
}

// DecaySweep demotes facts idle past one halflife and prunes those that
// decayed under the floor after two. Returns the number pruned.
func (s *FactService) DecaySweep(ctx context.Context) (int, error) {
	now := time.Now()
	halflife := time.Duration(s.halflifeDays()*24) * time.Hour
	staleCutoff := now.Add(-halflife)
	pruneCutoff := now.Add(-2 * halflife)

	// Multiplicative demotion is one set-based statement in SQL but is
	// not expressible through generated setters.
	res, err := s.db.ExecContext(ctx,
		`UPDATE memory_facts SET importance = importance * $1 WHERE last_accessed_at < $2`,
		demotionFactor, staleCutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to demote stale facts: %w", err)
	}
	if demoted, err := res.RowsAffected(); err == nil && demoted > 0 {
		slog.Info("Demoted stale memory facts", "count", demoted)
	}

	pruned, err := s.client.MemoryFact.Delete().
		Where(
			memoryfact.ImportanceLT(pruneImportanceFloor),
			memoryfact.LastAccessedAtLT(pruneCutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune decayed facts: %w", err)
	}
	return pruned, nil
}

func (s *FactService) recallK() int {
	if s.cfg.RecallK > 0 {
		return s.cfg.RecallK
	}
	return 5
}

func (s *FactService) halflifeDays() float64 {
	if s.cfg.DecayHalflifeDays > 0 {
		return s.cfg.DecayHalflifeDays
	}
	return 30
}

func clampImportance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
