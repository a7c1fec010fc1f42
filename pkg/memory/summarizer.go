package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/turn"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/llm"
)

const (
	// summaryTurnWindow caps how much transcript feeds the summary prompt.
	summaryTurnWindow = 20

	// summarySnippetChars caps each message's contribution to the prompt.
	summarySnippetChars = 400
)

// summarySystemPrompt is fixed so summaries stay comparable across
// episodes and model versions. The word limit is interpolated.
const summarySystemPrompt = "You summarize conversation episodes for long-term memory. " +
	"Write a plain-text summary of at most %d words covering what the user wanted, " +
	"what was decided or done, and any facts worth remembering. No preamble."

// Completer is the non-streaming generation surface of the LLM gateway.
// Implemented by llm.Gateway; defined as interface here for testing with
// canned completions.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Summarizer produces and stores episode summaries.
type Summarizer struct {
	client    *ent.Client
	completer Completer
	cfg       *config.MemoryConfig
}

// NewSummarizer creates a new episode summarizer.
func NewSummarizer(client *ent.Client, completer Completer, cfg *config.MemoryConfig) *Summarizer {
	return &Summarizer{client: client, completer: completer, cfg: cfg}
}

// TriggerCount is the message count at which an active episode gets its
// first summary.
func (s *Summarizer) TriggerCount() int {
	return s.cfg.SummaryTriggerMessages
}

// SummarizeEpisode builds a transcript from the episode's latest turns,
// asks the gateway for a summary, and stores it on the episode. When the
// gateway fails, the stored summary degrades to a transcript-derived
// template; only store failures surface as errors.
func (s *Summarizer) SummarizeEpisode(ctx context.Context, episodeID string) error {
	ep, err := s.client.Episode.Get(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("failed to load episode: %w", err)
	}

	turns, err := s.client.Turn.Query().
		Where(turn.EpisodeIDEQ(episodeID)).
		Order(ent.Desc(turn.FieldCreatedAt)).
		Limit(summaryTurnWindow).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load turns: %w", err)
	}
	if len(turns) == 0 {
		return nil
	}

	summary, err := s.generate(ctx, turns)
	if err != nil {
		slog.Warn("Summary generation failed, using fallback",
			"episode_id", episodeID, "error", err)
		summary = s.fallback(ep, turns)
	}
	summary = capWords(summary, s.maxWords())
	if summary == "" {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.client.Episode.UpdateOneID(episodeID).SetSummary(summary).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	return nil
}

func (s *Summarizer) generate(ctx context.Context, turns []*ent.Turn) (string, error) {
	out, err := s.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf(summarySystemPrompt, s.maxWords())},
			{Role: llm.RoleUser, Content: transcript(turns)},
		},
		MaxTokens:   512,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New("gateway returned an empty completion")
	}
	return out, nil
}

// fallback produces a deterministic summary when the gateway is down so
// the episode still closes with something useful.
func (s *Summarizer) fallback(ep *ent.Episode, turns []*ent.Turn) string {
	opening := clip(strings.TrimSpace(turns[len(turns)-1].UserText), 120)
	return fmt.Sprintf("%d exchanges in a %s context. The conversation opened with: %q.",
		ep.MessageCount, ep.ContextType, opening)
}

func (s *Summarizer) maxWords() int {
	if s.cfg.SummaryMaxWords > 0 {
		return s.cfg.SummaryMaxWords
	}
	return 300
}

// transcript renders turns oldest-first, each message clipped so the
// prompt stays well inside the gateway's character budget.
func transcript(turns []*ent.Turn) string {
	var b strings.Builder
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		b.WriteString("User: ")
		b.WriteString(clip(t.UserText, summarySnippetChars))
		b.WriteString("\nAssistant: ")
		b.WriteString(clip(t.AssistantText, summarySnippetChars))
		b.WriteString("\n")
	}
	return b.String()
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// capWords hard-caps by word count; the model usually respects the limit
// in the prompt but must not be trusted with storage bounds.
func capWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return strings.TrimSpace(s)
	}
	return strings.Join(words[:max], " ")
}
