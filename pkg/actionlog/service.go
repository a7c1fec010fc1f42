// Package actionlog records every expert tool execution in an append-only
// audit log. Writes are budgeted so a slow store can never stall a user
// turn: entries that miss the budget are buffered in per-user rings and
// drained by a background flusher.
package actionlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	entaction "github.com/stewardhq/steward/ent/actionlog"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/redact"
)

const (
	// writeBudget caps how long Record may block the calling turn on a
	// direct store write.
	writeBudget = 50 * time.Millisecond

	// ringCapacity bounds each user's overflow ring. When full, the
	// oldest entry is dropped and the drop counter incremented.
	ringCapacity = 1024

	// flushInterval is how often the flusher retries buffered entries.
	flushInterval = 5 * time.Second

	// flushBatch caps entries drained per user in one flush pass.
	flushBatch = 256

	// persistTimeout bounds each store write made from the flusher.
	persistTimeout = 5 * time.Second

	// publishTimeout bounds the fire-and-forget event publish.
	publishTimeout = 2 * time.Second
)

// Entry is one expert execution to record. ID and Timestamp are assigned
// on first enqueue when empty, so buffered entries keep their original
// identity and completion time across flush retries.
type Entry struct {
	ID         string
	UserID     string
	SessionID  string
	ToolName   string
	ToolParams map[string]interface{}
	Success    bool
	ErrorKind  string
	Context    map[string]interface{}
	Timestamp  time.Time
}

// EventPublisher publishes action.logged events for the live feeds.
// Implemented by events.EventPublisher; defined as interface here to keep
// recording decoupled from the delivery bus and to enable testing with mocks.
type EventPublisher interface {
	PublishActionLogged(ctx context.Context, userID string, payload events.ActionLoggedPayload) error
}

// Service is the append-only action log. Safe for concurrent use.
type Service struct {
	client    *ent.Client
	redactor  *redact.Redactor
	publisher EventPublisher // may be nil in tooling contexts

	// mu guards buffers. Never held across store or publisher calls.
	mu      sync.Mutex
	buffers map[string]*ring
	dropped atomic.Int64

	ringCap       int
	flushInterval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new action log service.
func NewService(client *ent.Client, redactor *redact.Redactor, publisher EventPublisher) *Service {
	return &Service{
		client:        client,
		redactor:      redactor,
		publisher:     publisher,
		buffers:       make(map[string]*ring),
		ringCap:       ringCapacity,
		flushInterval: flushInterval,
	}
}

// Record persists one execution. Tool params are redacted before they
// touch any storage path. The direct write runs against a detached
// context: the turn may already be cancelled, but the execution happened
// and must be recorded. If the write fails or misses the budget, the
// entry is buffered for the flusher and Record still returns nil — only
// invalid entries produce an error.
func (s *Service) Record(turnCtx context.Context, e Entry) error {
	if e.UserID == "" {
		return fault.Invalid("action log entry requires user_id")
	}
	if e.ToolName == "" {
		return fault.Invalid("action log entry requires tool_name")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e.ToolParams = s.redactor.Params(e.ToolParams)

	ctx, cancel := context.WithTimeout(context.Background(), writeBudget)
	defer cancel()

	if err := s.persist(ctx, e); err != nil {
		s.enqueue(e)
		slog.Warn("Action log write missed budget, buffered entry",
			"user_id", e.UserID, "tool", e.ToolName, "error", err)
		return nil
	}

	s.publishLogged(e)
	return nil
}

// Recent returns the user's executions after since, newest first.
func (s *Service) Recent(ctx context.Context, userID string, since time.Time) ([]*ent.ActionLog, error) {
	if userID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	logs, err := s.client.ActionLog.Query().
		Where(
			entaction.UserIDEQ(userID),
			entaction.TimestampGT(since),
		).
		Order(ent.Desc(entaction.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent action logs: %w", err)
	}
	return logs, nil
}

// DeleteBefore removes action log rows older than the cutoff, across all
// users. Retention only; reads always go through Recent.
func (s *Service) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ActionLog.Delete().
		Where(entaction.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired action logs: %w", err)
	}
	return n, nil
}

// Buffered returns the number of entries waiting in overflow rings.
func (s *Service) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, r := range s.buffers {
		total += r.len()
	}
	return total
}

// Dropped returns how many entries were evicted from full rings.
func (s *Service) Dropped() int64 {
	return s.dropped.Load()
}

// Start launches the background flusher loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Action log flusher started", "interval", s.flushInterval)
}

// Stop signals the flusher to exit and waits for its final drain attempt.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	if n := s.Buffered(); n > 0 {
		slog.Warn("Action log flusher stopped with entries still buffered", "count", n)
		return
	}
	slog.Info("Action log flusher stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// One last drain so a clean shutdown does not orphan entries.
			s.flush(context.Background())
			return
		case <-ticker.C:
			s.flush(ctx)
		}
	}
}

// flush drains buffered entries back to the store. Each write gets its own
// detached timeout; a failure stops draining that user's ring until the
// next pass so a struggling store is not hammered.
func (s *Service) flush(ctx context.Context) {
	flushed := 0
	for _, userID := range s.bufferedUsers() {
		batch := s.drain(userID, flushBatch)
		for i, e := range batch {
			if ctx.Err() != nil {
				s.requeue(batch[i:])
				return
			}
			persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			err := s.persist(persistCtx, e)
			cancel()
			if err != nil {
				s.requeue(batch[i:])
				slog.Warn("Action log flush failed, keeping entries buffered",
					"user_id", userID, "remaining", s.Buffered(), "error", err)
				break
			}
			s.publishLogged(e)
			flushed++
		}
	}
	if flushed > 0 {
		slog.Info("Flushed buffered action logs", "count", flushed)
	}
}

func (s *Service) persist(ctx context.Context, e Entry) error {
	builder := s.client.ActionLog.Create().
		SetID(e.ID).
		SetUserID(e.UserID).
		SetToolName(e.ToolName).
		SetSuccess(e.Success).
		SetTimestamp(e.Timestamp)

	if e.ToolParams != nil {
		builder = builder.SetToolParams(e.ToolParams)
	}
	if e.ErrorKind != "" {
		builder = builder.SetErrorKind(e.ErrorKind)
	}
	if e.Context != nil {
		builder = builder.SetContext(e.Context)
	}
	if e.SessionID != "" {
		builder = builder.SetSessionID(e.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		// A duplicate key means an earlier attempt committed after all;
		// the entry is already durable.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create action log: %w", err)
	}
	return nil
}

func (s *Service) enqueue(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.buffers[e.UserID]
	if r == nil {
		r = newRing(s.ringCap)
		s.buffers[e.UserID] = r
	}
	if r.push(e) {
		s.dropped.Add(1)
	}
}

// drain removes up to max entries from the user's ring, oldest first.
func (s *Service) drain(userID string, max int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.buffers[userID]
	if r == nil {
		return nil
	}
	var out []Entry
	for len(out) < max {
		e, ok := r.pop()
		if !ok {
			break
		}
		out = append(out, e)
	}
	if r.len() == 0 {
		delete(s.buffers, userID)
	}
	return out
}

func (s *Service) requeue(entries []Entry) {
	for _, e := range entries {
		s.enqueue(e)
	}
}

func (s *Service) bufferedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]string, 0, len(s.buffers))
	for u := range s.buffers {
		users = append(users, u)
	}
	return users
}

// publishLogged emits action.logged for the live feeds. Fire-and-forget:
// feed delivery must never extend the write budget, so the publish runs
// on its own goroutine with a detached timeout.
func (s *Service) publishLogged(e Entry) {
	if s.publisher == nil {
		return
	}
	payload := events.ActionLoggedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeActionLogged,
			UserID:    e.UserID,
			Timestamp: e.Timestamp.Format(time.RFC3339Nano),
		},
		ActionID:  e.ID,
		ToolName:  e.ToolName,
		Success:   e.Success,
		ErrorKind: e.ErrorKind,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishActionLogged(ctx, e.UserID, payload); err != nil {
			slog.Warn("Failed to publish action.logged event",
				"user_id", e.UserID, "action_id", e.ID, "error", err)
		}
	}()
}
