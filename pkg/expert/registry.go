package expert

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/outbound"
)

// ErrNotConfigured is returned by a BuildFunc when its collaborator is not
// configured. BuildAll skips the expert instead of failing startup.
var ErrNotConfigured = errors.New("expert: collaborator not configured")

// Deps are the shared dependencies experts draw from. Experts take only
// what they need; a nil field disables the experts that require it.
type Deps struct {
	// Clients maps collaborator name (lists, calendar, reminders, journal,
	// homeassistant, memory, people) to its outbound client.
	Clients map[string]*outbound.Client

	// Facts backs the memory expert's local store.
	Facts *memory.FactService

	// Now is the clock for relative time parsing. Nil means time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Client returns the outbound client for a collaborator, or nil.
func (d Deps) Client(name string) *outbound.Client {
	return d.Clients[name]
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// BuildFunc constructs one expert from the shared dependencies.
type BuildFunc func(deps Deps) (Expert, error)

// nowFunc supplies the current time; injectable for tests.
type nowFunc func() time.Time

// registry is populated by Register calls from each expert file's init.
// Read-only after package initialization.
var registry = map[string]BuildFunc{}

// Register adds an expert factory under its stable name. Called from
// init() in each expert file; duplicate names are a programming error.
func Register(name string, build BuildFunc) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("expert: duplicate registration for %q", name))
	}
	registry[name] = build
}

// Registered returns the registered expert names, sorted.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildAll instantiates every registered expert, honoring per-expert
// overrides. Experts whose collaborator is not configured are skipped with
// a log line; any other build failure aborts startup.
func BuildAll(deps Deps, overrides map[string]*config.ExpertSettings) ([]Expert, error) {
	experts := make([]Expert, 0, len(registry))
	for _, name := range Registered() {
		settings := overrides[name]
		if settings != nil && settings.Enabled != nil && !*settings.Enabled {
			deps.logger().Info("Expert disabled by configuration", "expert", name)
			continue
		}
		e, err := registry[name](deps)
		if errors.Is(err, ErrNotConfigured) {
			deps.logger().Info("Expert skipped: collaborator not configured", "expert", name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("building expert %q: %w", name, err)
		}
		if settings != nil && settings.DefaultConfidence != nil {
			e = &confidenceCapped{Expert: e, cap: clamp01(*settings.DefaultConfidence)}
		}
		experts = append(experts, e)
	}
	return experts, nil
}

// confidenceCapped bounds an expert's scores to a configured ceiling,
// letting operators demote an over-eager expert without code changes.
type confidenceCapped struct {
	Expert
	cap float64
}

func (c *confidenceCapped) CanHandle(query string) float64 {
	score := c.Expert.CanHandle(query)
	if score > c.cap {
		return c.cap
	}
	return score
}

func (c *confidenceCapped) Descriptor() Descriptor {
	d := c.Expert.Descriptor()
	d.DefaultConfidence = c.cap
	return d
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
