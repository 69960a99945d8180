package session

import (
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Session is the plan-run-scoped value every component threads explicitly
// instead of reaching for a package-level logger or counter (spec §9
// DESIGN NOTE "Global logger/session"). ID identifies the run in every
// artifact this session writes (spec §6).
type Session struct {
	ID     uuid.UUID
	Logger hclog.Logger
	Stats  *Stats
}

// Option configures a new Session, following the same "last option wins,
// never returning a construction error" functional-option shape as
// mission.MissionOption / matrix.Option.
type Option func(*Session)

// WithLogger overrides the default logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Session) { s.Logger = l }
}

// WithLogLevel sets the level of the default hclog.Logger; ignored if
// WithLogger was also given (last option wins, applied in order).
func WithLogLevel(level hclog.Level) Option {
	return func(s *Session) {
		s.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   "planner",
			Level:  level,
			Output: os.Stderr,
		})
	}
}

// New mints a Session with a fresh uuid.UUID, an Info-level named
// hclog.Logger, and zeroed Stats.
func New(opts ...Option) *Session {
	s := &Session{
		ID: uuid.New(),
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:   "planner",
			Level:  hclog.Info,
			Output: os.Stderr,
		}),
		Stats: &Stats{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
