package userdata

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// Clock supplies the current instant; injected so tests can pin time.
type Clock func() time.Time

// Service bundles the configuration and the nondeterminism sources consumed
// by record generation, statistics, and external-data normalization. The
// whitelisting and validation operations stay package-level functions because
// they depend on neither.
type Service struct {
	cfg    Config
	logger *slog.Logger
	clock  Clock

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewService builds a Service with a wall clock and a time-seeded random source.
func NewService(cfg Config, logger *slog.Logger) *Service {
	return NewServiceWithSources(cfg, logger, nil, nil)
}

// NewServiceWithSources builds a Service with an explicit clock and random
// source so callers control every nondeterministic input. Nil arguments fall
// back to the defaults NewService uses; zero-valued config fields fall back
// to DefaultConfig.
func NewServiceWithSources(cfg Config, logger *slog.Logger, clock Clock, rng *rand.Rand) *Service {
	def := DefaultConfig()
	if cfg.ActiveWindow <= 0 {
		cfg.ActiveWindow = def.ActiveWindow
	}
	if cfg.MaxAccountAgeDays < 1 {
		cfg.MaxAccountAgeDays = def.MaxAccountAgeDays
	}
	if cfg.MaxJoinAgeDays < 1 {
		cfg.MaxJoinAgeDays = def.MaxJoinAgeDays
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clock == nil {
		clock = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{cfg: cfg, logger: logger, clock: clock, rng: rng}
}

// intn draws a uniform integer in [0, n) from the service random source.
func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// randomReader adapts the service random source to io.Reader so id
// generation draws from the same injected source as every other pick.
type randomReader struct{ s *Service }

func (r randomReader) Read(p []byte) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.rng.Read(p)
}
