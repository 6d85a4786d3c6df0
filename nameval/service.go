package nameval

import (
	"log"
	"strings"
	"sync"
)

// Service orchestrates batch and single-name evaluation. The pipeline
// itself is pure, so a single Service may be shared by any number of
// goroutines; the mutex only guards configuration swaps.
type Service struct {
	cfgMu sync.RWMutex
	cfg   Config

	logger *log.Logger
}

// NewService constructs a service with the given configuration.
func NewService(cfg Config, logger *log.Logger) *Service {
	cfg.ApplyDefaults()
	return &Service{cfg: cfg, logger: logger}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration. In-flight evaluations keep
// the snapshot they started with.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// Evaluate scores a single name under the current configuration.
func (s *Service) Evaluate(name string) Result {
	return Evaluate(name, s.Config())
}

// EvaluateAll scores names concurrently while preserving input order.
// Names that normalize to an empty kana string are dropped from the
// output and reported in the second return value; a skipped name
// never aborts its siblings.
func (s *Service) EvaluateAll(names []string) ([]Result, int) {
	cfg := s.Config()
	results := make([]Result, len(names))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := cfg.Workers
	if workers > len(names) {
		workers = len(names)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Evaluate(names[i], cfg)
			}
		}()
	}
	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]Result, 0, len(results))
	skipped := 0
	for _, r := range results {
		if strings.TrimSpace(r.Kana) == "" {
			skipped++
			continue
		}
		out = append(out, r)
	}
	if skipped > 0 {
		s.logf("skipped %d name(s) with no kana reading", skipped)
	}
	s.logf("evaluated %d name(s)", len(out))
	return out, skipped
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
