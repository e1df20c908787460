package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// Ensure StatusService implements the interface.
var _ driving.StatusService = (*StatusService)(nil)

const (
	// probeTimeout bounds each backend probe.
	probeTimeout = 5 * time.Second

	// checkInterval is the minimum spacing between non-forced checks.
	checkInterval = 5 * time.Second

	// refreshInterval is the minimum spacing between forced checks.
	refreshInterval = time.Second
)

// StatusService reports settings and backend reachability.
type StatusService struct {
	settings driving.SettingsService
	factory  driven.ProbeFactory
	timeout  time.Duration
	limiter  *rate.Limiter
	forced   *rate.Limiter

	mu   sync.Mutex
	last *domain.StatusReport
}

// NewStatusService creates a status service.
// factory may be nil, in which case no backends are probed.
func NewStatusService(settings driving.SettingsService, factory driven.ProbeFactory) *StatusService {
	return &StatusService{
		settings: settings,
		factory:  factory,
		timeout:  probeTimeout,
		limiter:  rate.NewLimiter(rate.Every(checkInterval), 1),
		forced:   rate.NewLimiter(rate.Every(refreshInterval), 1),
	}
}

// Summary returns the current settings without probing backends.
func (s *StatusService) Summary() (*domain.StatusReport, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	return &domain.StatusReport{
		Settings:  *settings,
		CheckedAt: time.Now(),
	}, nil
}

// Check probes every backend concurrently.
// Without refresh, calls closer together than the check interval reuse the
// previous report as long as the settings have not changed. A refresh skips
// that interval but is itself limited to one probe round per second.
func (s *StatusService) Check(ctx context.Context, refresh bool) (*domain.StatusReport, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if s.factory == nil {
		return &domain.StatusReport{Settings: *settings, CheckedAt: time.Now()}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	allowed := s.limiter.Allow()
	if refresh {
		allowed = s.forced.Allow()
	}
	if !allowed && s.last != nil && s.last.Settings == *settings {
		cached := *s.last
		cached.Backends = append([]domain.BackendStatus(nil), s.last.Backends...)
		cached.Cached = true
		logger.Debug("Status check throttled, returning report from %s", cached.CheckedAt.Format(time.RFC3339))
		return &cached, nil
	}

	probes, err := s.factory.Probes(settings)
	if err != nil {
		return nil, fmt.Errorf("create probes: %w", err)
	}
	defer func() {
		for _, p := range probes {
			if cerr := p.Close(); cerr != nil {
				logger.Warn("Closing %s probe: %v", p.Kind(), cerr)
			}
		}
	}()

	logger.Section("Backend Status")
	results := make([]domain.BackendStatus, len(probes))
	var g errgroup.Group
	g.SetLimit(settings.ConcurrentRequests)
	for i, p := range probes {
		g.Go(func() error {
			results[i] = s.probe(ctx, p, settings.Strategy)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // probe goroutines never return errors

	report := &domain.StatusReport{
		Settings:  *settings,
		Backends:  results,
		CheckedAt: time.Now(),
	}
	stored := *report
	stored.Backends = append([]domain.BackendStatus(nil), results...)
	s.last = &stored

	return report, nil
}

// probe runs one probe under the per-probe timeout.
func (s *StatusService) probe(ctx context.Context, p driven.BackendProbe, strategy domain.QnAStrategy) domain.BackendStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	detail, err := p.Probe(ctx)
	status := domain.BackendStatus{
		Backend:   p.Kind(),
		Endpoint:  p.Endpoint(),
		Required:  p.Kind().RequiredBy(strategy),
		Reachable: err == nil,
		Detail:    detail,
		Latency:   time.Since(start),
	}
	if err != nil {
		status.Error = err.Error()
		logger.Debug("%s at %s: %v", p.Kind(), p.Endpoint(), err)
	} else {
		logger.Debug("%s at %s: ok (%s) in %s", p.Kind(), p.Endpoint(), detail, status.Latency)
	}
	return status
}
