package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/metrics"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/stats"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
)

type TicketReader interface {
	ReadFile(ctx context.Context, path string) []ticket.Ticket
}

type ResultCacher interface {
	GetCacheKey(path string, settings ticket.Settings) (string, error)
	GetLockKey(cacheKey string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetResult(ctx context.Context, key string) (analysis.Result, error)
	SetResult(ctx context.Context, key string, result analysis.Result, expiration time.Duration) error
}

type AnalysisService struct {
	Settings        ticket.Settings
	Reader          TicketReader
	Engine          *stats.Engine
	Cache           ResultCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

// NewAnalysisService wires the pipeline. cache may be nil, in which case every run
// reads the file.
func NewAnalysisService(settings ticket.Settings, reader TicketReader, cache ResultCacher,
	cacheExpiration time.Duration, lockTimeout time.Duration) *AnalysisService {
	return &AnalysisService{
		Settings:        settings,
		Reader:          reader,
		Engine:          stats.NewEngine(settings),
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// Analyze reads the ticket file at path, keeps the configured route and computes
// the mean/median price difference and the per-carrier minimum flight time.
// An empty route yields ErrNoTicketsFound.
func (s *AnalysisService) Analyze(ctx context.Context, path string) (analysis.Result, error) {
	startTime := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(startTime).Seconds())
	}()

	cacheKey := s.cacheKey(ctx, path)
	if cacheKey != "" {
		result, err := s.Cache.GetResult(ctx, cacheKey)
		if err == nil {
			metrics.Analyses.WithLabelValues(metrics.OutcomeCacheHit).Inc()
			return result, nil
		}
		slog.DebugContext(ctx, "analysis result not in cache", slog.String("error", err.Error()))
	}

	result, err := s.compute(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNoTicketsFound) {
			metrics.Analyses.WithLabelValues(metrics.OutcomeNoData).Inc()
		} else {
			metrics.Analyses.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return analysis.Result{}, err
	}
	metrics.Analyses.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if cacheKey != "" {
		s.store(ctx, cacheKey, result)
	}

	return result, nil
}

func (s *AnalysisService) compute(ctx context.Context, path string) (analysis.Result, error) {
	tickets := s.Reader.ReadFile(ctx, path)
	routeTickets := ticket.FilterRoute(tickets, s.Settings.Origin, s.Settings.Destination)

	slog.InfoContext(ctx, "tickets selected for route",
		slog.String("origin", s.Settings.Origin),
		slog.String("destination", s.Settings.Destination),
		slog.Int("valid", len(tickets)),
		slog.Int("selected", len(routeTickets)))

	priceDifference, err := stats.PriceDifference(routeTickets)
	if err != nil {
		return analysis.Result{}, err
	}

	durations, err := s.Engine.MinDurations(routeTickets)
	if err != nil {
		return analysis.Result{}, ErrAnalysisFailed.Wrap(err)
	}

	return analysis.NewResult(s.Settings.Origin, s.Settings.Destination, priceDifference, durations), nil
}

func (s *AnalysisService) cacheKey(ctx context.Context, path string) string {
	if s.Cache == nil {
		return ""
	}

	key, err := s.Cache.GetCacheKey(path, s.Settings)
	if err != nil {
		slog.DebugContext(ctx, "analysis cache skipped", slog.String("error", err.Error()))
		return ""
	}

	return key
}

// store saves result under key. Only the lock holder writes; concurrent runs for the
// same file skip the write.
func (s *AnalysisService) store(ctx context.Context, key string, result analysis.Result) {
	lockKey := s.Cache.GetLockKey(key)

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire analysis cache lock", slog.String("error", err.Error()))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release analysis cache lock", slog.String("error", err.Error()))
		}
	}()

	if err := s.Cache.SetResult(ctx, key, result, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to cache analysis result", slog.String("error", err.Error()))
	}
}
