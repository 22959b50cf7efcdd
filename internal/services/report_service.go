package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gitbrief/gitbrief/internal/domain/models"
	"github.com/gitbrief/gitbrief/internal/domain/ports"
	"github.com/gitbrief/gitbrief/internal/i18n"
	"github.com/gitbrief/gitbrief/internal/logger"
)

// ReportService runs one digest cycle: fetch the user's activity, keep what
// falls inside the lookback window, compose the message and publish it.
type ReportService struct {
	fetcher   ports.ActivityFetcher
	generator ports.SummaryGenerator
	notifier  ports.Notifier
	trans     *i18n.Translations
	lookback  time.Duration
	now       func() time.Time
}

func NewReportService(
	fetcher ports.ActivityFetcher,
	generator ports.SummaryGenerator,
	notifier ports.Notifier,
	trans *i18n.Translations,
	lookback time.Duration,
) *ReportService {
	return &ReportService{
		fetcher:   fetcher,
		generator: generator,
		notifier:  notifier,
		trans:     trans,
		lookback:  lookback,
		now:       time.Now,
	}
}

// Run executes the full sequence once. Fetch and notify errors propagate to
// the caller; generation failures are absorbed by the fallback message and
// never fail the run.
func (s *ReportService) Run(ctx context.Context) error {
	logger.Info(ctx, "fetching github events")
	events, err := s.fetcher.FetchEvents(ctx)
	if err != nil {
		return fmt.Errorf("error fetching events: %w", err)
	}

	recent := s.filterRecent(ctx, events)
	logger.Info(ctx, "events inside lookback window", "count", len(recent), "lookback", s.lookback)

	message := s.composeMessage(ctx, recent)

	if err := s.notifier.SendDigest(ctx, message); err != nil {
		return fmt.Errorf("error sending digest: %w", err)
	}

	logger.Info(ctx, "digest sent", "chars", len(message))
	return nil
}

// RunAndReport wraps Run with the scheduled-job failure policy: a failed
// cycle is logged and pushed to the webhook best effort, and the return is
// always nil so the scheduler never retries on its own.
func (s *ReportService) RunAndReport(ctx context.Context) error {
	if err := s.Run(ctx); err != nil {
		logger.Error(ctx, "daily report failed", err)

		if notifyErr := s.notifier.SendError(ctx, err); notifyErr != nil {
			logger.Error(ctx, "could not report the failure to discord", notifyErr)
		}
	}
	return nil
}

// filterRecent keeps events created at or after the cutoff and orders them
// newest first. Events without a usable timestamp are dropped, not fatal.
func (s *ReportService) filterRecent(ctx context.Context, events []models.Event) []models.Event {
	cutoff := s.now().Add(-s.lookback)

	recent := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.CreatedAt.IsZero() {
			logger.Warn(ctx, "skipping event without timestamp", "type", ev.Type, "repo", ev.Repo)
			continue
		}
		if !ev.CreatedAt.Before(cutoff) {
			recent = append(recent, ev)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	return recent
}

// composeMessage returns the generated digest, the quiet-day message for an
// empty window, or the deterministic fallback when generation fails. The
// generator is never called with an empty event list.
func (s *ReportService) composeMessage(ctx context.Context, recent []models.Event) string {
	if len(recent) == 0 {
		return s.trans.GetMessage("report_quiet_day", 0, nil)
	}

	digest, err := s.generator.GenerateDigest(ctx, recent)
	if err != nil {
		logger.Error(ctx, "digest generation failed, using fallback", err)
		return s.trans.GetMessage("report_fallback", len(recent), map[string]interface{}{
			"Count": len(recent),
		})
	}

	return digest
}
