package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Rebuilder is the part of MatchUsecase the scheduler drives.
type Rebuilder interface {
	RebuildAllJobs(ctx context.Context) (usecase.BuildResult, error)
}

// New schedules a full report rebuild on spec (standard five-field cron
// syntax). Runs never overlap; a run still going when the next is due is skipped.
func New(spec string, timeout time.Duration, r Rebuilder, log *zap.Logger) (*cron.Cron, error) {
	log = log.Named("scheduler")
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(spec, func() {
		RunOnce(context.Background(), timeout, r, log)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid rebuild schedule %q: %w", spec, err)
	}
	return c, nil
}

// RunOnce performs one rebuild bounded by timeout.
func RunOnce(ctx context.Context, timeout time.Duration, r Rebuilder, log *zap.Logger) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	log.Info("scheduled rebuild started")
	result, err := r.RebuildAllJobs(ctx)
	if err != nil {
		log.Error("scheduled rebuild failed", zap.Error(err))
	}
	log.Info("scheduled rebuild finished",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Duration("took", time.Since(start)),
	)
}
