package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

type SweepResult struct {
	Expired   int
	Destroyed int
}

// Sweep expires overdue items and destroys terminal items whose grace
// period has passed. Per-item failures are logged and joined; the remaining
// items are still processed.
func (s *ShareService) Sweep(ctx context.Context) (*SweepResult, error) {
	var res SweepResult
	var errs []error

	var expirable []string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		expirable, err = r.Contents().ListExpirable(ctx, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, id := range expirable {
		var expired bool
		err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
			var err error
			_, expired, err = s.lockActive(ctx, r, id)
			return err
		})
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "expire failed", "content_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		if expired {
			res.Expired++
		}
	}

	var terminal []string
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		terminal, err = r.Contents().ListTerminal(ctx, s.now().Add(-s.policy.OneTimeGracePeriod))
		return err
	})
	if err != nil {
		return nil, errors.Join(append(errs, err)...)
	}
	for _, id := range terminal {
		cert, err := s.destroy(ctx, id)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			s.log.Error(ctx, "destroy failed", "content_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		if cert != nil {
			res.Destroyed++
		}
	}

	if res.Expired > 0 || res.Destroyed > 0 {
		s.log.Info(ctx, "sweep finished", "expired", res.Expired, "destroyed", res.Destroyed)
	}
	return &res, errors.Join(errs...)
}

// RunSweeper sweeps every interval until ctx is cancelled.
func (s *ShareService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.log.Error(ctx, "sweep failed", "error", err)
			}
		}
	}
}
