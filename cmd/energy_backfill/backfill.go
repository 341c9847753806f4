package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/pkg"
)

const defaultConcurrency = 4

type recomputer interface {
	RecomputeForDate(ctx context.Context, userID int, date time.Time) (*energy.Snapshot, error)
	RecomputeCurrentMaintenance(ctx context.Context, userID int) (*energy.CurrentMaintenance, error)
}

type viewInvalidator interface {
	Invalidate(ctx context.Context, userID int)
}

type backfillParams struct {
	UserID      int
	From        time.Time
	To          time.Time
	Concurrency int
}

type backfillResult struct {
	Upserted int
	Deleted  int
	Failed   int
}

// backfill recomputes every date in [From, To] and then the current
// maintenance estimate. A failing date does not stop the others; all
// failures come back combined. When anything was written, the user's cached
// dashboard views are invalidated once at the end.
func backfill(ctx context.Context, calc recomputer, invalidator viewInvalidator, params backfillParams) (backfillResult, error) {
	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var (
		mu    sync.Mutex
		res   backfillResult
		errs  error
		g     errgroup.Group
		days  = pkg.DaysInRange(params.From, params.To)
		first = pkg.Day(params.From)
	)
	g.SetLimit(concurrency)

	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				res.Failed++
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", pkg.DateKey(date), err))
				mu.Unlock()
				return nil
			}

			snapshot, err := calc.RecomputeForDate(ctx, params.UserID, date)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				res.Failed++
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", pkg.DateKey(date), err))
			case snapshot == nil:
				res.Deleted++
			default:
				res.Upserted++
			}
			return nil
		})
	}
	_ = g.Wait()

	maintenanceWritten := false
	if ctx.Err() == nil {
		m, err := calc.RecomputeCurrentMaintenance(ctx, params.UserID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("current maintenance: %w", err))
		} else {
			maintenanceWritten = true
			if m != nil && m.Maintenance != nil {
				log.Debugf("current maintenance for user [%d]: %.0f kcal", params.UserID, *m.Maintenance)
			}
		}
	}

	if res.Upserted+res.Deleted > 0 || maintenanceWritten {
		// snapshots already changed, so the bump must outlive a cancelled run
		invalidator.Invalidate(context.WithoutCancel(ctx), params.UserID)
	}

	return res, errs
}
