package janitor

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
)

//go:generate mockgen -source=janitor.go -destination=mock_janitor.go -package=janitor

const (
	batchSize   = 100
	parallelism = 4
)

type Users interface {
	FindOrphans(ctx context.Context, limit int) ([]domain.User, error)
	RemoveOrphan(ctx context.Context, user domain.User) error
}

// Janitor periodically removes virtual users left without a debt, e.g. after a
// crash between the statements of a debt removal.
type Janitor struct {
	users    Users
	interval time.Duration
}

func New(cfg *config.Config, users Users) *Janitor {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{
		users:    users,
		interval: interval,
	}
}

func (j *Janitor) Start(ctx context.Context) {
	go j.Run(ctx)
}

// Run sweeps on every tick and returns once ctx is canceled.
func (j *Janitor) Run(ctx context.Context) {
	zap.L().Info("orphan sweep started", zap.Duration("interval", j.interval))
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping orphan sweep")
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				zap.L().Error("orphan sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep removes one batch of orphans and returns how many were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	orphans, err := j.users.FindOrphans(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	removed := make([]bool, len(orphans))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, user := range orphans {
		i, user := i, user
		g.Go(func() error {
			if err := j.users.RemoveOrphan(gCtx, user); err != nil {
				zap.L().Warn("can't remove orphan virtual user", zap.String("id", user.ID), zap.Error(err))
				return nil
			}
			removed[i] = true
			return nil
		})
	}
	err = g.Wait()

	count := 0
	for _, ok := range removed {
		if ok {
			count++
		}
	}
	metrics.OrphanUsersRemoved.Add(float64(count))
	zap.L().Info("orphan sweep finished", zap.Int("found", len(orphans)), zap.Int("removed", count))
	return count, err
}
