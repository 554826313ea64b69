package worker

// reconcile.go — settlement reconciler
// A settled payment whose bulk cart delete failed leaves stale cart
// items behind (the payment document stays flagged cartsCleared=false).
// This cron re-runs the delete-by-id-set for those payments; the
// operation is idempotent, so racing a concurrent cleanup is harmless.

import (
	"context"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/rs/zerolog/log"
)

const unclearedBatchSize = 100

// StartSettlementReconciler launches the reconcile loop. It stops when
// ctx is cancelled.
func StartSettlementReconciler(
	ctx context.Context,
	payments repository.PaymentRepository,
	carts repository.CartRepository,
	interval time.Duration,
) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("settlement reconciler shutting down")
				return
			case <-ticker.C:
				reconcileOnce(ctx, payments, carts)
			}
		}
	}()
	log.Info().Dur("interval", interval).Msg("settlement reconciler started")
}

func reconcileOnce(ctx context.Context, payments repository.PaymentRepository, carts repository.CartRepository) {
	pending, err := payments.ListUncleared(ctx, unclearedBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("reconciler: failed to list uncleared payments")
		return
	}
	if len(pending) == 0 {
		return
	}

	cleared := 0
	for _, p := range pending {
		deleted, err := carts.DeleteByIDs(ctx, p.CartIDs)
		if err != nil {
			log.Warn().Err(err).Str("payment_id", p.ID.Hex()).
				Msg("reconciler: cart cleanup failed, will retry next tick")
			continue
		}
		if err := payments.MarkCartsCleared(ctx, p.ID); err != nil {
			log.Warn().Err(err).Str("payment_id", p.ID.Hex()).
				Msg("reconciler: failed to flag carts cleared")
			continue
		}
		cleared++
		if deleted > 0 {
			log.Info().Str("payment_id", p.ID.Hex()).Int64("deleted", deleted).
				Msg("reconciler: retired stale cart items")
		}
	}

	log.Info().Int("pending", len(pending)).Int("cleared", cleared).
		Msg("reconciler: pass complete")
}
