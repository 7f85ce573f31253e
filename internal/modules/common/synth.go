// internal/modules/common/synth.go

// Package common holds the shared execution base for synthesizing modules.
// Every module in Mirage fabricates records instead of touching the
// network; the artificial waits here stand in for the I/O a real scanner
// backend would perform.
package common

import (
	"context"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/errors"
	"mirage/internal/platform/randx"
)

// Simulated I/O wait bounds per work item. Kept tight so full runs stay
// fast while still exercising ctx-aware suspension points.
const (
	DefaultDelayMin = 1 * time.Millisecond
	DefaultDelayMax = 5 * time.Millisecond
)

// Sleep waits for d or until ctx is done. Returns false on cancellation.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Jitter picks a duration in [min, max] from rng.
func Jitter(rng randx.Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Intn(int(max-min)+1))
}

// UnitFunc synthesizes the records of one work unit.
type UnitFunc func(unit int) []*domain.Record

// RunUnits executes units sequential work items, each preceded by a
// simulated I/O wait. sink.Advance fires once per unit. Cancellation is
// honored between units; the records of finished units are still
// returned together with ErrCanceled.
func RunUnits(ctx context.Context, units int, rng randx.Rand, sink ports.TaskSink, fn UnitFunc) ([]*domain.Record, error) {
	if sink == nil {
		sink = ports.NopSink{}
	}

	out := make([]*domain.Record, 0, units)
	for unit := 0; unit < units; unit++ {
		if err := ctx.Err(); err != nil {
			return out, errors.Wrap(errors.ErrCanceled, "unit loop")
		}
		if !Sleep(ctx, Jitter(rng, DefaultDelayMin, DefaultDelayMax)) {
			return out, errors.Wrap(errors.ErrCanceled, "unit loop")
		}

		records := fn(unit)
		out = append(out, records...)
		sink.Advance(records)
	}

	return out, nil
}
