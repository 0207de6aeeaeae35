package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ChargeGuard enforces at-most-once charge submission per booking session: a
// second submission while one is in flight is refused. A failed charge
// releases the flag so the user may retry; the flag expires on its own if
// the process dies mid-charge.
type ChargeGuard struct {
	Cache *redis.Client
	TTL   time.Duration
}

const (
	guardKeyPrefix  = "charge:inflight:"
	orphanKeyPrefix = "charge:orphan:"
	// Orphan markers stay visible to the audit sweep for a week.
	orphanTTL = 7 * 24 * time.Hour
)

// Acquire sets the in-flight flag. It returns false when a charge for the
// session is already being processed.
func (g *ChargeGuard) Acquire(ctx context.Context, sessionID string) (bool, error) {
	ok, err := g.Cache.SetNX(ctx, guardKeyPrefix+sessionID, time.Now().Format(time.RFC3339), g.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set charge guard: %w", err)
	}
	return ok, nil
}

// Release clears the in-flight flag after a failed charge so the session can
// be resubmitted.
func (g *ChargeGuard) Release(ctx context.Context, sessionID string) error {
	if err := g.Cache.Del(ctx, guardKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to release charge guard: %w", err)
	}
	return nil
}

// MarkOrphan records a successful charge whose reservation write failed. No
// compensation is attempted here; the marker makes the gap visible to the
// audit sweep for manual reconciliation.
func (g *ChargeGuard) MarkOrphan(ctx context.Context, sessionID, gateway, reference string) error {
	value := fmt.Sprintf("%s:%s:%s", gateway, reference, time.Now().Format(time.RFC3339))
	if err := g.Cache.Set(ctx, orphanKeyPrefix+sessionID, value, orphanTTL).Err(); err != nil {
		return fmt.Errorf("failed to record orphan charge: %w", err)
	}
	return nil
}

// OrphanCharges lists the currently recorded orphan-charge markers.
func (g *ChargeGuard) OrphanCharges(ctx context.Context) (map[string]string, error) {
	keys, err := g.Cache.Keys(ctx, orphanKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list orphan charges: %w", err)
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		val, err := g.Cache.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read orphan charge %s: %w", key, err)
		}
		out[key[len(orphanKeyPrefix):]] = val
	}
	return out, nil
}
