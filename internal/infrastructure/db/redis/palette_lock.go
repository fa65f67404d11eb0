package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultLockTTL = 5 * time.Second
	lockRetryEvery = 25 * time.Millisecond
)

// ErrLockTimeout is returned when the lock could not be acquired within its TTL.
var ErrLockTimeout = errors.New("palette lock: timed out waiting for lock")

// releaseScript deletes the key only if it still holds our token, so an
// expired lock that was taken over by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// PaletteLocker serialises check-then-write sequences on one palette across
// processes. Key format: palette-lock:<palette_id>
type PaletteLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewPaletteLocker creates a PaletteLocker wrapping the given Redis client.
func NewPaletteLocker(client *redis.Client, ttl time.Duration, log zerolog.Logger) *PaletteLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &PaletteLocker{client: client, ttl: ttl, log: log}
}

// Lock blocks until the palette lock is held, the TTL elapses or ctx is done.
// The returned func releases the lock and is safe to call once.
func (l *PaletteLocker) Lock(ctx context.Context, paletteID string) (func(), error) {
	key := l.key(paletteID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.ttl)

	retry := time.NewTicker(lockRetryEvery)
	defer retry.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("palette lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-retry.C:
		}
	}

	return func() {
		// released on a fresh context: the request context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("palette_id", paletteID).Msg("palette lock release failed")
		}
	}, nil
}

func (l *PaletteLocker) key(paletteID string) string {
	return "palette-lock:" + paletteID
}
