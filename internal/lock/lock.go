package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("booking lock not acquired")

// Locker serializes booking writers per salon and date across
// instances. One SetNX key guards each salon/day; the transaction
// inside it still does the authoritative conflict check.
type Locker struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
}

func New(client *redis.Client) *Locker {
	return &Locker{
		client:  client,
		ttl:     10 * time.Second,
		retries: 20,
		backoff: 50 * time.Millisecond,
	}
}

func (l *Locker) Acquire(ctx context.Context, salonID uint, day string) (func(), error) {
	key := fmt.Sprintf("booking_lock:%d:%s", salonID, day)
	token := uuid.NewString()

	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.backoff):
		}
	}

	return nil, ErrNotAcquired
}

// release deletes the key only if it still holds our token; an expired
// lock taken over by another writer is left alone.
func (l *Locker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	current, err := l.client.Get(ctx, key).Result()
	if err != nil || current != token {
		return
	}
	l.client.Del(ctx, key)
}
