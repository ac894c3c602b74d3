package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func newTestSlotLock(t *testing.T) *SlotLockService {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewSlotLockService(client, log, time.Minute)
}

func TestSlotLockMutualExclusion(t *testing.T) {
	svc := newTestSlotLock(t)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	token, err := svc.Acquire(ctx, doctorID, date, "08:00")
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected an owner token from a live redis")
	}

	if _, err := svc.Acquire(ctx, doctorID, date, "08:00"); !errors.Is(err, ErrSlotLocked) {
		t.Fatalf("second acquire on the same slot: expected ErrSlotLocked, got %v", err)
	}

	// A different slot of the same doctor is not serialized.
	if _, err := svc.Acquire(ctx, doctorID, date, "08:20"); err != nil {
		t.Fatalf("acquire on a different slot failed: %v", err)
	}

	svc.Release(ctx, doctorID, date, "08:00", token)
	if _, err := svc.Acquire(ctx, doctorID, date, "08:00"); err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
}

func TestSlotLockStaleTokenDoesNotRelease(t *testing.T) {
	svc := newTestSlotLock(t)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	token, err := svc.Acquire(ctx, doctorID, date, "09:00")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}

	svc.Release(ctx, doctorID, date, "09:00", uuid.New().String())

	if _, err := svc.Acquire(ctx, doctorID, date, "09:00"); !errors.Is(err, ErrSlotLocked) {
		t.Fatalf("lock must survive a release with a stale token, got %v", err)
	}

	svc.Release(ctx, doctorID, date, "09:00", token)
	if _, err := svc.Acquire(ctx, doctorID, date, "09:00"); err != nil {
		t.Fatalf("acquire after owner release failed: %v", err)
	}
}

func TestSlotLockConcurrentAcquire(t *testing.T) {
	svc := newTestSlotLock(t)
	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	const contenders = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var winners, losers int

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Acquire(ctx, doctorID, date, "10:00")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, ErrSlotLocked):
				losers++
			default:
				t.Errorf("unexpected acquire error: %v", err)
			}
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("expected exactly 1 winner, got %d", winners)
	}
	if losers != contenders-1 {
		t.Errorf("expected %d losers, got %d", contenders-1, losers)
	}
}

func TestSlotLockDegradesWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewSlotLockService(client, log, time.Minute)

	ctx := context.Background()
	doctorID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	token, err := svc.Acquire(ctx, doctorID, date, "08:00")
	if err != nil {
		t.Fatalf("degraded acquire must not fail the booking: %v", err)
	}
	if token != "" {
		t.Errorf("degraded acquire must return a blank token, got %q", token)
	}

	// Releasing a blank token never touches redis.
	svc.Release(ctx, doctorID, date, "08:00", token)
}
