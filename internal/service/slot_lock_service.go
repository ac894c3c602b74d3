package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotLocked is returned when another request currently holds the same slot.
var ErrSlotLocked = errors.New("slot is being booked by another request")

// releaseScript deletes the lock only when the caller still owns it, so an
// expired lock reacquired by someone else is never released by mistake.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const slotLockKeyPrefix = "booking:lock:"

// SlotLockService serializes validate+insert for one doctor/date/time slot.
// Two concurrent requests for the same slot cannot both pass validation: the
// loser fails fast with ErrSlotLocked. The partial unique index on bookings is
// the storage-level backstop should redis be unavailable.
type SlotLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotLockService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotLockService {
	return &SlotLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func slotLockKey(doctorID uuid.UUID, date time.Time, start string) string {
	return fmt.Sprintf("%s%s:%s:%s", slotLockKeyPrefix, doctorID, date.Format("2006-01-02"), start)
}

// Acquire takes the lock for a slot and returns an owner token needed to
// release it. If redis is down the lock degrades to a no-op: booking creation
// still proceeds, guarded by the unique index alone.
func (s *SlotLockService) Acquire(ctx context.Context, doctorID uuid.UUID, date time.Time, start string) (string, error) {
	key := slotLockKey(doctorID, date, start)
	token := uuid.New().String()

	ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		s.log.Warnf("Slot lock unavailable for %s, relying on unique index: %+v", key, err)
		return "", nil
	}
	if !ok {
		return "", ErrSlotLocked
	}
	return token, nil
}

// Release frees a previously acquired lock. A blank token (degraded acquire)
// is a no-op.
func (s *SlotLockService) Release(ctx context.Context, doctorID uuid.UUID, date time.Time, start, token string) {
	if token == "" {
		return
	}
	key := slotLockKey(doctorID, date, start)
	if err := releaseScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		// The TTL will reap it; nothing else to do.
		s.log.Warnf("Failed to release slot lock %s: %+v", key, err)
	}
}
