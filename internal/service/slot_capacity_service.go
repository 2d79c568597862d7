package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bookingcare-service/internal/domain/entity"
	"bookingcare-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// RedisCapacityKeyPrefix prefixes the per-slot remaining capacity counter
	RedisCapacityKeyPrefix = "schedule:capacity:"

	// Batch size for startup sync. A new pipeline is executed per batch.
	syncBatchSize = 500
)

// SlotCapacityService mirrors the remaining capacity of upcoming schedule slots into Redis
// so booking front-ends can read and decrement it without touching PostgreSQL.
type SlotCapacityService struct {
	db           *gorm.DB
	redisClient  *redis.Client
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

func NewSlotCapacityService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, scheduleRepo repository.ScheduleRepository) *SlotCapacityService {
	return &SlotCapacityService{
		db:           db,
		redisClient:  redisClient,
		log:          log,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

// CapacityKey returns the Redis key holding a slot's remaining capacity
func CapacityKey(scheduleID int) string {
	return RedisCapacityKeyPrefix + strconv.Itoa(scheduleID)
}

// SyncOnStartup rewrites the counters of every slot whose day has not yet ended.
// Should be called before accepting traffic.
func (s *SlotCapacityService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting slot capacity sync from database...")
	startTime := s.now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	cutoff := s.cutoff()
	offset := 0
	totalSynced := 0

	for {
		schedules, err := s.scheduleRepo.FindUpcoming(ctx, s.db, cutoff.UnixMilli(), syncBatchSize, offset)
		if err != nil {
			s.log.Errorf("Failed to query schedules at offset %d: %+v", offset, err)
			return fmt.Errorf("query schedules at offset %d: %w", offset, err)
		}

		if len(schedules) == 0 {
			if offset == 0 {
				s.log.Info("No upcoming schedules found for sync")
			}
			break
		}

		if err := s.writeBatch(ctx, schedules); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(schedules)
		s.log.Debugf("Synced batch: offset=%d, count=%d", offset, len(schedules))

		if len(schedules) < syncBatchSize {
			break
		}
		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	s.log.Infof("Slot capacity sync completed: %d schedules synced in %v", totalSynced, s.now().Sub(startTime))
	return nil
}

// SyncSlots writes the counters of freshly inserted slots. Past slots are skipped.
func (s *SlotCapacityService) SyncSlots(ctx context.Context, schedules []entity.Schedule) error {
	cutoff := s.cutoff()
	upcoming := make([]entity.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.ID == 0 || schedule.Day().Before(cutoff) {
			continue
		}
		upcoming = append(upcoming, schedule)
	}
	if len(upcoming) == 0 {
		return nil
	}

	if err := s.writeBatch(ctx, upcoming); err != nil {
		s.log.Warnf("Failed to sync slot capacity: %+v", err)
		return fmt.Errorf("redis sync for %d slots: %w", len(upcoming), err)
	}

	s.log.Debugf("Synced capacity for %d slots", len(upcoming))
	return nil
}

func (s *SlotCapacityService) writeBatch(ctx context.Context, schedules []entity.Schedule) error {
	pipe := s.redisClient.TxPipeline()
	for i := range schedules {
		schedule := &schedules[i]
		pipe.Set(ctx, CapacityKey(schedule.ID), schedule.RemainingCapacity(), s.calculateTTL(schedule.Day()))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// cutoff is the earliest slot day that can still be booked. Slot dates are midnights in the
// clinic's local zone, so a full day is kept rather than truncating to UTC midnight.
func (s *SlotCapacityService) cutoff() time.Time {
	return s.now().Add(-24 * time.Hour)
}

// calculateTTL returns TTL: 24 hours after the slot's day
func (s *SlotCapacityService) calculateTTL(day time.Time) time.Duration {
	ttl := day.AddDate(0, 0, 1).Sub(s.now())
	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return time.Minute
	}
	return ttl
}
