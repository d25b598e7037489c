package schedule

import (
	"context"
	"encoding/json"
	"time"

	"slotgrid/config"
	appointmentRepo "slotgrid/database/repository/appointment"
	availabilityRepo "slotgrid/database/repository/availability"
	exceptionRepo "slotgrid/database/repository/exception"
	"slotgrid/models"
	"slotgrid/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ScheduleService is the single entry point for every calendar view and
// write dialog. All presentation layers resolve timelines and check
// overlaps through it; none reimplement the rules.
type ScheduleService interface {
	GetTimeline(ctx context.Context, providerID, date string) ([]models.TimeBlock, error)

	CreateAvailability(ctx context.Context, providerID string, req models.CreateAvailabilityRequest) (*AvailabilityWriteResult, error)
	ResolveSlotConflict(ctx context.Context, providerID string, req ResolveSlotConflictRequest) (*ResolutionOutcome, error)
	DeleteAvailability(ctx context.Context, providerID, slotID string) error

	CreateException(ctx context.Context, providerID string, req models.CreateExceptionRequest) (*ExceptionWriteResult, error)
	ResolveExceptionConflict(ctx context.Context, providerID string, req ResolveExceptionConflictRequest) (*ResolutionOutcome, error)
	DeleteException(ctx context.Context, providerID, exceptionID string) error
}

// TimelineInvalidator schedules removal of a provider's cached timelines
// after a committed write (read-after-write consistency for the cache).
type TimelineInvalidator interface {
	InvalidateTimelines(ctx context.Context, providerID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Availability availabilityRepo.AvailabilityRepository
	Exceptions   exceptionRepo.ExceptionRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client       // optional timeline cache
	Invalidator  TimelineInvalidator // optional async invalidation
	Now          func() time.Time    // defaults to time.Now
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultScheduleService) today() string {
	return s.now().Format(utils.DateLayout)
}

// GetTimeline resolves a provider's timeline for one date, serving from the
// Redis cache when possible.
func (s *DefaultScheduleService) GetTimeline(ctx context.Context, providerID, date string) ([]models.TimeBlock, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, ErrInvalidDate(date)
	}

	cacheKey := utils.TimelineCacheKey(providerID, date)
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var blocks []models.TimeBlock
			if jsonErr := json.Unmarshal([]byte(raw), &blocks); jsonErr == nil {
				return blocks, nil
			}
			logger.Warn("corrupt timeline cache entry, recomputing", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			logger.Warn("timeline cache read failed", zap.Error(err))
		}
	}

	slots, err := s.Availability.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list availability", err)
	}
	exceptions, err := s.Exceptions.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list exceptions", err)
	}
	appointments, err := s.Appointments.ListByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, persistenceFailure("list appointments", err)
	}

	blocks, err := ResolveTimeline(date, slots, exceptions, appointments, s.today())
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(blocks); err == nil {
			ttl := time.Duration(config.AppConfig.TimelineCacheTTL) * time.Second
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			if err := s.Cache.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
				logger.Warn("timeline cache write failed", zap.Error(err))
			}
		}
	}
	return blocks, nil
}

// invalidateTimelines drops the provider's cached timelines after a write.
// Preferred path is the async worker; without one, keys are scanned and
// deleted inline.
func (s *DefaultScheduleService) invalidateTimelines(ctx context.Context, providerID string) {
	logger := utils.GetLogger()

	if s.Invalidator != nil {
		if err := s.Invalidator.InvalidateTimelines(ctx, providerID); err != nil {
			logger.Error("failed to enqueue timeline invalidation", zap.String("providerID", providerID), zap.Error(err))
		}
		return
	}
	if s.Cache == nil {
		return
	}

	pattern := utils.TimelineCachePrefix + providerID + ":*"
	iter := s.Cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("failed to drop cached timeline", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("timeline cache scan failed", zap.Error(err))
	}
}
