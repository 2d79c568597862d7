package usecase

import (
	"context"
	"slices"

	"bookingcare-service/internal/converter"
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/entity"
	"bookingcare-service/internal/domain/repository"
	"bookingcare-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SlotCapacitySyncer publishes the capacity of newly created slots to a shared counter store
type SlotCapacitySyncer interface {
	SyncSlots(ctx context.Context, schedules []entity.Schedule) error
}

type ScheduleUsecase interface {
	BulkCreateSchedule(ctx context.Context, req *dto.BulkCreateScheduleRequest) (*dto.BulkCreateScheduleResponse, error)
	GetScheduleByDate(ctx context.Context, doctorID uuid.UUID, date int64) ([]dto.ScheduleResponse, error)
}

type scheduleUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	validator        *validator.CustomValidator
	scheduleRepo     repository.ScheduleRepository
	capacitySyncer   SlotCapacitySyncer
	defaultMaxNumber int
}

// NewScheduleUsecase creates the schedule usecase. defaultMaxNumber is the capacity given to
// slots submitted without one. capacitySyncer may be nil.
func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	scheduleRepo repository.ScheduleRepository,
	capacitySyncer SlotCapacitySyncer,
	defaultMaxNumber int,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:               db,
		log:              log,
		validator:        validator,
		scheduleRepo:     scheduleRepo,
		capacitySyncer:   capacitySyncer,
		defaultMaxNumber: defaultMaxNumber,
	}
}

// BulkCreateSchedule merges candidate slots into the doctor's schedule for a date.
// Candidates matching an existing slot (same time type and date) are skipped; existing
// slots are never modified. Storage errors are returned unchanged.
func (u *scheduleUsecase) BulkCreateSchedule(ctx context.Context, req *dto.BulkCreateScheduleRequest) (*dto.BulkCreateScheduleResponse, error) {
	if req == nil || req.ArrSchedule == nil || req.DoctorID == uuid.Nil || req.FormatedDate == 0 {
		return nil, newParamError(MsgMissingRequiredParameter)
	}
	if err := u.validator.Validate(req); err != nil {
		u.log.Debugf("Invalid bulk create schedule request: %+v", u.validator.FormatValidationErrors(err))
		return nil, newParamError(MsgMissingRequiredParameter)
	}

	candidates := converter.ScheduleRequestsToEntities(req.ArrSchedule, req.DoctorID, req.FormatedDate, u.defaultMaxNumber)

	// slots may carry their own day, so existing rows are read for every day involved
	existing, err := u.scheduleRepo.FindByDoctorAndDates(ctx, u.db, req.DoctorID, slotDates(req.FormatedDate, candidates))
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	toCreate := differenceSlots(candidates, existing)

	if len(toCreate) > 0 {
		if err := u.scheduleRepo.BulkCreate(ctx, u.db, toCreate); err != nil {
			u.log.Warnf("Failed to bulk create schedules: %+v", err)
			return nil, err
		}

		if u.capacitySyncer != nil {
			if err := u.capacitySyncer.SyncSlots(ctx, toCreate); err != nil {
				// Counters are rebuilt on the next startup sync
				u.log.Warnf("Failed to sync slot capacity (non-fatal): %+v", err)
			}
		}
	}

	u.log.Infof("Schedules merged: doctor=%s, date=%d, received=%d, inserted=%d", req.DoctorID, req.FormatedDate, len(candidates), len(toCreate))

	return &dto.BulkCreateScheduleResponse{
		Received: len(candidates),
		Inserted: len(toCreate),
	}, nil
}

func (u *scheduleUsecase) GetScheduleByDate(ctx context.Context, doctorID uuid.UUID, date int64) ([]dto.ScheduleResponse, error) {
	if doctorID == uuid.Nil || date == 0 {
		return nil, newParamError(MsgMissingRequiredParameters)
	}

	schedules, err := u.scheduleRepo.FindByDoctorAndDateWithTimeType(ctx, u.db, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return converter.SchedulesToResponses(schedules), nil
}

// slotDates returns the distinct days of the candidates, starting with the request date
func slotDates(requestDate int64, candidates []entity.Schedule) []int64 {
	dates := []int64{requestDate}
	for i := range candidates {
		if !slices.Contains(dates, candidates[i].Date) {
			dates = append(dates, candidates[i].Date)
		}
	}
	return dates
}

// differenceSlots returns the candidates that occupy no existing slot, in input order.
// Repeated candidates for the same slot are collapsed to the first one.
func differenceSlots(candidates, existing []entity.Schedule) []entity.Schedule {
	result := make([]entity.Schedule, 0, len(candidates))
	for i := range candidates {
		if containsSlot(existing, &candidates[i]) || containsSlot(result, &candidates[i]) {
			continue
		}
		result = append(result, candidates[i])
	}
	return result
}

func containsSlot(schedules []entity.Schedule, candidate *entity.Schedule) bool {
	for i := range schedules {
		if schedules[i].SameSlot(candidate) {
			return true
		}
	}
	return false
}
