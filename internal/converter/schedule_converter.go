package converter

import (
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleRequestsToEntities converts candidate slots to Schedule entities owned by doctorID.
// Slots without a date take the request date; slots without a capacity take defaultMaxNumber.
func ScheduleRequestsToEntities(slots []dto.ScheduleSlotRequest, doctorID uuid.UUID, date int64, defaultMaxNumber int) []entity.Schedule {
	schedules := make([]entity.Schedule, len(slots))
	for i, slot := range slots {
		schedule := entity.Schedule{
			DoctorID:  doctorID,
			Date:      slot.Date,
			TimeType:  slot.TimeType,
			MaxNumber: defaultMaxNumber,
		}
		if schedule.Date == 0 {
			schedule.Date = date
		}
		if slot.MaxNumber != nil {
			schedule.MaxNumber = *slot.MaxNumber
		}
		schedules[i] = schedule
	}
	return schedules
}

// ScheduleToResponse converts a Schedule entity to ScheduleResponse DTO
func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.ScheduleResponse{
		ID:            schedule.ID,
		DoctorID:      schedule.DoctorID,
		Date:          schedule.Date,
		TimeType:      schedule.TimeType,
		MaxNumber:     schedule.MaxNumber,
		CurrentNumber: schedule.CurrentNumber,
		TimeTypeData:  AllcodeToValue(schedule.TimeTypeData),
	}
}

// SchedulesToResponses converts a slice of Schedule entities to slice of ScheduleResponse DTOs
func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
