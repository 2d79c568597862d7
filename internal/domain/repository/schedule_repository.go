package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	// FindByDoctorAndDate returns the persisted slots of a doctor on a day. Never returns a nil slice.
	FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date int64) ([]entity.Schedule, error)
	// FindByDoctorAndDates is FindByDoctorAndDate over several days in one query
	FindByDoctorAndDates(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dates []int64) ([]entity.Schedule, error)
	FindByDoctorAndDateWithTimeType(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date int64) ([]entity.Schedule, error)
	FindUpcoming(ctx context.Context, db *gorm.DB, fromDate int64, limit, offset int) ([]entity.Schedule, error)
	// BulkCreate inserts all slots in a single statement
	BulkCreate(ctx context.Context, db *gorm.DB, schedules []entity.Schedule) error
}
