package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"
	domainRepo "bookingcare-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date int64) ([]entity.Schedule, error) {
	return r.FindByDoctorAndDates(ctx, db, doctorID, []int64{date})
}

func (r *scheduleRepository) FindByDoctorAndDates(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dates []int64) ([]entity.Schedule, error) {
	schedules := []entity.Schedule{}
	if len(dates) == 0 {
		return schedules, nil
	}
	err := db.WithContext(ctx).
		Select("id", "time_type", "date", "doctor_id", "max_number").
		Where("doctor_id = ? AND date IN ?", doctorID, dates).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []entity.Schedule{}
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByDoctorAndDateWithTimeType(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date int64) ([]entity.Schedule, error) {
	schedules := []entity.Schedule{}
	err := db.WithContext(ctx).
		Preload("TimeTypeData").
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("time_type ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []entity.Schedule{}
	}
	return schedules, nil
}

func (r *scheduleRepository) FindUpcoming(ctx context.Context, db *gorm.DB, fromDate int64, limit, offset int) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) BulkCreate(ctx context.Context, db *gorm.DB, schedules []entity.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return db.WithContext(ctx).Omit(clause.Associations).Create(&schedules).Error
}
