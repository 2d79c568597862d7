package repository

import (
	"context"
	"errors"

	"bookingcare-service/internal/domain/entity"
	domainRepo "bookingcare-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorInfoRepository struct{}

func NewDoctorInfoRepository() domainRepo.DoctorInfoRepository {
	return &doctorInfoRepository{}
}

func (r *doctorInfoRepository) Create(ctx context.Context, db *gorm.DB, info *entity.DoctorInfo) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(info).Error
}

func (r *doctorInfoRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorInfo, error) {
	var info entity.DoctorInfo
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (r *doctorInfoRepository) Update(ctx context.Context, db *gorm.DB, info *entity.DoctorInfo) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(info).Error
}
