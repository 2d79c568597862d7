package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorInfoRepository interface {
	Create(ctx context.Context, db *gorm.DB, info *entity.DoctorInfo) error
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorInfo, error)
	Update(ctx context.Context, db *gorm.DB, info *entity.DoctorInfo) error
}
