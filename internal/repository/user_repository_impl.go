package repository

import (
	"context"
	"errors"

	"bookingcare-service/internal/domain/entity"
	domainRepo "bookingcare-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindTopDoctors(ctx context.Context, db *gorm.DB, limit int) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Omit("password").
		Preload("PositionData").
		Preload("GenderData").
		Where("role_id = ?", entity.RoleDoctor).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindAllDoctors(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Omit("password", "image").
		Where("role_id = ?", entity.RoleDoctor).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).
		Omit("password").
		Preload("Markdown", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "doctor_id", "description", "content_html", "content_markdown")
		}).
		Preload("PositionData").
		Preload("DoctorInfo").
		Preload("DoctorInfo.PriceData").
		Preload("DoctorInfo.ProvinceData").
		Preload("DoctorInfo.PaymentData").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
