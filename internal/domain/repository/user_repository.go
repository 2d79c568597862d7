package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindTopDoctors(ctx context.Context, db *gorm.DB, limit int) ([]entity.User, error)
	FindAllDoctors(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	FindDetailByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
