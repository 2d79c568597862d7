package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AllcodeRepository interface {
	FindByType(ctx context.Context, db *gorm.DB, codeType string) ([]entity.Allcode, error)
}
