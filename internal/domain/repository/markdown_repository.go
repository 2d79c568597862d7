package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarkdownRepository interface {
	Create(ctx context.Context, db *gorm.DB, markdown *entity.Markdown) error
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.Markdown, error)
	Update(ctx context.Context, db *gorm.DB, markdown *entity.Markdown) error
}
