package repository

import (
	"context"
	"errors"

	"bookingcare-service/internal/domain/entity"
	domainRepo "bookingcare-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type markdownRepository struct{}

func NewMarkdownRepository() domainRepo.MarkdownRepository {
	return &markdownRepository{}
}

func (r *markdownRepository) Create(ctx context.Context, db *gorm.DB, markdown *entity.Markdown) error {
	return db.WithContext(ctx).Create(markdown).Error
}

func (r *markdownRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.Markdown, error) {
	var markdown entity.Markdown
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&markdown).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &markdown, nil
}

func (r *markdownRepository) Update(ctx context.Context, db *gorm.DB, markdown *entity.Markdown) error {
	return db.WithContext(ctx).Save(markdown).Error
}
