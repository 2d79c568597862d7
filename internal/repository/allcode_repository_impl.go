package repository

import (
	"context"

	"bookingcare-service/internal/domain/entity"
	domainRepo "bookingcare-service/internal/domain/repository"

	"gorm.io/gorm"
)

type allcodeRepository struct{}

func NewAllcodeRepository() domainRepo.AllcodeRepository {
	return &allcodeRepository{}
}

func (r *allcodeRepository) FindByType(ctx context.Context, db *gorm.DB, codeType string) ([]entity.Allcode, error) {
	var codes []entity.Allcode
	err := db.WithContext(ctx).Where("type = ?", codeType).Order("id ASC").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
