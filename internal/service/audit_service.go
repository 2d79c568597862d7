package service

import (
	"context"

	"bookingcare-service/internal/domain/entity"
	"bookingcare-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, newValue interface{}) error {
	return s.write(ctx, tx, doctorID, action, entity.AuditChange{
		Entity:   entityName,
		NewValue: newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, doctorID, action, entity.AuditChange{
		Entity:   entityName,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, change entity.AuditChange) error {
	auditLog := &entity.AuditLog{
		DoctorID: doctorID,
		Action:   action,
		Change:   change,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
