package usecase

import (
	"context"
	"errors"

	"bookingcare-service/internal/converter"
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/entity"
	"bookingcare-service/internal/domain/repository"
	"bookingcare-service/internal/service"
	"bookingcare-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultTopDoctorLimit = 10

var (
	ErrMarkdownExists = errors.New("doctor markdown already exists")
)

type DoctorUsecase interface {
	GetTopDoctorHome(ctx context.Context, limit int) ([]dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	SaveDetailInfoDoctor(ctx context.Context, req *dto.SaveDoctorInfoRequest) error
	GetDetailDoctorByID(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	validator      *validator.CustomValidator
	userRepo       repository.UserRepository
	markdownRepo   repository.MarkdownRepository
	doctorInfoRepo repository.DoctorInfoRepository
	auditService   service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	markdownRepo repository.MarkdownRepository,
	doctorInfoRepo repository.DoctorInfoRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:             db,
		log:            log,
		validator:      validator,
		userRepo:       userRepo,
		markdownRepo:   markdownRepo,
		doctorInfoRepo: doctorInfoRepo,
		auditService:   auditService,
	}
}

func (u *doctorUsecase) GetTopDoctorHome(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	if limit <= 0 {
		limit = defaultTopDoctorLimit
	}

	users, err := u.userRepo.FindTopDoctors(ctx, u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to find top doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(users), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	users, err := u.userRepo.FindAllDoctors(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(users), nil
}

// SaveDetailInfoDoctor creates or edits the doctor's markdown, depending on req.Action,
// and upserts the doctor's clinic info. Both writes commit together.
func (u *doctorUsecase) SaveDetailInfoDoctor(ctx context.Context, req *dto.SaveDoctorInfoRequest) error {
	if req == nil {
		return newParamError(MsgMissingParameters)
	}
	if err := u.validator.Validate(req); err != nil {
		u.log.Debugf("Invalid save doctor info request: %+v", u.validator.FormatValidationErrors(err))
		return newParamError(MsgMissingParameters)
	}
	if req.Action != dto.ActionCreate && req.Action != dto.ActionEdit {
		return newParamError(MsgInvalidAction)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// upsert markdown
	switch req.Action {
	case dto.ActionCreate:
		markdown := &entity.Markdown{
			DoctorID:        req.DoctorID,
			ContentHTML:     req.ContentHTML,
			ContentMarkdown: req.ContentMarkdown,
			Description:     req.Description,
		}
		if err := u.markdownRepo.Create(ctx, tx, markdown); err != nil {
			if isDuplicateKeyError(err, "doctor_id") {
				return ErrMarkdownExists
			}
			u.log.Warnf("Failed to create markdown: %+v", err)
			return err
		}
		u.audit(tx, req.DoctorID, func() error {
			return u.auditService.LogCreate(ctx, tx, &req.DoctorID, entity.AuditActionMarkdownCreate, "markdown", markdownValue(markdown))
		})

	case dto.ActionEdit:
		markdown, err := u.markdownRepo.FindByDoctorID(ctx, tx, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find markdown: %+v", err)
			return err
		}
		if markdown != nil {
			oldValue := markdownValue(markdown)
			markdown.ContentHTML = req.ContentHTML
			markdown.ContentMarkdown = req.ContentMarkdown
			markdown.Description = req.Description
			if err := u.markdownRepo.Update(ctx, tx, markdown); err != nil {
				u.log.Warnf("Failed to update markdown: %+v", err)
				return err
			}
			u.audit(tx, req.DoctorID, func() error {
				return u.auditService.LogUpdate(ctx, tx, &req.DoctorID, entity.AuditActionMarkdownUpdate, "markdown", oldValue, markdownValue(markdown))
			})
		}
	}

	// upsert doctor info
	info, err := u.doctorInfoRepo.FindByDoctorID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor info: %+v", err)
		return err
	}

	if info != nil {
		oldValue := converter.DoctorInfoToResponse(info)
		applyDoctorInfo(info, req)
		if err := u.doctorInfoRepo.Update(ctx, tx, info); err != nil {
			u.log.Warnf("Failed to update doctor info: %+v", err)
			return err
		}
		u.audit(tx, req.DoctorID, func() error {
			return u.auditService.LogUpdate(ctx, tx, &req.DoctorID, entity.AuditActionDoctorInfoSave, "doctor_info", oldValue, converter.DoctorInfoToResponse(info))
		})
	} else {
		info = &entity.DoctorInfo{DoctorID: req.DoctorID}
		applyDoctorInfo(info, req)
		if err := u.doctorInfoRepo.Create(ctx, tx, info); err != nil {
			u.log.Warnf("Failed to create doctor info: %+v", err)
			return err
		}
		u.audit(tx, req.DoctorID, func() error {
			return u.auditService.LogCreate(ctx, tx, &req.DoctorID, entity.AuditActionDoctorInfoSave, "doctor_info", converter.DoctorInfoToResponse(info))
		})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) GetDetailDoctorByID(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	if doctorID == uuid.Nil {
		return nil, newParamError(MsgMissingRequiredParameter)
	}

	user, err := u.userRepo.FindDetailByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor detail: %+v", err)
		return nil, err
	}

	return converter.DoctorToDetailResponse(user), nil
}

// audit runs write inside a savepoint so a failed audit row leaves the transaction usable
func (u *doctorUsecase) audit(tx *gorm.DB, doctorID uuid.UUID, write func() error) {
	const savepoint = "audit_log"
	if err := tx.SavePoint(savepoint).Error; err != nil {
		u.log.Warnf("Failed to create savepoint for audit log: %+v", err)
		return
	}
	if err := write(); err != nil {
		u.log.Warnf("Failed to create audit log for doctor %s: %+v", doctorID, err)
		// Don't fail the transaction for audit log errors
		if err := tx.RollbackTo(savepoint).Error; err != nil {
			u.log.Warnf("Failed to roll back audit savepoint: %+v", err)
		}
	}
}

func applyDoctorInfo(info *entity.DoctorInfo, req *dto.SaveDoctorInfoRequest) {
	info.PriceID = req.SelectedPrice
	info.ProvinceID = req.SelectedProvince
	info.PaymentID = req.SelectedPayment
	info.AddressClinic = req.AddressClinic
	info.NameClinic = req.NameClinic
	info.Note = req.Note
}

func markdownValue(markdown *entity.Markdown) *dto.MarkdownResponse {
	return &dto.MarkdownResponse{
		Description:     markdown.Description,
		ContentHTML:     markdown.ContentHTML,
		ContentMarkdown: markdown.ContentMarkdown,
	}
}
