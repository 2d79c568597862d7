package usecase

import (
	"context"
	"fmt"
	"strings"

	"bookingcare-service/internal/converter"
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/repository"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AllcodeUsecase interface {
	GetAllcodes(ctx context.Context, codeType string) ([]dto.AllcodeResponse, error)
}

type allcodeUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	allcodeRepo repository.AllcodeRepository
	cache       *lru.Cache[string, []dto.AllcodeResponse]
}

// NewAllcodeUsecase creates the allcode usecase. Results are cached per type for the
// life of the process, holding at most cacheSize types.
func NewAllcodeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	allcodeRepo repository.AllcodeRepository,
	cacheSize int,
) (AllcodeUsecase, error) {
	cache, err := lru.New[string, []dto.AllcodeResponse](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create allcode cache: %w", err)
	}

	return &allcodeUsecase{
		db:          db,
		log:         log,
		allcodeRepo: allcodeRepo,
		cache:       cache,
	}, nil
}

func (u *allcodeUsecase) GetAllcodes(ctx context.Context, codeType string) ([]dto.AllcodeResponse, error) {
	codeType = strings.ToUpper(strings.TrimSpace(codeType))
	if codeType == "" {
		return nil, newParamError(MsgMissingRequiredParameter)
	}

	if codes, ok := u.cache.Get(codeType); ok {
		return codes, nil
	}

	codes, err := u.allcodeRepo.FindByType(ctx, u.db, codeType)
	if err != nil {
		u.log.Warnf("Failed to find allcodes of type %s: %+v", codeType, err)
		return nil, err
	}

	responses := converter.AllcodesToResponses(codes)
	if len(responses) > 0 {
		u.cache.Add(codeType, responses)
	}

	return responses, nil
}
