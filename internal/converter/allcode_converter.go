package converter

import (
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/entity"
)

// AllcodeToValue converts an Allcode to the bilingual value pair embedded in other responses
func AllcodeToValue(code *entity.Allcode) *dto.AllcodeValue {
	if code == nil {
		return nil
	}
	return &dto.AllcodeValue{
		ValueEn: code.ValueEn,
		ValueVi: code.ValueVi,
	}
}

// AllcodesToResponses converts a slice of Allcode entities to slice of AllcodeResponse DTOs
func AllcodesToResponses(codes []entity.Allcode) []dto.AllcodeResponse {
	responses := make([]dto.AllcodeResponse, len(codes))
	for i, code := range codes {
		responses[i] = dto.AllcodeResponse{
			KeyMap:  code.KeyMap,
			Type:    code.Type,
			ValueEn: code.ValueEn,
			ValueVi: code.ValueVi,
		}
	}
	return responses
}
