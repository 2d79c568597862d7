package converter

import (
	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DoctorToResponse converts a doctor User entity to DoctorResponse DTO
func DoctorToResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Address:      user.Address,
		PhoneNumber:  user.PhoneNumber,
		Gender:       user.Gender,
		RoleID:       user.RoleID,
		PositionID:   user.PositionID,
		Image:        string(user.Image),
		CreatedAt:    user.CreatedAt,
		PositionData: AllcodeToValue(user.PositionData),
		GenderData:   AllcodeToValue(user.GenderData),
	}
}

// DoctorsToResponses converts a slice of doctor User entities to slice of DoctorResponse DTOs
func DoctorsToResponses(users []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(users))
	for i := range users {
		responses[i] = *DoctorToResponse(&users[i])
	}
	return responses
}

// DoctorToDetailResponse converts a User with its markdown and clinic info to DoctorDetailResponse.
// A nil user yields an empty response.
func DoctorToDetailResponse(user *entity.User) *dto.DoctorDetailResponse {
	if user == nil {
		return &dto.DoctorDetailResponse{}
	}

	response := &dto.DoctorDetailResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Address:      user.Address,
		PhoneNumber:  user.PhoneNumber,
		Gender:       user.Gender,
		RoleID:       user.RoleID,
		PositionID:   user.PositionID,
		Image:        string(user.Image),
		PositionData: AllcodeToValue(user.PositionData),
	}

	if user.Markdown != nil {
		response.Markdown = &dto.MarkdownResponse{
			Description:     user.Markdown.Description,
			ContentHTML:     user.Markdown.ContentHTML,
			ContentMarkdown: user.Markdown.ContentMarkdown,
		}
	}

	if user.DoctorInfo != nil {
		response.DoctorInfo = DoctorInfoToResponse(user.DoctorInfo)
	}

	return response
}

// DoctorInfoToResponse converts a DoctorInfo entity to DoctorInfoResponse DTO
func DoctorInfoToResponse(info *entity.DoctorInfo) *dto.DoctorInfoResponse {
	if info == nil {
		return nil
	}

	response := &dto.DoctorInfoResponse{
		PriceID:       info.PriceID,
		ProvinceID:    info.ProvinceID,
		PaymentID:     info.PaymentID,
		AddressClinic: info.AddressClinic,
		NameClinic:    info.NameClinic,
		Note:          info.Note,
		PriceData:     AllcodeToValue(info.PriceData),
		ProvinceData:  AllcodeToValue(info.ProvinceData),
		PaymentData:   AllcodeToValue(info.PaymentData),
	}

	if info.PriceData != nil {
		response.PriceVi = parsePrice(info.PriceData.ValueVi)
		response.PriceEn = parsePrice(info.PriceData.ValueEn)
	}

	return response
}

// parsePrice returns nil for values that are not plain numbers
func parsePrice(value string) *decimal.Decimal {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &price
}
