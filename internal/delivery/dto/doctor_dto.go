package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SaveDoctorInfoRequest struct {
	DoctorID         uuid.UUID `json:"doctorId" validate:"required"`
	ContentHTML      string    `json:"contentHTML" validate:"required"`
	ContentMarkdown  string    `json:"contentMarkdown" validate:"required"`
	Description      string    `json:"description" validate:"omitempty"`
	Action           string    `json:"action" validate:"required"` // CREATE or EDIT
	SelectedPrice    string    `json:"selectedPrice" validate:"required"`
	SelectedPayment  string    `json:"selectedPayment" validate:"required"`
	SelectedProvince string    `json:"selectedProvince" validate:"required"`
	NameClinic       string    `json:"nameClinic" validate:"required"`
	AddressClinic    string    `json:"addressClinic" validate:"required"`
	Note             string    `json:"note" validate:"required"`
}

// Markdown actions
const (
	ActionCreate = "CREATE"
	ActionEdit   = "EDIT"
)

// Response DTOs

type AllcodeValue struct {
	ValueEn string `json:"valueEn"`
	ValueVi string `json:"valueVi"`
}

type DoctorResponse struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Address      string        `json:"address,omitempty"`
	PhoneNumber  string        `json:"phoneNumber,omitempty"`
	Gender       string        `json:"gender"`
	RoleID       string        `json:"roleId"`
	PositionID   string        `json:"positionId"`
	Image        string        `json:"image,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	PositionData *AllcodeValue `json:"positionData,omitempty"`
	GenderData   *AllcodeValue `json:"genderData,omitempty"`
}

type MarkdownResponse struct {
	Description     string `json:"description"`
	ContentHTML     string `json:"contentHTML"`
	ContentMarkdown string `json:"contentMarkdown"`
}

type DoctorInfoResponse struct {
	PriceID       string           `json:"priceId"`
	ProvinceID    string           `json:"provinceId"`
	PaymentID     string           `json:"paymentId"`
	AddressClinic string           `json:"addressClinic"`
	NameClinic    string           `json:"nameClinic"`
	Note          string           `json:"note,omitempty"`
	PriceVi       *decimal.Decimal `json:"priceVi,omitempty"`
	PriceEn       *decimal.Decimal `json:"priceEn,omitempty"`
	PriceData     *AllcodeValue    `json:"priceData,omitempty"`
	ProvinceData  *AllcodeValue    `json:"provinceData,omitempty"`
	PaymentData   *AllcodeValue    `json:"paymentData,omitempty"`
}

// DoctorDetailResponse is empty ({}) when the doctor does not exist
type DoctorDetailResponse struct {
	ID           string              `json:"id,omitempty"`
	Email        string              `json:"email,omitempty"`
	FirstName    string              `json:"firstName,omitempty"`
	LastName     string              `json:"lastName,omitempty"`
	Address      string              `json:"address,omitempty"`
	PhoneNumber  string              `json:"phoneNumber,omitempty"`
	Gender       string              `json:"gender,omitempty"`
	RoleID       string              `json:"roleId,omitempty"`
	PositionID   string              `json:"positionId,omitempty"`
	Image        string              `json:"image,omitempty"`
	PositionData *AllcodeValue       `json:"positionData,omitempty"`
	Markdown     *MarkdownResponse   `json:"markdown,omitempty"`
	DoctorInfo   *DoctorInfoResponse `json:"doctorInfo,omitempty"`
}
