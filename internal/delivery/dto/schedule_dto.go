package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type ScheduleSlotRequest struct {
	TimeType  string `json:"timeType" validate:"required"`
	Date      int64  `json:"date" validate:"omitempty,gt=0"` // Unix milliseconds; defaults to the request date
	MaxNumber *int   `json:"maxNumber" validate:"omitempty,min=1"`
}

type BulkCreateScheduleRequest struct {
	ArrSchedule  []ScheduleSlotRequest `json:"arrSchedule" validate:"required,dive"`
	DoctorID     uuid.UUID             `json:"doctorId" validate:"required"`
	FormatedDate int64                 `json:"formatedDate" validate:"required,gt=0"` // Unix milliseconds
}

// Response DTOs

type BulkCreateScheduleResponse struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
}

type ScheduleResponse struct {
	ID            int           `json:"id"`
	DoctorID      uuid.UUID     `json:"doctorId"`
	Date          int64         `json:"date"`
	TimeType      string        `json:"timeType"`
	MaxNumber     int           `json:"maxNumber"`
	CurrentNumber int           `json:"currentNumber"`
	TimeTypeData  *AllcodeValue `json:"timeTypeData,omitempty"`
}
