package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorInfo holds the clinic and pricing details of a doctor
type DoctorInfo struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"doctor_id"`
	PriceID       string    `gorm:"type:varchar(10);not null" json:"price_id"`
	ProvinceID    string    `gorm:"type:varchar(10);not null" json:"province_id"`
	PaymentID     string    `gorm:"type:varchar(10);not null" json:"payment_id"`
	AddressClinic string    `gorm:"type:text;not null" json:"address_clinic"`
	NameClinic    string    `gorm:"type:varchar(255);not null" json:"name_clinic"`
	Note          string    `gorm:"type:text" json:"note,omitempty"`
	Count         int       `gorm:"not null;default:0" json:"count"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PriceData    *Allcode `gorm:"foreignKey:PriceID;references:KeyMap" json:"price_data,omitempty"`
	ProvinceData *Allcode `gorm:"foreignKey:ProvinceID;references:KeyMap" json:"province_data,omitempty"`
	PaymentData  *Allcode `gorm:"foreignKey:PaymentID;references:KeyMap" json:"payment_data,omitempty"`
}

func (DoctorInfo) TableName() string {
	return "doctor_infos"
}
