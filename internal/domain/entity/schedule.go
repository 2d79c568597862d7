package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is one bookable time slot of a doctor on a date.
// Date is the day's timestamp in milliseconds; TimeType is an allcode key of type TIME.
// At most one row exists per (DoctorID, Date, TimeType).
type Schedule struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_doctor_date_time,priority:1" json:"doctor_id"`
	Date          int64     `gorm:"not null;uniqueIndex:idx_schedules_doctor_date_time,priority:2" json:"date"`
	TimeType      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_schedules_doctor_date_time,priority:3" json:"time_type"`
	MaxNumber     int       `gorm:"not null" json:"max_number"`
	CurrentNumber int       `gorm:"not null;default:0" json:"current_number"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	TimeTypeData *Allcode `gorm:"foreignKey:TimeType;references:KeyMap" json:"time_type_data,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// SameSlot reports whether s and other occupy the same time bucket on the same day
func (s *Schedule) SameSlot(other *Schedule) bool {
	return s.TimeType == other.TimeType && s.Date == other.Date
}

// RemainingCapacity returns how many bookings the slot can still take
func (s *Schedule) RemainingCapacity() int {
	remaining := s.MaxNumber - s.CurrentNumber
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Day returns the calendar day of the slot
func (s *Schedule) Day() time.Time {
	return time.UnixMilli(s.Date).UTC()
}
