package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account of any role. Doctors are users with RoleID RoleDoctor.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FirstName   string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100)" json:"last_name"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"`
	Image       []byte    `gorm:"type:bytea" json:"-"`
	RoleID      string    `gorm:"type:varchar(10);not null;index" json:"role_id"`
	PositionID  string    `gorm:"type:varchar(10)" json:"position_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PositionData *Allcode    `gorm:"foreignKey:PositionID;references:KeyMap" json:"position_data,omitempty"`
	GenderData   *Allcode    `gorm:"foreignKey:Gender;references:KeyMap" json:"gender_data,omitempty"`
	Markdown     *Markdown   `gorm:"foreignKey:DoctorID" json:"markdown,omitempty"`
	DoctorInfo   *DoctorInfo `gorm:"foreignKey:DoctorID" json:"doctor_info,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsDoctor checks if the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleDoctor
}
