package entity

import (
	"time"

	"github.com/google/uuid"
)

// Markdown holds the doctor's introduction page, both as source markdown and rendered HTML
type Markdown struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"doctor_id"`
	ContentHTML     string    `gorm:"column:content_html;type:text;not null" json:"content_html"`
	ContentMarkdown string    `gorm:"type:text;not null" json:"content_markdown"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Markdown) TableName() string {
	return "markdowns"
}
