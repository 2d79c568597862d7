package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records a change made to a doctor's data
type AuditLog struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  *uuid.UUID  `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Action    string      `gorm:"type:varchar(100);not null;index" json:"action"`
	Change    AuditChange `gorm:"column:metadata;type:jsonb" json:"change"`
	CreatedAt time.Time   `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditChange is stored as jsonb. OldValue is nil for creations.
type AuditChange struct {
	Entity   string      `json:"entity"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

func (c AuditChange) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *AuditChange) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*c = AuditChange{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported audit change value %T", value)
	}
	return json.Unmarshal(data, c)
}

const (
	AuditActionDoctorInfoSave = "doctor_info.save"
	AuditActionMarkdownCreate = "markdown.create"
	AuditActionMarkdownUpdate = "markdown.update"
)
