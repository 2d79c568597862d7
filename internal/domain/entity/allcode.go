package entity

// Allcode is a bilingual reference code (roles, positions, genders, time slots,
// prices, provinces, payment methods). Other tables point at it by KeyMap.
type Allcode struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	KeyMap  string `gorm:"type:varchar(10);uniqueIndex;not null" json:"key_map"`
	Type    string `gorm:"type:varchar(20);not null;index" json:"type"`
	ValueEn string `gorm:"type:varchar(255)" json:"value_en"`
	ValueVi string `gorm:"type:varchar(255)" json:"value_vi"`
}

func (Allcode) TableName() string {
	return "allcodes"
}

// Allcode types
const (
	AllcodeTypeRole     = "ROLE"
	AllcodeTypePosition = "POSITION"
	AllcodeTypeGender   = "GENDER"
	AllcodeTypeTime     = "TIME"
	AllcodeTypePrice    = "PRICE"
	AllcodeTypePayment  = "PAYMENT"
	AllcodeTypeProvince = "PROVINCE"
)
