// Package testutil provides an in-memory database for repository and usecase tests.
package testutil

import (
	"testing"

	"bookingcare-service/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory database holding every table of the service.
// The pool is pinned to one connection since each in-memory connection is its own database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&entity.Allcode{},
		&entity.User{},
		&entity.Markdown{},
		&entity.DoctorInfo{},
		&entity.Schedule{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// SeedAllcodes inserts the reference codes used by tests
func SeedAllcodes(t *testing.T, db *gorm.DB) {
	t.Helper()

	codes := []entity.Allcode{
		{KeyMap: "R2", Type: entity.AllcodeTypeRole, ValueEn: "Doctor", ValueVi: "Bác sĩ"},
		{KeyMap: "P1", Type: entity.AllcodeTypePosition, ValueEn: "Master", ValueVi: "Thạc sĩ"},
		{KeyMap: "M", Type: entity.AllcodeTypeGender, ValueEn: "Male", ValueVi: "Nam"},
		{KeyMap: "T1", Type: entity.AllcodeTypeTime, ValueEn: "8:00 AM - 9:00 AM", ValueVi: "8:00 - 9:00"},
		{KeyMap: "T2", Type: entity.AllcodeTypeTime, ValueEn: "9:00 AM - 10:00 AM", ValueVi: "9:00 - 10:00"},
		{KeyMap: "T3", Type: entity.AllcodeTypeTime, ValueEn: "10:00 AM - 11:00 AM", ValueVi: "10:00 - 11:00"},
		{KeyMap: "PRI1", Type: entity.AllcodeTypePrice, ValueEn: "10", ValueVi: "200000"},
		{KeyMap: "PAY1", Type: entity.AllcodeTypePayment, ValueEn: "Cash", ValueVi: "Tiền mặt"},
		{KeyMap: "PRO1", Type: entity.AllcodeTypeProvince, ValueEn: "Ha Noi", ValueVi: "Hà Nội"},
	}
	if err := db.Create(&codes).Error; err != nil {
		t.Fatalf("seed allcodes: %v", err)
	}
}
