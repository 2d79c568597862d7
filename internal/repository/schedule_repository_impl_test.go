package repository

import (
	"context"
	"testing"

	"bookingcare-service/internal/domain/entity"
	"bookingcare-service/internal/testutil"

	"github.com/google/uuid"
)

const (
	day1 int64 = 1700006400000
	day2 int64 = 1700092800000
)

func TestScheduleRepository_FindByDoctorAndDate_Empty(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()

	schedules, err := repo.FindByDoctorAndDate(context.Background(), db, uuid.New(), day1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedules == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(schedules) != 0 {
		t.Errorf("expected 0 schedules, got %d", len(schedules))
	}
}

func TestScheduleRepository_BulkCreateAndFind(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()
	ctx := context.Background()
	doctorID := uuid.New()
	otherDoctor := uuid.New()

	schedules := []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 10},
		{DoctorID: doctorID, Date: day1, TimeType: "T2", MaxNumber: 5},
		{DoctorID: doctorID, Date: day2, TimeType: "T1", MaxNumber: 10},
		{DoctorID: otherDoctor, Date: day1, TimeType: "T1", MaxNumber: 10},
	}
	if err := repo.BulkCreate(ctx, db, schedules); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	for i, s := range schedules {
		if s.ID == 0 {
			t.Errorf("schedule %d: expected generated ID", i)
		}
	}

	found, err := repo.FindByDoctorAndDate(ctx, db, doctorID, day1)
	if err != nil {
		t.Fatalf("FindByDoctorAndDate: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(found))
	}
	for _, s := range found {
		if s.DoctorID != doctorID || s.Date != day1 {
			t.Errorf("unexpected slot %+v", s)
		}
		if s.MaxNumber == 0 {
			t.Errorf("expected max number to be selected, got 0 for %s", s.TimeType)
		}
	}
}

func TestScheduleRepository_FindByDoctorAndDates(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()
	ctx := context.Background()
	doctorID := uuid.New()
	day3 := day2 + 86400000

	if err := repo.BulkCreate(ctx, db, []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 10},
		{DoctorID: doctorID, Date: day2, TimeType: "T1", MaxNumber: 10},
		{DoctorID: doctorID, Date: day3, TimeType: "T1", MaxNumber: 10},
		{DoctorID: uuid.New(), Date: day2, TimeType: "T2", MaxNumber: 10},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	found, err := repo.FindByDoctorAndDates(ctx, db, doctorID, []int64{day1, day2})
	if err != nil {
		t.Fatalf("FindByDoctorAndDates: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(found))
	}
	for _, s := range found {
		if s.DoctorID != doctorID || s.Date == day3 {
			t.Errorf("unexpected slot %+v", s)
		}
	}

	none, err := repo.FindByDoctorAndDates(ctx, db, doctorID, nil)
	if err != nil {
		t.Fatalf("FindByDoctorAndDates without dates: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty slice, got %v", none)
	}
}

func TestScheduleRepository_BulkCreate_EmptyIsNoop(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()

	if err := repo.BulkCreate(context.Background(), db, nil); err != nil {
		t.Fatalf("expected nil error for empty insert, got %v", err)
	}
}

func TestScheduleRepository_BulkCreate_DuplicateSlotRejected(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()
	ctx := context.Background()
	doctorID := uuid.New()

	if err := repo.BulkCreate(ctx, db, []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 10},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := repo.BulkCreate(ctx, db, []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T2", MaxNumber: 10},
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 3},
	})
	if err == nil {
		t.Fatal("expected unique index violation")
	}

	found, err := repo.FindByDoctorAndDate(ctx, db, doctorID, day1)
	if err != nil {
		t.Fatalf("FindByDoctorAndDate: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("expected the failed insert to write nothing, found %d slots", len(found))
	}
}

func TestScheduleRepository_FindByDoctorAndDateWithTimeType(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	testutil.SeedAllcodes(t, db)
	repo := NewScheduleRepository()
	ctx := context.Background()
	doctorID := uuid.New()

	if err := repo.BulkCreate(ctx, db, []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T3", MaxNumber: 10},
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 10},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	found, err := repo.FindByDoctorAndDateWithTimeType(ctx, db, doctorID, day1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(found))
	}
	if found[0].TimeType != "T1" || found[1].TimeType != "T3" {
		t.Errorf("expected slots ordered by time type, got %s, %s", found[0].TimeType, found[1].TimeType)
	}
	if found[0].TimeTypeData == nil || found[0].TimeTypeData.ValueEn != "8:00 AM - 9:00 AM" {
		t.Errorf("expected time type data to be preloaded, got %+v", found[0].TimeTypeData)
	}
}

func TestScheduleRepository_FindUpcoming(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewScheduleRepository()
	ctx := context.Background()
	doctorID := uuid.New()

	if err := repo.BulkCreate(ctx, db, []entity.Schedule{
		{DoctorID: doctorID, Date: day1, TimeType: "T1", MaxNumber: 10},
		{DoctorID: doctorID, Date: day2, TimeType: "T1", MaxNumber: 10},
		{DoctorID: doctorID, Date: day2, TimeType: "T2", MaxNumber: 10},
		{DoctorID: doctorID, Date: day2, TimeType: "T3", MaxNumber: 10},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	page1, err := repo.FindUpcoming(ctx, db, day2, 2, 0)
	if err != nil {
		t.Fatalf("FindUpcoming: %v", err)
	}
	page2, err := repo.FindUpcoming(ctx, db, day2, 2, 2)
	if err != nil {
		t.Fatalf("FindUpcoming: %v", err)
	}

	if len(page1) != 2 || len(page2) != 1 {
		t.Fatalf("expected pages of 2 and 1, got %d and %d", len(page1), len(page2))
	}
	for _, s := range append(page1, page2...) {
		if s.Date < day2 {
			t.Errorf("expected only slots from day2 on, got date %d", s.Date)
		}
	}
}
