package usecase

import (
	"context"
	"errors"
	"testing"

	"bookingcare-service/internal/domain/entity"

	"gorm.io/gorm"
)

type mockAllcodeRepo struct {
	codes map[string][]entity.Allcode
	err   error
	calls int
}

func (m *mockAllcodeRepo) FindByType(_ context.Context, _ *gorm.DB, codeType string) ([]entity.Allcode, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.codes[codeType], nil
}

func newTestAllcodeUsecase(t *testing.T, repo *mockAllcodeRepo) AllcodeUsecase {
	t.Helper()
	uc, err := NewAllcodeUsecase(nil, newTestLogger(), repo, 8)
	if err != nil {
		t.Fatalf("NewAllcodeUsecase: %v", err)
	}
	return uc
}

func TestGetAllcodes_CachesByType(t *testing.T) {
	repo := &mockAllcodeRepo{codes: map[string][]entity.Allcode{
		entity.AllcodeTypeTime: {
			{KeyMap: "T1", Type: entity.AllcodeTypeTime, ValueEn: "8:00 AM - 9:00 AM", ValueVi: "8:00 - 9:00"},
			{KeyMap: "T2", Type: entity.AllcodeTypeTime, ValueEn: "9:00 AM - 10:00 AM", ValueVi: "9:00 - 10:00"},
		},
	}}
	uc := newTestAllcodeUsecase(t, repo)

	first, err := uc.GetAllcodes(context.Background(), "time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.GetAllcodes(context.Background(), " TIME ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 codes, got %d and %d", len(first), len(second))
	}
	if first[0].KeyMap != "T1" {
		t.Errorf("expected T1 first, got %s", first[0].KeyMap)
	}
	if repo.calls != 1 {
		t.Errorf("expected repository to be hit once, got %d", repo.calls)
	}
}

func TestGetAllcodes_EmptyResultNotCached(t *testing.T) {
	repo := &mockAllcodeRepo{codes: map[string][]entity.Allcode{}}
	uc := newTestAllcodeUsecase(t, repo)

	for i := 0; i < 2; i++ {
		codes, err := uc.GetAllcodes(context.Background(), "PROVINCE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(codes) != 0 {
			t.Errorf("expected no codes, got %d", len(codes))
		}
	}
	if repo.calls != 2 {
		t.Errorf("expected empty results to be re-queried, got %d calls", repo.calls)
	}
}

func TestGetAllcodes_MissingType(t *testing.T) {
	repo := &mockAllcodeRepo{}
	uc := newTestAllcodeUsecase(t, repo)

	_, err := uc.GetAllcodes(context.Background(), "  ")
	if _, ok := AsParamError(err); !ok {
		t.Fatalf("expected ParamError, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("expected no repository access, got %d calls", repo.calls)
	}
}

func TestGetAllcodes_RepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	uc := newTestAllcodeUsecase(t, &mockAllcodeRepo{err: repoErr})

	_, err := uc.GetAllcodes(context.Background(), "TIME")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
