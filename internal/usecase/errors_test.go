package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"unique violation on constraint", &pgconn.PgError{Code: "23505", ConstraintName: "idx_markdowns_doctor_id"}, true},
		{"wrapped unique violation", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_markdowns_doctor_id"}), true},
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, false},
		{"other code", &pgconn.PgError{Code: "23503", ConstraintName: "idx_markdowns_doctor_id"}, false},
		{"translated duplicate", gorm.ErrDuplicatedKey, true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, "doctor_id"); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParamError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", newParamError(MsgInvalidAction))

	paramErr, ok := AsParamError(err)
	if !ok {
		t.Fatal("expected ParamError to be found through wrapping")
	}
	if paramErr.Code != 1 || paramErr.Error() != MsgInvalidAction {
		t.Errorf("unexpected param error %+v", paramErr)
	}
	if _, ok := AsParamError(errors.New("other")); ok {
		t.Error("expected plain error not to be a ParamError")
	}
}
