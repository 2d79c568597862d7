package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Messages reported with a ParamError
const (
	MsgMissingRequiredParameter  = "Missing required parameter"
	MsgMissingParameters         = "Missing parameters"
	MsgMissingRequiredParameters = "Missing required parameters!"
	MsgInvalidAction             = "Invalid action"
)

// ParamError is an in-band validation failure: the request was refused before any storage access.
// Every other error returned by a usecase comes from storage and is fatal for the request.
type ParamError struct {
	Code    int
	Message string
}

func (e *ParamError) Error() string {
	return e.Message
}

func newParamError(message string) *ParamError {
	return &ParamError{Code: 1, Message: message}
}

// AsParamError extracts a ParamError from err
func AsParamError(err error) (*ParamError, bool) {
	var paramErr *ParamError
	if errors.As(err, &paramErr) {
		return paramErr, true
	}
	return nil, false
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name, or a dialect-translated duplicate key error
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
