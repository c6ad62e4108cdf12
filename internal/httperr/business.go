package httperr

import "errors"

// Canonical business error codes.
const (
	CodeNotFound        = "not_found"
	CodeInvalidSchedule = "invalid_schedule"
	CodeConflict        = "conflict"
	CodeInvalidState    = "invalid_state"
	CodeInvalidScore    = "invalid_score"
	CodeCommentTooLong  = "comment_too_long"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
