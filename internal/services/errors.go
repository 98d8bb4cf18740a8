package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTokenInvalidOrExpired  = errors.New("verification token is invalid or expired")
	ErrInvalidStateTransition = errors.New("vendor is not in a state allowing this transition")
	ErrNoEligibleVendors      = errors.New("no eligible vendors for this job")
	ErrVendorNotFound         = errors.New("vendor not found")
	ErrJobNotFound            = errors.New("job not found")
	ErrNotAssigned            = errors.New("vendor is not assigned to this job")
	ErrEmployeeNotFound       = errors.New("employee not found")
)

// ValidationError marks failures of the caller's input rather than of the
// system itself.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
