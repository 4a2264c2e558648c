package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// ValidationError reports a bad, missing or oversized request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent project or referenced entity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UniqueConstraintError reports a duplicate name or slug.
type UniqueConstraintError struct {
	Message string
}

func (e *UniqueConstraintError) Error() string {
	return e.Message
}

func NewUniqueConstraint(format string, args ...any) *UniqueConstraintError {
	return &UniqueConstraintError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports unauthenticated access to a protected endpoint.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorization(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound)
}

// FromGorm maps storage layer errors into the taxonomy so controllers never
// leak gorm errors to clients.
func FromGorm(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFound("record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewUniqueConstraint("duplicate name or slug")
	default:
		return err
	}
}

// StatusCode translates an error into the HTTP status the API contract
// promises: 401 for unauthenticated access, 400 for everything else.
func StatusCode(err error) int {
	var ae *AuthorizationError
	if errors.As(err, &ae) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
