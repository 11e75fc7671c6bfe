package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so callers can use errors.Is against the sentinels.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
	}

	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "operation not allowed",
	}

	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "invalid request payload",
	}

	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "resource state conflict",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewStatusError creates an error for a response that carried no decodable
// error envelope, keyed by the HTTP status it came from.
func NewStatusError(status int) *DomainError {
	return &DomainError{
		Code:    "HTTP_ERROR",
		Message: fmt.Sprintf("request failed with status %d", status),
	}
}
