package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure taxonomy. Services wrap these with
// fmt.Errorf("verb noun: %w", core.ErrX); handlers map them with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrTooManyAttachments = errors.New("too many attachments")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnavailable        = errors.New("unavailable")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// AppError is an error with a stable machine-readable code and an HTTP
// status. The wrapped sentinel stays reachable through errors.Is.
type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func ValidationError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		"VALIDATION_ERROR",
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
	)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "access denied"
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden, "FORBIDDEN")
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		resource+" not found",
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		field+" already exists",
		http.StatusConflict,
		"DUPLICATE_"+toCode(field),
	)
}

func TooManyAttachmentsError(limit int) *AppError {
	return NewAppError(
		ErrTooManyAttachments,
		fmt.Sprintf("at most %d attachments are allowed", limit),
		http.StatusBadRequest,
		"TOO_MANY_ATTACHMENTS",
	)
}

func StorageUnavailableError() *AppError {
	return NewAppError(
		ErrStorageUnavailable,
		"file storage is temporarily unavailable",
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
	)
}

func UnavailableError() *AppError {
	return NewAppError(
		ErrUnavailable,
		"service temporarily unavailable, retry later",
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token has expired",
		http.StatusForbidden,
		"TOKEN_EXPIRED",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"token is invalid",
		http.StatusForbidden,
		"TOKEN_INVALID",
	)
}

func toCode(field string) string {
	code := make([]byte, 0, len(field))
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c >= 'a' && c <= 'z':
			code = append(code, c-'a'+'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			code = append(code, c)
		default:
			code = append(code, '_')
		}
	}
	return string(code)
}
