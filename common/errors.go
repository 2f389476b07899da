package common

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError by the failure domain the caller has to
// react to.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindStorage       Kind = "storage"
	KindNotification  Kind = "notification"
)

// AppError is the error type carried across component boundaries. It keeps
// the operator-facing message separate from the wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, err error) *AppError {
	return NewAppError(KindValidation, message, err)
}

func NewConfigurationError(message string, err error) *AppError {
	return NewAppError(KindConfiguration, message, err)
}

func NewStorageError(message string, err error) *AppError {
	return NewAppError(KindStorage, message, err)
}

func NewNotificationError(message string, err error) *AppError {
	return NewAppError(KindNotification, message, err)
}

// IsKind reports whether err is, or wraps, an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
