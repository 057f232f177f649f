// Package common defines shared constants and sentinel errors used across
// the SecureShare server and client. Callers should use errors.Is / errors.As
// to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Caller errors, detected before any state change.
	ErrValidation      = errors.New("validation error")
	ErrPayloadTooLarge = fmt.Errorf("%w: payload too large", ErrValidation)
	ErrUnsupportedType = fmt.Errorf("%w: unsupported content type", ErrValidation)

	// Credential errors.
	ErrInvalidPin = errors.New("invalid pin")
	ErrLocked     = errors.New("pin locked")

	// Lifecycle errors.
	ErrGone = errors.New("content gone")

	// Admission errors.
	ErrForbidden          = errors.New("forbidden")
	ErrDeviceLimitReached = fmt.Errorf("%w: device limit reached", ErrForbidden)
	ErrBiometricRequired  = fmt.Errorf("%w: biometric verification required", ErrForbidden)

	// Races and uniqueness.
	ErrConflict      = errors.New("conflict")
	ErrAlreadyViewed = fmt.Errorf("%w: content already viewed", ErrConflict)
	ErrPinInUse      = fmt.Errorf("%w: pin already in use", ErrConflict)

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
)

// Validationf returns an ErrValidation carrying a field-specific message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// GoneError reports that a content item left the active state.
// Status holds the terminal status observed (expired, viewed, terminated).
type GoneError struct {
	Status string
}

func (e *GoneError) Error() string {
	return fmt.Sprintf("content %s", e.Status)
}

func (e *GoneError) Unwrap() error { return ErrGone }

// Is lets a viewed one-time item also match ErrAlreadyViewed.
func (e *GoneError) Is(target error) bool {
	return target == ErrAlreadyViewed && e.Status == "viewed"
}

// LockedError reports an active credential lockout.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("pin locked until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *LockedError) Unwrap() error { return ErrLocked }
