package credentials

import (
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

const (
	DefaultMaxAttempts     = 3
	DefaultLockoutDuration = 15 * time.Minute
)

// Policy is the lockout configuration.
type Policy struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, LockoutDuration: DefaultLockoutDuration}
}

// Verify checks pin against cred and mutates the attempt counters in place.
// The caller persists cred whatever the outcome, including on ErrInvalidPin.
//
// Returns a *common.LockedError while the lock holds, common.ErrInvalidPin on
// mismatch or inactive credential, nil on success.
func (p Policy) Verify(cred *models.PinCredential, pin string, now time.Time) error {
	if cred.IsLocked(now) {
		return &common.LockedError{Until: *cred.LockedUntil}
	}
	if cred.LockedUntil != nil {
		// lock elapsed: start a fresh window
		cred.LockedUntil = nil
		cred.FailedAttempts = 0
	}

	if !cred.IsActive || !VerifyPin(pin, cred.PinHash) {
		p.registerFailure(cred, now)
		return common.ErrInvalidPin
	}

	cred.FailedAttempts = 0
	cred.LockedUntil = nil
	return nil
}

func (p Policy) registerFailure(cred *models.PinCredential, now time.Time) {
	cred.FailedAttempts++
	if cred.FailedAttempts >= p.MaxAttempts {
		until := now.Add(p.LockoutDuration)
		cred.LockedUntil = &until
	}
}
