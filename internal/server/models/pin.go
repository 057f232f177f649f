package models

import "time"

// PinCredential guards access to exactly one content item. Only the PBKDF2
// digest and a keyed lookup hash of the PIN are stored.
type PinCredential struct {
	ID             string
	ContentID      string
	PinHash        string
	LookupKey      string
	IsActive       bool
	FailedAttempts int
	LockedUntil    *time.Time
	CreatedAt      time.Time

	// Rotation policy; zero values mean no schedule.
	NextRotationAt   *time.Time
	RotationInterval time.Duration
}

// IsLocked is a pure function of LockedUntil and now.
func (p *PinCredential) IsLocked(now time.Time) bool {
	return p.LockedUntil != nil && now.Before(*p.LockedUntil)
}
