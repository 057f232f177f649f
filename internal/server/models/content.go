// Package models holds the server-side domain types persisted by the
// repositories.
package models

import "time"

type AccessMode string

const (
	AccessModeTimeBased AccessMode = "time_based"
	AccessModeOneTime   AccessMode = "one_time"
)

func (m AccessMode) Valid() bool {
	return m == AccessModeTimeBased || m == AccessModeOneTime
}

// ContentStatus is the lifecycle state of a content item. Every status other
// than StatusActive is terminal.
type ContentStatus string

const (
	StatusActive     ContentStatus = "active"
	StatusExpired    ContentStatus = "expired"
	StatusViewed     ContentStatus = "viewed"
	StatusTerminated ContentStatus = "terminated"
)

func (s ContentStatus) Terminal() bool {
	return s != StatusActive
}

// DestructionReason is recorded on the destruction certificate.
type DestructionReason string

const (
	ReasonExpired    DestructionReason = "expired"
	ReasonViewed     DestructionReason = "viewed"
	ReasonTerminated DestructionReason = "terminated"
	ReasonSuspicious DestructionReason = "suspicious_activity"
)

// Content is the aggregate root of a shared item. The server never sees the
// plaintext or the key; KeyHash and IV are opaque strings supplied by the
// uploader and handed back to recipients.
type Content struct {
	ID      string
	KeyHash string
	IV      string
	BlobKey string

	ContentType string
	FileName    string
	FileSize    int64
	MimeType    string

	AccessMode     AccessMode
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	MaxDevices     int
	CurrentDevices int
	ViewsCount     int

	AutoTerminate        bool
	RequireBiometric     bool
	DynamicPin           bool
	PinRotationMinutes   int
	ScreenshotProtection bool
	Watermarking         bool

	Status            ContentStatus
	StatusChangedAt   *time.Time
	TerminationReason DestructionReason
	LastAccessedAt    *time.Time
}

// IsExpired reports whether the item's expiry lies strictly before now.
func (c *Content) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Transition moves an active item into a terminal status. It returns false
// when the item already left the active state, so only one caller ever
// claims the transition.
func (c *Content) Transition(to ContentStatus, reason DestructionReason, now time.Time) bool {
	if c.Status.Terminal() || !to.Terminal() {
		return false
	}
	c.Status = to
	c.TerminationReason = reason
	c.StatusChangedAt = &now
	return true
}

// DestructionReason picks the certificate reason for a terminal item.
func (c *Content) DestructionReason() DestructionReason {
	if c.TerminationReason != "" {
		return c.TerminationReason
	}
	switch c.Status {
	case StatusExpired:
		return ReasonExpired
	case StatusViewed:
		return ReasonViewed
	default:
		return ReasonTerminated
	}
}

// Stats is the aggregate returned by the stats endpoint.
type Stats struct {
	TotalContent     int
	ActiveContent    int
	TimeBasedContent int
	OneTimeContent   int
	TotalViews       int
	Certificates     int
}
