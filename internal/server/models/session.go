package models

import "time"

// AccessSession is one admitted device of a content item.
type AccessSession struct {
	ID                string
	ContentID         string
	DeviceID          string
	DeviceFingerprint string
	SessionToken      string
	StartedAt         time.Time
	LastActivity      time.Time
	ViewCount         int
	IsActive          bool
	IPAddress         string
	UserAgent         string
}
