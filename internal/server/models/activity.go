package models

import "time"

type SuspiciousActivity struct {
	ID           string
	ContentID    string
	ActivityType string
	DeviceID     string
	IPAddress    string
	Description  string
	DetectedAt   time.Time
}
