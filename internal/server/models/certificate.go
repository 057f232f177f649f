package models

import "time"

// DestructionCertificate is the only trace of a content item that survives
// its destruction.
type DestructionCertificate struct {
	ID          string
	ContentID   string
	Reason      DestructionReason
	DestroyedAt time.Time
	ProofHash   string
	Signature   string
	Metadata    CertificateMetadata
}

// CertificateMetadata is a non-sensitive snapshot of the destroyed item.
type CertificateMetadata struct {
	ContentType string     `json:"content_type"`
	AccessMode  AccessMode `json:"access_mode"`
	ViewsCount  int        `json:"views_count"`
	Devices     int        `json:"devices"`
	FileSize    int64      `json:"file_size"`
	CreatedAt   time.Time  `json:"created_at"`
}
