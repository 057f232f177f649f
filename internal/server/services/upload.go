package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

// Content type labels shown to recipients.
const (
	ContentTypeText     = "text"
	ContentTypeImage    = "image"
	ContentTypePDF      = "pdf"
	ContentTypeVideo    = "video"
	ContentTypeAudio    = "audio"
	ContentTypeDocument = "document"
)

var contentTypes = map[string]struct{}{
	ContentTypeText:     {},
	ContentTypeImage:    {},
	ContentTypePDF:      {},
	ContentTypeVideo:    {},
	ContentTypeAudio:    {},
	ContentTypeDocument: {},
}

// ContentTypeFromMime maps a MIME type to a content type label.
func ContentTypeFromMime(mime string) string {
	switch {
	case strings.HasPrefix(mime, "text/"):
		return ContentTypeText
	case strings.HasPrefix(mime, "image/"):
		return ContentTypeImage
	case mime == "application/pdf":
		return ContentTypePDF
	case strings.HasPrefix(mime, "video/"):
		return ContentTypeVideo
	case strings.HasPrefix(mime, "audio/"):
		return ContentTypeAudio
	default:
		return ContentTypeDocument
	}
}

// UploadRequest carries ciphertext produced by the client plus the access
// policy. Zero values select defaults; nil booleans default to true.
type UploadRequest struct {
	Ciphertext []byte
	IV         string
	KeyHash    string
	Pin        string

	AccessMode      models.AccessMode
	DurationMinutes int
	DeviceLimit     int

	ContentType string
	FileName    string
	MimeType    string

	AutoTerminate        *bool
	RequireBiometric     bool
	DynamicPin           bool
	PinRotationMinutes   int
	ScreenshotProtection *bool
	Watermarking         bool
}

type UploadResult struct {
	Content *models.Content
	// Pin is the plaintext PIN, returned exactly once.
	Pin string
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// validate normalises req in place.
func (s *ShareService) validate(req *UploadRequest) error {
	if len(req.Ciphertext) == 0 {
		return common.Validationf("encrypted content is required")
	}
	if s.policy.MaxUploadSize > 0 && int64(len(req.Ciphertext)) > s.policy.MaxUploadSize {
		return common.ErrPayloadTooLarge
	}
	if req.IV == "" {
		return common.Validationf("iv is required")
	}
	if req.KeyHash == "" {
		return common.Validationf("key hash is required")
	}
	if req.Pin != "" {
		if err := credentials.ValidatePin(req.Pin); err != nil {
			return err
		}
	}

	if req.AccessMode == "" {
		req.AccessMode = models.AccessModeTimeBased
	}
	if !req.AccessMode.Valid() {
		return common.Validationf("unknown access mode %q", req.AccessMode)
	}

	if req.MimeType != "" && len(s.policy.AllowedMimeTypes) > 0 {
		if _, ok := s.policy.AllowedMimeTypes[req.MimeType]; !ok {
			return common.ErrUnsupportedType
		}
	}
	if req.ContentType == "" {
		req.ContentType = ContentTypeFromMime(req.MimeType)
	}
	if _, ok := contentTypes[req.ContentType]; !ok {
		return common.Validationf("unknown content type %q", req.ContentType)
	}

	maxMinutes := int(s.policy.MaxDuration / time.Minute)
	if req.DurationMinutes < 0 || (maxMinutes > 0 && req.DurationMinutes > maxMinutes) {
		return common.Validationf("duration must be between 1 and %d minutes", maxMinutes)
	}

	if req.DeviceLimit == 0 {
		req.DeviceLimit = s.policy.DefaultDeviceLimit
	}
	if req.DeviceLimit < 1 || req.DeviceLimit > s.policy.MaxDeviceLimit {
		return common.Validationf("device limit must be between 1 and %d", s.policy.MaxDeviceLimit)
	}

	if req.DynamicPin {
		maxRotation := int(s.policy.MaxPinRotation / time.Minute)
		if req.PinRotationMinutes < 1 || req.PinRotationMinutes > maxRotation {
			return common.Validationf("pin rotation must be between 1 and %d minutes", maxRotation)
		}
	} else {
		req.PinRotationMinutes = 0
	}
	return nil
}

// Upload stores the ciphertext and registers the item with its PIN. The blob
// is written first and removed again if the records cannot be committed.
func (s *ShareService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	now := s.now()
	c := &models.Content{
		ID:                   uuid.NewString(),
		KeyHash:              req.KeyHash,
		IV:                   req.IV,
		BlobKey:              uuid.NewString(),
		ContentType:          req.ContentType,
		FileName:             req.FileName,
		FileSize:             int64(len(req.Ciphertext)),
		MimeType:             req.MimeType,
		AccessMode:           req.AccessMode,
		CreatedAt:            now,
		MaxDevices:           req.DeviceLimit,
		AutoTerminate:        boolOr(req.AutoTerminate, true),
		RequireBiometric:     req.RequireBiometric,
		DynamicPin:           req.DynamicPin,
		PinRotationMinutes:   req.PinRotationMinutes,
		ScreenshotProtection: boolOr(req.ScreenshotProtection, true),
		Watermarking:         req.Watermarking,
		Status:               models.StatusActive,
	}
	if c.AccessMode == models.AccessModeTimeBased && req.DurationMinutes > 0 {
		exp := now.Add(time.Duration(req.DurationMinutes) * time.Minute)
		c.ExpiresAt = &exp
	}

	if err := s.blobs.Put(ctx, c.BlobKey, req.Ciphertext); err != nil {
		return nil, err
	}

	var pin string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		if pin, err = s.choosePin(ctx, r, req.Pin); err != nil {
			return err
		}
		if err := r.Contents().Create(ctx, c); err != nil {
			return err
		}

		cred := &models.PinCredential{
			ID:        uuid.NewString(),
			ContentID: c.ID,
			IsActive:  true,
			CreatedAt: now,
		}
		if c.DynamicPin {
			cred.RotationInterval = time.Duration(c.PinRotationMinutes) * time.Minute
		}
		applyPin(cred, pin, credentials.LookupKey(s.lookupKey, pin), now)
		return r.Pins().Create(ctx, cred)
	})
	if err != nil {
		if derr := s.blobs.Delete(context.WithoutCancel(ctx), c.BlobKey); derr != nil {
			s.log.Error(ctx, "orphaned blob", "blob_key", c.BlobKey, "error", derr)
		}
		return nil, err
	}

	s.log.Info(ctx, "content uploaded", "content_id", c.ID, "access_mode", c.AccessMode, "size", c.FileSize)
	return &UploadResult{Content: c, Pin: pin}, nil
}
