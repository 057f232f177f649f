package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

func TestContentTypeFromMime(t *testing.T) {
	tests := map[string]string{
		"text/plain":         ContentTypeText,
		"image/png":          ContentTypeImage,
		"application/pdf":    ContentTypePDF,
		"video/mp4":          ContentTypeVideo,
		"audio/mpeg":         ContentTypeAudio,
		"application/msword": ContentTypeDocument,
		"":                   ContentTypeDocument,
	}
	for mime, want := range tests {
		assert.Equal(t, want, ContentTypeFromMime(mime), mime)
	}
}

func TestUpload_Validation(t *testing.T) {
	f := newFixture(t, func(p *Policy) { p.MaxUploadSize = 16 })

	valid := func() UploadRequest {
		return UploadRequest{Ciphertext: []byte("ct"), IV: "iv", KeyHash: "kh"}
	}

	tests := []struct {
		name   string
		mutate func(*UploadRequest)
		want   error
	}{
		{"no ciphertext", func(r *UploadRequest) { r.Ciphertext = nil }, common.ErrValidation},
		{"too large", func(r *UploadRequest) { r.Ciphertext = make([]byte, 17) }, common.ErrPayloadTooLarge},
		{"no iv", func(r *UploadRequest) { r.IV = "" }, common.ErrValidation},
		{"no key hash", func(r *UploadRequest) { r.KeyHash = "" }, common.ErrValidation},
		{"bad pin", func(r *UploadRequest) { r.Pin = "12a4" }, common.ErrValidation},
		{"short pin", func(r *UploadRequest) { r.Pin = "123" }, common.ErrValidation},
		{"bad mode", func(r *UploadRequest) { r.AccessMode = "forever" }, common.ErrValidation},
		{"mime not allowed", func(r *UploadRequest) { r.MimeType = "application/x-msdownload" }, common.ErrUnsupportedType},
		{"bad content type", func(r *UploadRequest) { r.ContentType = "binary" }, common.ErrValidation},
		{"negative duration", func(r *UploadRequest) { r.DurationMinutes = -1 }, common.ErrValidation},
		{"duration too long", func(r *UploadRequest) { r.DurationMinutes = 525601 }, common.ErrValidation},
		{"device limit too high", func(r *UploadRequest) { r.DeviceLimit = 11 }, common.ErrValidation},
		{"device limit negative", func(r *UploadRequest) { r.DeviceLimit = -1 }, common.ErrValidation},
		{"dynamic pin without rotation", func(r *UploadRequest) { r.DynamicPin = true }, common.ErrValidation},
		{"rotation too long", func(r *UploadRequest) { r.DynamicPin = true; r.PinRotationMinutes = 1441 }, common.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := f.svc.Upload(context.Background(), req)
			require.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, f.blobs.Len())
}

func TestUpload_Defaults(t *testing.T) {
	f := newFixture(t)

	res := f.upload(t, UploadRequest{MimeType: "image/png", DurationMinutes: 10})
	c := res.Content

	assert.Len(t, res.Pin, 4)
	assert.NoError(t, credentials.ValidatePin(res.Pin))
	assert.Equal(t, models.AccessModeTimeBased, c.AccessMode)
	assert.Equal(t, ContentTypeImage, c.ContentType)
	assert.Equal(t, 1, c.MaxDevices)
	assert.True(t, c.AutoTerminate)
	assert.True(t, c.ScreenshotProtection)
	assert.Equal(t, models.StatusActive, c.Status)
	require.NotNil(t, c.ExpiresAt)
	assert.Equal(t, f.clock.Now().Add(10*time.Minute), *c.ExpiresAt)
	assert.Equal(t, 1, f.blobs.Len())

	cred := f.credential(t, c.ID)
	assert.True(t, cred.IsActive)
	assert.True(t, credentials.VerifyPin(res.Pin, cred.PinHash))
	assert.Equal(t, credentials.LookupKey(testKeys().PinLookup, res.Pin), cred.LookupKey)
	assert.Nil(t, cred.NextRotationAt)
}

func TestUpload_OneTimeIgnoresDuration(t *testing.T) {
	f := newFixture(t)

	off := false
	res := f.upload(t, UploadRequest{
		AccessMode:      models.AccessModeOneTime,
		DurationMinutes: 5,
		AutoTerminate:   &off,
	})
	assert.Nil(t, res.Content.ExpiresAt)
	assert.False(t, res.Content.AutoTerminate)
	assert.Equal(t, ContentTypeDocument, res.Content.ContentType)
}

func TestUpload_DynamicPinSchedule(t *testing.T) {
	f := newFixture(t)

	res := f.upload(t, UploadRequest{DynamicPin: true, PinRotationMinutes: 30})
	cred := f.credential(t, res.Content.ID)
	assert.Equal(t, 30*time.Minute, cred.RotationInterval)
	require.NotNil(t, cred.NextRotationAt)
	assert.Equal(t, f.clock.Now().Add(30*time.Minute), *cred.NextRotationAt)
}

func TestUpload_ChosenPinInUse(t *testing.T) {
	f := newFixture(t)

	res := f.upload(t, UploadRequest{Pin: "482913"})
	assert.Equal(t, "482913", res.Pin)

	_, err := f.svc.Upload(context.Background(), UploadRequest{
		Ciphertext: []byte("ct"), IV: "iv", KeyHash: "kh", Pin: "482913",
	})
	require.ErrorIs(t, err, common.ErrPinInUse)
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, 1, f.blobs.Len(), "blob of the rejected upload must be removed")
}

type failingManager struct {
	repomanager.RepositoryManager
	err error
}

func (m failingManager) WithTx(context.Context, func(context.Context, repomanager.Repositories) error) error {
	return m.err
}

func TestUpload_TxFailureRemovesBlob(t *testing.T) {
	boom := errors.New("db down")
	f := newFixtureWith(t, failingManager{err: boom}, DefaultPolicy())

	_, err := f.svc.Upload(context.Background(), UploadRequest{Ciphertext: []byte("ct"), IV: "iv", KeyHash: "kh"})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, f.blobs.Len())
}
