package certify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

func testContent() *models.Content {
	return &models.Content{
		ID:             "c-1",
		ContentType:    "text",
		AccessMode:     models.AccessModeOneTime,
		ViewsCount:     1,
		CurrentDevices: 1,
		CreatedAt:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestIssueAndVerify(t *testing.T) {
	c := New([]byte("server-secret"))
	at := time.Date(2025, 3, 1, 10, 5, 0, 123456789, time.UTC)

	cert := c.Issue(testContent(), models.ReasonViewed, at)

	require.NotEmpty(t, cert.ID)
	assert.Equal(t, "c-1", cert.ContentID)
	assert.Equal(t, models.ReasonViewed, cert.Reason)
	assert.Equal(t, at.Truncate(time.Microsecond), cert.DestroyedAt)
	assert.Equal(t, ProofHash("c-1", models.ReasonViewed, cert.DestroyedAt), cert.ProofHash)
	assert.Equal(t, 1, cert.Metadata.ViewsCount)
	assert.Equal(t, models.AccessModeOneTime, cert.Metadata.AccessMode)
	assert.True(t, c.Verify(cert))
}

func TestVerify_DetectsTampering(t *testing.T) {
	c := New([]byte("server-secret"))
	at := time.Now()

	tests := []struct {
		name   string
		mutate func(*models.DestructionCertificate)
	}{
		{"reason", func(cert *models.DestructionCertificate) { cert.Reason = models.ReasonExpired }},
		{"content", func(cert *models.DestructionCertificate) { cert.ContentID = "c-2" }},
		{"time", func(cert *models.DestructionCertificate) { cert.DestroyedAt = cert.DestroyedAt.Add(time.Second) }},
		{"signature", func(cert *models.DestructionCertificate) { cert.Signature = "00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := c.Issue(testContent(), models.ReasonTerminated, at)
			tt.mutate(cert)
			assert.False(t, c.Verify(cert))
		})
	}
}

func TestVerify_OtherSecretFails(t *testing.T) {
	cert := New([]byte("a")).Issue(testContent(), models.ReasonSuspicious, time.Now())
	assert.False(t, New([]byte("b")).Verify(cert))
}
