package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://share.example/s/abc", ShareURL("https://share.example/", "abc"))
	assert.Equal(t, "http://localhost:8080/s/abc", ShareURL("http://localhost:8080", "abc"))
}

func TestShareQR_IsPNG(t *testing.T) {
	png, err := ShareQR("https://share.example", "abc", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}

func TestCertificatePDF(t *testing.T) {
	cert := &models.DestructionCertificate{
		ID:          "cert-1",
		ContentID:   "c-1",
		Reason:      models.ReasonSuspicious,
		DestroyedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ProofHash:   "8f434346648f6b96df89dda901c5176b10a6d83961dd3c1ac88b59b2dc327aa4",
		Signature:   "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	}

	for _, verified := range []bool{true, false} {
		out, err := CertificatePDF(cert, verified)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	}
}
