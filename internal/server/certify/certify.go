// Package certify issues and verifies destruction certificates.
package certify

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

// Certifier signs certificates with a symmetric server secret; only a holder
// of that secret can verify them.
type Certifier struct {
	secret []byte
}

func New(secret []byte) *Certifier {
	s := make([]byte, len(secret))
	copy(s, secret)
	return &Certifier{secret: s}
}

// Issue builds the certificate for content destroyed at destroyedAt.
// Timestamps are truncated to microseconds so they survive a round-trip
// through PostgreSQL timestamptz unchanged.
func (c *Certifier) Issue(content *models.Content, reason models.DestructionReason, destroyedAt time.Time) *models.DestructionCertificate {
	ts := destroyedAt.UTC().Truncate(time.Microsecond)
	proof := ProofHash(content.ID, reason, ts)

	return &models.DestructionCertificate{
		ID:          uuid.NewString(),
		ContentID:   content.ID,
		Reason:      reason,
		DestroyedAt: ts,
		ProofHash:   proof,
		Signature:   c.sign(proof),
		Metadata: models.CertificateMetadata{
			ContentType: content.ContentType,
			AccessMode:  content.AccessMode,
			ViewsCount:  content.ViewsCount,
			Devices:     content.CurrentDevices,
			FileSize:    content.FileSize,
			CreatedAt:   content.CreatedAt.UTC(),
		},
	}
}

// Verify recomputes the proof hash and signature of cert.
func (c *Certifier) Verify(cert *models.DestructionCertificate) bool {
	proof := ProofHash(cert.ContentID, cert.Reason, cert.DestroyedAt)
	if subtle.ConstantTimeCompare([]byte(proof), []byte(cert.ProofHash)) != 1 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.sign(proof)), []byte(cert.Signature)) == 1
}

// ProofHash is hex SHA-256 of "contentID:reason:timestamp".
func ProofHash(contentID string, reason models.DestructionReason, ts time.Time) string {
	data := contentID + ":" + string(reason) + ":" + ts.UTC().Format(time.RFC3339Nano)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func (c *Certifier) sign(proof string) string {
	sum := sha256.Sum256([]byte(proof + ":" + string(c.secret)))
	return hex.EncodeToString(sum[:])
}
