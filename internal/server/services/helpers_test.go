package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureshare/internal/server/blobstore"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/secureshare/internal/server/secrets"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	svc   *ShareService
	rm    repomanager.RepositoryManager
	blobs *blobstore.MemoryStore
	clock *fakeClock
}

func testKeys() secrets.Keys {
	return secrets.Keys{
		Certificate: []byte("certificate-key-0123456789abcdef"),
		Session:     []byte("session-key-0123456789abcdef0123"),
		PinLookup:   []byte("pin-lookup-key-0123456789abcdef0"),
	}
}

// newFixture builds a service over in-memory stores. The one-time grace
// period defaults to an hour so terminal items stay observable until a sweep.
func newFixture(t *testing.T, tweak ...func(*Policy)) *fixture {
	t.Helper()
	p := DefaultPolicy()
	p.OneTimeGracePeriod = time.Hour
	for _, fn := range tweak {
		fn(&p)
	}
	return newFixtureWith(t, repomanager.NewMemoryRepositoryManager(), p)
}

func newFixtureWith(t *testing.T, rm repomanager.RepositoryManager, p Policy) *fixture {
	t.Helper()
	f := &fixture{rm: rm, blobs: blobstore.NewMemoryStore(), clock: newFakeClock()}
	f.svc = NewShareService(rm, f.blobs, testKeys(), p, WithClock(f.clock.Now))
	t.Cleanup(f.svc.Shutdown)
	return f
}

func (f *fixture) upload(t *testing.T, req UploadRequest) *UploadResult {
	t.Helper()
	if req.Ciphertext == nil {
		req.Ciphertext = []byte("ciphertext")
	}
	if req.IV == "" {
		req.IV = "00112233445566778899aabb"
	}
	if req.KeyHash == "" {
		req.KeyHash = "keyhash"
	}
	res, err := f.svc.Upload(context.Background(), req)
	require.NoError(t, err)
	return res
}

func (f *fixture) access(contentID, pin, device string) (*AccessResult, error) {
	return f.svc.Access(context.Background(), AccessRequest{
		ContentID: contentID,
		Pin:       pin,
		Device:    Device{Fingerprint: device},
	})
}

func (f *fixture) content(t *testing.T, id string) *models.Content {
	t.Helper()
	var c *models.Content
	err := f.rm.WithTx(context.Background(), func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		c, err = r.Contents().Get(ctx, id)
		return err
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) credential(t *testing.T, contentID string) *models.PinCredential {
	t.Helper()
	var p *models.PinCredential
	err := f.rm.WithTx(context.Background(), func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		p, err = r.Pins().GetByContentID(ctx, contentID)
		return err
	})
	require.NoError(t, err)
	return p
}

// wrongPin returns a PIN of the same length that differs from pin.
func wrongPin(pin string) string {
	b := []byte(pin)
	b[0] = '0' + (b[0]-'0'+1)%10
	return string(b)
}
