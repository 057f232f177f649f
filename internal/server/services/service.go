// Package services contains the server-side business logic. ShareService owns
// the lifecycle of shared content: upload, PIN-gated access with device
// admission, expiry, termination, suspicious-activity monitoring and
// certified destruction.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/logging"
	"github.com/dmitrijs2005/secureshare/internal/server/blobstore"
	"github.com/dmitrijs2005/secureshare/internal/server/certify"
	"github.com/dmitrijs2005/secureshare/internal/server/config"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/secureshare/internal/server/secrets"
)

// Policy is the immutable access policy the service enforces.
type Policy struct {
	MaxUploadSize       int64
	AllowedMimeTypes    map[string]struct{}
	DefaultDeviceLimit  int
	MaxDeviceLimit      int
	MaxDuration         time.Duration
	MaxPinRotation      time.Duration
	SuspiciousThreshold int
	SuspiciousWindow    time.Duration
	OneTimeGracePeriod  time.Duration
	SessionTokenTTL     time.Duration
	Lockout             credentials.Policy
}

// PolicyFromConfig copies the policy fields out of cfg.
func PolicyFromConfig(cfg *config.Config) Policy {
	allowed := make(map[string]struct{}, len(cfg.AllowedMimeTypes))
	for _, m := range cfg.AllowedMimeTypes {
		allowed[m] = struct{}{}
	}
	return Policy{
		MaxUploadSize:       cfg.MaxUploadSize,
		AllowedMimeTypes:    allowed,
		DefaultDeviceLimit:  cfg.DefaultDeviceLimit,
		MaxDeviceLimit:      cfg.MaxDeviceLimit,
		MaxDuration:         cfg.MaxDuration,
		MaxPinRotation:      cfg.MaxPinRotation,
		SuspiciousThreshold: cfg.SuspiciousThreshold,
		SuspiciousWindow:    cfg.SuspiciousWindow,
		OneTimeGracePeriod:  cfg.OneTimeGracePeriod,
		SessionTokenTTL:     cfg.SessionTokenTTL,
		Lockout: credentials.Policy{
			MaxAttempts:     cfg.MaxPinAttempts,
			LockoutDuration: cfg.PinLockoutDuration,
		},
	}
}

// DefaultPolicy is PolicyFromConfig applied to config defaults.
func DefaultPolicy() Policy {
	var cfg config.Config
	cfg.LoadDefaults()
	return PolicyFromConfig(&cfg)
}

type ShareService struct {
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	certifier   *certify.Certifier
	sessionKey  []byte
	lookupKey   []byte
	policy      Policy
	now         func() time.Time
	log         logging.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	closed  bool
}

type Option func(*ShareService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *ShareService) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *ShareService) { s.log = l.With("module", "share") }
}

func NewShareService(m repomanager.RepositoryManager, blobs blobstore.Store, keys secrets.Keys, policy Policy, opts ...Option) *ShareService {
	s := &ShareService{
		repomanager: m,
		blobs:       blobs,
		certifier:   certify.New(keys.Certificate),
		sessionKey:  keys.Session,
		lookupKey:   keys.PinLookup,
		policy:      policy,
		now:         time.Now,
		log:         logging.Nop{},
		timers:      map[string]*time.Timer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats aggregates item counts and the number of certificates issued.
func (s *ShareService) Stats(ctx context.Context) (*models.Stats, error) {
	var stats *models.Stats
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		if stats, err = r.Contents().Stats(ctx); err != nil {
			return err
		}
		stats.Certificates, err = r.Certificates().Count(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Certificate returns the destruction certificate of contentID and whether
// its signature verifies.
func (s *ShareService) Certificate(ctx context.Context, contentID string) (*models.DestructionCertificate, bool, error) {
	var cert *models.DestructionCertificate
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		cert, err = r.Certificates().GetByContentID(ctx, contentID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return cert, s.certifier.Verify(cert), nil
}

// Shutdown cancels pending grace-period destructions and waits for running
// ones. Items left terminal are picked up by the next sweep.
func (s *ShareService) Shutdown() {
	s.mu.Lock()
	s.closed = true
	for id, t := range s.timers {
		if t.Stop() {
			s.pending.Done()
		}
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.pending.Wait()
}
