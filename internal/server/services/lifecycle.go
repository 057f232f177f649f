package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

// expireIfDue moves an active item past its expiry into StatusExpired and
// reports whether it did. Every operation calls it before any other check.
func expireIfDue(c *models.Content, now time.Time) bool {
	if c.Status != models.StatusActive || !c.IsExpired(now) {
		return false
	}
	return c.Transition(models.StatusExpired, models.ReasonExpired, now)
}

func gone(c *models.Content) error {
	return &common.GoneError{Status: string(c.Status)}
}

// lockActive loads and locks contentID, applying lazy expiry. A lazily
// expired item is persisted and reported through expired so the caller can
// commit before returning the Gone error.
func (s *ShareService) lockActive(ctx context.Context, r repomanager.Repositories, contentID string) (c *models.Content, expired bool, err error) {
	c, err = r.Contents().GetForUpdate(ctx, contentID)
	if err != nil {
		return nil, false, err
	}
	if expireIfDue(c, s.now()) {
		if err := r.Contents().Update(ctx, c); err != nil {
			return nil, false, err
		}
		return c, true, nil
	}
	return c, false, nil
}

// destroyLocked issues the certificate and removes the rows of c. The caller
// holds the row lock on c, c is already terminal, and the caller deletes the
// blob with dropBlob once the transaction has committed.
func (s *ShareService) destroyLocked(ctx context.Context, r repomanager.Repositories, c *models.Content, now time.Time) (*models.DestructionCertificate, error) {
	cert := s.certifier.Issue(c, c.DestructionReason(), now)
	if err := r.Certificates().Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	if err := r.Activities().DeleteByContentID(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := r.Sessions().DeleteByContentID(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := r.Pins().DeleteByContentID(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := r.Contents().Delete(ctx, c.ID); err != nil {
		return nil, err
	}
	return cert, nil
}

// dropBlob removes the ciphertext of an item whose rows are already gone.
// A failure leaves an orphaned blob behind and is only logged.
func (s *ShareService) dropBlob(ctx context.Context, contentID, blobKey string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), blobKey); err != nil {
		s.log.Error(ctx, "orphaned blob", "content_id", contentID, "blob_key", blobKey, "error", err)
	}
}

// destroy certifies and removes a terminal item. An active item is left
// alone and common.ErrorNotFound means someone else already destroyed it.
func (s *ShareService) destroy(ctx context.Context, contentID string) (*models.DestructionCertificate, error) {
	var cert *models.DestructionCertificate
	var blobKey string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		c, err := r.Contents().GetForUpdate(ctx, contentID)
		if err != nil {
			return err
		}
		now := s.now()
		expireIfDue(c, now)
		if !c.Status.Terminal() {
			return nil
		}
		blobKey = c.BlobKey
		cert, err = s.destroyLocked(ctx, r, c, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if cert != nil {
		s.dropBlob(ctx, contentID, blobKey)
		s.log.Info(ctx, "content destroyed", "content_id", contentID, "reason", cert.Reason, "certificate_id", cert.ID)
	}
	return cert, nil
}

// destroyQuietly runs destroy and only logs failures; the sweeper retries.
func (s *ShareService) destroyQuietly(ctx context.Context, contentID string) {
	if _, err := s.destroy(ctx, contentID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.log.Error(ctx, "destroy failed", "content_id", contentID, "error", err)
	}
}

// scheduleDestroy destroys contentID once the one-time grace period elapses.
// A zero grace period destroys inline.
func (s *ShareService) scheduleDestroy(ctx context.Context, contentID string) {
	delay := s.policy.OneTimeGracePeriod
	if delay <= 0 {
		s.destroyQuietly(context.WithoutCancel(ctx), contentID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, ok := s.timers[contentID]; ok {
		return
	}
	s.pending.Add(1)
	s.timers[contentID] = time.AfterFunc(delay, func() {
		defer s.pending.Done()
		s.mu.Lock()
		delete(s.timers, contentID)
		s.mu.Unlock()
		s.destroyQuietly(context.Background(), contentID)
	})
}

// Terminate lets the PIN holder end an item at once. The item is destroyed
// synchronously and the certificate returned. A wrong PIN is charged against
// the credential like any other failed attempt.
func (s *ShareService) Terminate(ctx context.Context, contentID, pin string) (*models.DestructionCertificate, error) {
	if err := credentials.ValidatePin(pin); err != nil {
		return nil, err
	}

	var cert *models.DestructionCertificate
	var outcome error
	var blobKey string
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		c, err := r.Contents().GetForUpdate(ctx, contentID)
		if err != nil {
			return err
		}
		now := s.now()
		expireIfDue(c, now)

		cred, err := r.Pins().GetByContentID(ctx, contentID)
		if err != nil {
			return err
		}
		if verr := s.policy.Lockout.Verify(cred, pin, now); verr != nil {
			outcome = verr
			return r.Pins().Update(ctx, cred)
		}

		c.Transition(models.StatusTerminated, models.ReasonTerminated, now)
		blobKey = c.BlobKey
		cert, err = s.destroyLocked(ctx, r, c, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}
	s.dropBlob(ctx, contentID, blobKey)

	s.log.Info(ctx, "content terminated", "content_id", contentID, "reason", cert.Reason, "certificate_id", cert.ID)
	return cert, nil
}
