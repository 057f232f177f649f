package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/auth"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/secureshare/internal/timex"
)

// AccessRequest opens an item either by its id and PIN or by PIN alone.
type AccessRequest struct {
	ContentID         string
	Pin               string
	Device            Device
	BiometricVerified bool
}

type AccessResult struct {
	// Content is the item as committed by this access.
	Content        *models.Content
	Ciphertext     []byte
	SessionID      string
	SessionToken   string
	ViewsRemaining int
}

// resolve finds the id of the item a PIN-only request refers to. A PIN that
// matches no active credential is reported as not found.
func (s *ShareService) resolve(ctx context.Context, r repomanager.Repositories, req *AccessRequest) (string, error) {
	if req.ContentID != "" {
		return req.ContentID, nil
	}
	cred, err := r.Pins().GetActiveByLookup(ctx, credentials.LookupKey(s.lookupKey, req.Pin))
	if err != nil {
		return "", err
	}
	return cred.ContentID, nil
}

// Access verifies the PIN, admits the device and returns the ciphertext.
// The order of checks is fixed: lazy expiry, status, PIN, biometric flag,
// device quota. Expiry and failed PIN attempts are committed even though
// the call fails, and so is the counter reset of a correct PIN when the
// biometric flag or the device quota turns the request away.
func (s *ShareService) Access(ctx context.Context, req AccessRequest) (*AccessResult, error) {
	if err := credentials.ValidatePin(req.Pin); err != nil {
		return nil, err
	}
	fingerprint, err := req.Device.fingerprint()
	if err != nil {
		return nil, err
	}

	var result *AccessResult
	var outcome error
	var contentID string
	var expired, consumed bool
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		if contentID, err = s.resolve(ctx, r, &req); err != nil {
			return err
		}

		var c *models.Content
		c, expired, err = s.lockActive(ctx, r, contentID)
		if err != nil {
			return err
		}
		if expired {
			outcome = gone(c)
			return nil
		}
		if c.Status.Terminal() {
			return gone(c)
		}

		now := s.now()
		cred, err := r.Pins().GetByContentID(ctx, c.ID)
		if err != nil {
			return err
		}
		if verr := s.policy.Lockout.Verify(cred, req.Pin, now); verr != nil {
			outcome = verr
			return r.Pins().Update(ctx, cred)
		}
		if err := r.Pins().Update(ctx, cred); err != nil {
			return err
		}

		// denials from here on still commit the credential reset
		if c.RequireBiometric && !req.BiometricVerified {
			outcome = common.ErrBiometricRequired
			return nil
		}

		sess, err := admit(ctx, r, c, fingerprint, req.Device, now)
		if errors.Is(err, common.ErrDeviceLimitReached) {
			outcome = err
			return nil
		}
		if err != nil {
			return err
		}
		token, err := auth.GenerateSessionToken(sess.ID, c.ID, fingerprint, s.sessionKey, now, s.policy.SessionTokenTTL)
		if err != nil {
			return err
		}
		sess.SessionToken = token
		sess.ViewCount++
		sess.LastActivity = now
		if req.Device.IPAddress != "" {
			sess.IPAddress = req.Device.IPAddress
		}
		if req.Device.UserAgent != "" {
			sess.UserAgent = req.Device.UserAgent
		}
		if err := r.Sessions().Update(ctx, sess); err != nil {
			return err
		}

		c.ViewsCount++
		c.LastAccessedAt = &now
		if c.AccessMode == models.AccessModeOneTime {
			consumed = c.Transition(models.StatusViewed, models.ReasonViewed, now)
		}
		if err := r.Contents().Update(ctx, c); err != nil {
			return err
		}

		data, err := s.blobs.Get(ctx, c.BlobKey)
		if err != nil {
			return err
		}

		result = &AccessResult{
			Content:        c,
			Ciphertext:     data,
			SessionID:      sess.ID,
			SessionToken:   token,
			ViewsRemaining: viewsRemaining(c),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		s.scheduleDestroy(ctx, contentID)
	}
	if outcome != nil {
		return nil, outcome
	}

	s.log.Info(ctx, "content accessed", "content_id", result.Content.ID, "session_id", result.SessionID, "views", result.Content.ViewsCount)
	if consumed {
		s.scheduleDestroy(ctx, result.Content.ID)
	}
	return result, nil
}

type StreamResult struct {
	Content    *models.Content
	Ciphertext []byte
}

// Stream hands the ciphertext to a device that already holds a session
// token for contentID. It does not count as a new admission.
func (s *ShareService) Stream(ctx context.Context, contentID, token string) (*StreamResult, error) {
	claims, err := auth.ParseSessionToken(token, s.sessionKey, s.now())
	if err != nil {
		return nil, err
	}
	if claims.Subject != contentID {
		return nil, common.ErrInvalidToken
	}

	var result *StreamResult
	var outcome error
	var expired bool
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var c *models.Content
		var err error
		c, expired, err = s.lockActive(ctx, r, contentID)
		if err != nil {
			return err
		}
		if expired {
			outcome = gone(c)
			return nil
		}
		if c.Status.Terminal() {
			return gone(c)
		}

		sess, err := r.Sessions().GetByID(ctx, claims.ID)
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		if err != nil {
			return err
		}
		if sess.ContentID != c.ID || !sess.IsActive || sess.SessionToken != token {
			return common.ErrInvalidToken
		}

		now := s.now()
		sess.ViewCount++
		sess.LastActivity = now
		if err := r.Sessions().Update(ctx, sess); err != nil {
			return err
		}

		data, err := s.blobs.Get(ctx, c.BlobKey)
		if err != nil {
			return err
		}
		result = &StreamResult{Content: c, Ciphertext: data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		s.scheduleDestroy(ctx, contentID)
	}
	if outcome != nil {
		return nil, outcome
	}
	return result, nil
}

type StatusResult struct {
	Content          *models.Content
	TimeRemaining    string
	SecondsRemaining int
	ViewsRemaining   int
}

// Status reports the lifecycle view of an item without a PIN. Lazy expiry
// applies, so an overdue item is reported as expired.
func (s *ShareService) Status(ctx context.Context, contentID string) (*StatusResult, error) {
	var c *models.Content
	var expired bool
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		c, expired, err = s.lockActive(ctx, r, contentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if expired {
		s.scheduleDestroy(ctx, contentID)
	}

	now := s.now()
	return &StatusResult{
		Content:          c,
		TimeRemaining:    timex.FormatRemaining(c.ExpiresAt, now),
		SecondsRemaining: timex.SecondsUntil(c.ExpiresAt, now),
		ViewsRemaining:   viewsRemaining(c),
	}, nil
}
