package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/credentials"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

const (
	generatedPinLength = 4
	generatedPinTries  = 10
)

// pinTaken reports whether an active credential already answers to pin.
func (s *ShareService) pinTaken(ctx context.Context, r repomanager.Repositories, pin string) (bool, error) {
	_, err := r.Pins().GetActiveByLookup(ctx, credentials.LookupKey(s.lookupKey, pin))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, err
	}
}

// choosePin returns requested when it is free, or a freshly generated PIN
// that no active credential uses. Generated PINs grow by one digit after
// every generatedPinTries collisions.
func (s *ShareService) choosePin(ctx context.Context, r repomanager.Repositories, requested string) (string, error) {
	if requested != "" {
		taken, err := s.pinTaken(ctx, r, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", common.ErrPinInUse
		}
		return requested, nil
	}

	for n := generatedPinLength; n <= credentials.MaxPinLength; n++ {
		for i := 0; i < generatedPinTries; i++ {
			pin, err := credentials.GeneratePin(n)
			if err != nil {
				return "", err
			}
			taken, err := s.pinTaken(ctx, r, pin)
			if err != nil {
				return "", err
			}
			if !taken {
				return pin, nil
			}
		}
	}
	return "", common.ErrPinInUse
}

// RotatePinRequest replaces the PIN of an active item. An empty NewPin asks
// the server to generate one.
type RotatePinRequest struct {
	ContentID  string
	CurrentPin string
	NewPin     string
}

type RotatePinResult struct {
	Pin            string
	NextRotationAt *time.Time
}

// RotatePin swaps the PIN digest of an item without touching its id or
// status. Sessions admitted under the old PIN keep working.
func (s *ShareService) RotatePin(ctx context.Context, req RotatePinRequest) (*RotatePinResult, error) {
	if err := credentials.ValidatePin(req.CurrentPin); err != nil {
		return nil, err
	}
	if req.NewPin != "" {
		if err := credentials.ValidatePin(req.NewPin); err != nil {
			return nil, err
		}
	}

	var result *RotatePinResult
	var outcome error
	var expired bool
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var c *models.Content
		var err error
		c, expired, err = s.lockActive(ctx, r, req.ContentID)
		if err != nil {
			return err
		}
		if expired || c.Status.Terminal() {
			outcome = gone(c)
			return nil
		}

		now := s.now()
		cred, err := r.Pins().GetByContentID(ctx, c.ID)
		if err != nil {
			return err
		}
		if verr := s.policy.Lockout.Verify(cred, req.CurrentPin, now); verr != nil {
			outcome = verr
			return r.Pins().Update(ctx, cred)
		}

		pin, err := s.choosePin(ctx, r, req.NewPin)
		if errors.Is(err, common.ErrPinInUse) {
			outcome = err
			return r.Pins().Update(ctx, cred)
		}
		if err != nil {
			return err
		}
		applyPin(cred, pin, credentials.LookupKey(s.lookupKey, pin), now)
		if err := r.Pins().Update(ctx, cred); err != nil {
			return err
		}
		result = &RotatePinResult{Pin: pin, NextRotationAt: cred.NextRotationAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		s.scheduleDestroy(ctx, req.ContentID)
	}
	if outcome != nil {
		return nil, outcome
	}

	s.log.Info(ctx, "pin rotated", "content_id", req.ContentID)
	return result, nil
}

func applyPin(cred *models.PinCredential, pin, lookupKey string, now time.Time) {
	cred.PinHash = credentials.HashPin(pin)
	cred.LookupKey = lookupKey
	cred.FailedAttempts = 0
	cred.LockedUntil = nil
	if cred.RotationInterval > 0 {
		next := now.Add(cred.RotationInterval)
		cred.NextRotationAt = &next
	}
}
