package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/cryptox"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

// Device describes the caller of an access request. The fingerprint is
// taken as given, derived from Info, or falls back to ID, in that order.
type Device struct {
	ID          string
	Fingerprint string
	Info        map[string]any
	IPAddress   string
	UserAgent   string
}

func (d Device) fingerprint() (string, error) {
	switch {
	case d.Fingerprint != "":
		return d.Fingerprint, nil
	case len(d.Info) > 0:
		return cryptox.DeviceFingerprint(d.Info)
	case d.ID != "":
		return d.ID, nil
	default:
		return "", common.Validationf("device fingerprint is required")
	}
}

// admit returns the session of fingerprint on c, creating one when the
// device is new. A new device consumes one unit of the item's device quota.
func admit(ctx context.Context, r repomanager.Repositories, c *models.Content, fingerprint string, d Device, now time.Time) (*models.AccessSession, error) {
	sess, err := r.Sessions().GetByDevice(ctx, c.ID, fingerprint)
	switch {
	case err == nil && sess.IsActive:
		return sess, nil
	case err == nil:
		// a deactivated session has to be admitted again
		if c.CurrentDevices >= c.MaxDevices {
			return nil, common.ErrDeviceLimitReached
		}
		c.CurrentDevices++
		sess.IsActive = true
		sess.StartedAt = now
		return sess, nil
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	if c.CurrentDevices >= c.MaxDevices {
		return nil, common.ErrDeviceLimitReached
	}
	c.CurrentDevices++

	sess = &models.AccessSession{
		ID:                uuid.NewString(),
		ContentID:         c.ID,
		DeviceID:          d.ID,
		DeviceFingerprint: fingerprint,
		StartedAt:         now,
		LastActivity:      now,
		IsActive:          true,
		IPAddress:         d.IPAddress,
		UserAgent:         d.UserAgent,
	}
	if err := r.Sessions().Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// viewsRemaining is what the recipient may still expect: nothing once a
// one-time item was viewed, otherwise the unused device quota.
func viewsRemaining(c *models.Content) int {
	if c.AccessMode == models.AccessModeOneTime {
		if c.Status == models.StatusActive {
			return 1
		}
		return 0
	}
	return max(0, c.MaxDevices-c.CurrentDevices)
}
