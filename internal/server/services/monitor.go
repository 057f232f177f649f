package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/repomanager"
)

// Activity types reported by clients. Other values are recorded as given.
const (
	ActivityScreenshot     = "screenshot_attempt"
	ActivityScreenRecord   = "screen_recording"
	ActivityDevTools       = "devtools_open"
	ActivityFocusLost      = "focus_lost"
	ActivityCopyAttempt    = "copy_attempt"
	ActivityPrintAttempt   = "print_attempt"
	ActivityMultipleAccess = "multiple_access"
)

type ActivityReport struct {
	ContentID    string
	ActivityType string
	DeviceID     string
	IPAddress    string
	Description  string
}

type ActivityResult struct {
	// Count is the number of records inside the detection window,
	// including this one.
	Count      int
	Terminated bool
}

// ReportActivity records a suspicious event. When the item has
// auto-termination enabled and the number of records within the detection
// window reaches the threshold, the item is terminated and destroyed.
// Destruction failures are logged, not returned.
func (s *ShareService) ReportActivity(ctx context.Context, rep ActivityReport) (*ActivityResult, error) {
	if rep.ContentID == "" {
		return nil, common.Validationf("content id is required")
	}
	if rep.ActivityType == "" {
		return nil, common.Validationf("activity type is required")
	}

	var result ActivityResult
	var expired bool
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var c *models.Content
		var err error
		c, expired, err = s.lockActive(ctx, r, rep.ContentID)
		if err != nil {
			return err
		}

		now := s.now()
		err = r.Activities().Create(ctx, &models.SuspiciousActivity{
			ID:           uuid.NewString(),
			ContentID:    c.ID,
			ActivityType: rep.ActivityType,
			DeviceID:     rep.DeviceID,
			IPAddress:    rep.IPAddress,
			Description:  rep.Description,
			DetectedAt:   now,
		})
		if err != nil {
			return err
		}

		result.Count, err = r.Activities().CountSince(ctx, c.ID, now.Add(-s.policy.SuspiciousWindow))
		if err != nil {
			return err
		}
		if !c.AutoTerminate || result.Count < s.policy.SuspiciousThreshold {
			return nil
		}
		if !c.Transition(models.StatusTerminated, models.ReasonSuspicious, now) {
			return nil
		}
		result.Terminated = true
		return r.Contents().Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	s.log.Warn(ctx, "suspicious activity", "content_id", rep.ContentID, "type", rep.ActivityType, "count", result.Count)
	switch {
	case result.Terminated:
		s.log.Warn(ctx, "auto-terminating content", "content_id", rep.ContentID)
		s.destroyQuietly(context.WithoutCancel(ctx), rep.ContentID)
	case expired:
		s.scheduleDestroy(ctx, rep.ContentID)
	}
	return &result, nil
}
