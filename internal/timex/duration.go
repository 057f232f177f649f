// Package timex holds time helpers shared by configuration and API layers.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Duration wraps time.Duration for JSON. It decodes either a Go duration
// string ("15m", "5s") or an integer number of nanoseconds, and encodes as
// a duration string.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// FormatRemaining renders the time left until expiresAt the way the share
// status endpoint shows it: "No expiry", "Expired", "42s", "3m 5s", "2h 10m"
// or "4d 1h".
func FormatRemaining(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return "No expiry"
	}
	if now.After(*expiresAt) {
		return "Expired"
	}

	total := int(expiresAt.Sub(now).Seconds())
	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	case total < 86400:
		return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
	default:
		return fmt.Sprintf("%dd %dh", total/86400, (total%86400)/3600)
	}
}

// SecondsUntil returns whole seconds until expiresAt, or 0 when it is nil or past.
func SecondsUntil(expiresAt *time.Time, now time.Time) int {
	if expiresAt == nil || now.After(*expiresAt) {
		return 0
	}
	return int(expiresAt.Sub(now).Seconds())
}
