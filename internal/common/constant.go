// Package common contains shared constants and sentinel errors used across
// SecureShare components.
package common

// SessionTokenHeaderName is the gRPC metadata key used to carry an access
// session token on stream requests.
const SessionTokenHeaderName = "session_token"

// Access modes as they travel on the wire.
const (
	AccessModeTimeBased = "time_based"
	AccessModeOneTime   = "one_time"
)
