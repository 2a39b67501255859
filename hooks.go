package redkv

import "time"

// Hooks receives high-signal events from a Handle.
// Implementations MUST be cheap and non-blocking; they run on the caller's
// goroutine right after the failing command. Wrap with hooks/async otherwise.
type Hooks interface {
	// SET succeeded but the follow-up EXPIRE failed: the key now has no TTL.
	ExpireFailed(key string, ttl time.Duration, err error)

	// A command failed with a connection, protocol or decode error.
	// Not called for KindNotFound.
	CommandFailed(op, key string, kind Kind, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ExpireFailed(string, time.Duration, error) {}
func (NopHooks) CommandFailed(string, string, Kind, error) {}
