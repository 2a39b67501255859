package redkv

import (
	"errors"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is matched (errors.Is) by every error of KindNotFound.
var ErrNotFound = errors.New("redkv: not found")

// ErrInvalidTTL rejects positive TTLs below the server's 1ms resolution.
var ErrInvalidTTL = errors.New("ttl below 1ms")

// Kind classifies a failed operation.
type Kind uint8

const (
	// KindConnection covers malformed URLs, dial/handshake failures, I/O errors,
	// closed clients and context cancellation.
	KindConnection Kind = iota + 1
	// KindProtocol is an error reply from the server.
	KindProtocol
	// KindDecode is a reply that cannot be read as the requested shape,
	// e.g. GET on a key holding a hash (WRONGTYPE).
	KindDecode
	// KindNotFound is a missing key or hash field.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindProtocol:
		return "protocol"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is returned by every Handle operation that fails.
type Error struct {
	Op   string // "connect", "ping", "set", "expire", "pexpire", "get", "hset", "hget", "hgetall", "hdel"
	Key  string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("redkv: %s: %s error: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("redkv: %s %q: %s error: %v", e.Op, e.Key, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// KindOf reports the Kind of err, or 0 if err is nil or did not come from redkv.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound is shorthand for errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func newError(op, key string, err error) *Error {
	return &Error{Op: op, Key: key, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	if errors.Is(err, goredis.Nil) {
		return KindNotFound
	}
	var rerr goredis.Error
	if errors.As(err, &rerr) {
		if strings.HasPrefix(rerr.Error(), "WRONGTYPE") {
			return KindDecode
		}
		return KindProtocol
	}
	return KindConnection
}
