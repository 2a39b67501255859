package redkv

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is the operation set of a Handle. Depend on it when you want to swap
// the Handle for a fake in tests.
type Cache interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	// Strings
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)

	// Hashes
	HSetField(ctx context.Context, key, field, value string) error
	HGetField(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDelField(ctx context.Context, key, field string) error
}

var _ Cache = (*Handle)(nil)

// Options configure a Handle. One of URL or Client is required.
type Options struct {
	// Namespace is a label carried by the handle and its log lines.
	// Keys are sent to the server unchanged.
	Namespace string

	// URL is parsed with redis.ParseURL: redis://, rediss:// or unix://.
	// Transport tuning goes in the query string, e.g. ?dial_timeout=3s&pool_size=20.
	// Ignored when Client is set.
	URL string

	// Client is used as-is instead of dialing URL (single node, failover or cluster).
	Client      goredis.UniversalClient
	CloseClient bool // set true only if the handle exclusively owns Client

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// New builds a Handle from opts. It does not dial; use Ping to check reachability.
func New(opts Options) (*Handle, error) {
	return newHandle(opts)
}

// Connect parses url and returns a Handle that owns its client.
// It fails with a KindConnection error only when url is malformed.
func Connect(url, namespace string) (*Handle, error) {
	return newHandle(Options{URL: url, Namespace: namespace})
}
