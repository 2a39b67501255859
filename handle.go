package redkv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var errNoTarget = errors.New("url or client is required")

// Handle is a configured connection to a Redis server.
// Its fields never change after construction, so it is safe for concurrent use;
// the client's pool hands each command its own connection.
type Handle struct {
	ns          string
	addr        string
	rdb         goredis.UniversalClient
	closeClient bool
	log         Logger
	hooks       Hooks
}

func newHandle(opts Options) (*Handle, error) {
	h := &Handle{ns: opts.Namespace}

	h.log = coalesce[Logger](opts.Logger, NopLogger{})
	h.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	switch {
	case opts.Client != nil:
		h.rdb = opts.Client
		h.closeClient = opts.CloseClient
	case opts.URL != "":
		ro, err := goredis.ParseURL(opts.URL)
		if err != nil {
			return nil, &Error{Op: "connect", Kind: KindConnection, Err: err}
		}
		// go-redis retries network errors 3 times unless told otherwise;
		// the handle surfaces the first error.
		if !hasQueryParam(opts.URL, "max_retries") {
			ro.MaxRetries = -1
		}
		h.addr = ro.Addr
		h.rdb = goredis.NewClient(ro)
		h.closeClient = true
	default:
		return nil, &Error{Op: "connect", Kind: KindConnection, Err: errNoTarget}
	}

	h.log.Debug("handle created", Fields{"ns": h.ns, "addr": h.addr, "owned": h.closeClient})
	return h, nil
}

// Namespace returns the label the handle was created with.
func (h *Handle) Namespace() string { return h.ns }

// Addr returns the server address parsed from the URL, or "" for an injected client.
func (h *Handle) Addr() string { return h.addr }

// Ping takes a connection from the pool, dialing one if none is idle, and
// round-trips PING over it.
func (h *Handle) Ping(ctx context.Context) error {
	return h.report(decodeStatus("", h.rdb.Ping(ctx)))
}

// SetString overwrites key with value. When ttl > 0 an EXPIRE follows as a
// separate command (PEXPIRE when ttl is not a whole number of seconds).
// The two steps are not atomic: if EXPIRE fails the value stays written
// without a TTL and the EXPIRE error is returned.
// A positive ttl under 1ms is rejected with ErrInvalidTTL before anything is written.
func (h *Handle) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl > 0 && ttl < time.Millisecond {
		return fmt.Errorf("redkv: set %q: ttl %v: %w", key, ttl, ErrInvalidTTL)
	}
	if err := decodeStatus(key, h.rdb.Set(ctx, key, value, 0)); err != nil {
		return h.report(err)
	}
	if ttl <= 0 {
		return nil
	}
	if err := decodeStatus(key, h.expire(ctx, key, ttl)); err != nil {
		h.log.Warn("value written without expiry", Fields{"ns": h.ns, "key": key, "ttl": ttl, "err": err})
		h.hooks.ExpireFailed(key, ttl, err)
		return h.report(err)
	}
	return nil
}

// GetString returns the value at key. A missing key is ErrNotFound;
// a key holding another type is a KindDecode error.
func (h *Handle) GetString(ctx context.Context, key string) (string, error) {
	v, err := decodeString(key, h.rdb.Get(ctx, key))
	if err != nil {
		return "", h.report(err)
	}
	return v, nil
}

// HSetField sets one field of the hash at key, creating the hash if needed.
func (h *Handle) HSetField(ctx context.Context, key, field, value string) error {
	return h.report(decodeStatus(key, h.rdb.HSet(ctx, key, field, value)))
}

// HGetField returns one field of the hash at key, or ErrNotFound.
func (h *Handle) HGetField(ctx context.Context, key, field string) (string, error) {
	v, err := decodeString(key, h.rdb.HGet(ctx, key, field))
	if err != nil {
		return "", h.report(err)
	}
	return v, nil
}

// HGetAll returns every field of the hash at key. A missing key yields an empty map.
func (h *Handle) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m, err := decodeStringMap(key, h.rdb.HGetAll(ctx, key))
	if err != nil {
		return nil, h.report(err)
	}
	return m, nil
}

// HDelField removes field from the hash at key. Absent fields and keys are not errors.
func (h *Handle) HDelField(ctx context.Context, key, field string) error {
	return h.report(decodeStatus(key, h.rdb.HDel(ctx, key, field)))
}

// Close releases the client only when the handle owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (h *Handle) Close(context.Context) error {
	if !h.closeClient {
		return nil
	}
	if err := h.rdb.Close(); err != nil {
		if errors.Is(err, goredis.ErrClosed) {
			return nil
		}
		return err
	}
	h.log.Debug("handle closed", Fields{"ns": h.ns, "addr": h.addr})
	return nil
}

// expire keeps sub-second precision; EXPIRE would truncate to whole seconds.
func (h *Handle) expire(ctx context.Context, key string, ttl time.Duration) *goredis.BoolCmd {
	if ttl%time.Second != 0 {
		return h.rdb.PExpire(ctx, key, ttl)
	}
	return h.rdb.Expire(ctx, key, ttl)
}

func hasQueryParam(rawURL, name string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Has(name)
}

// report forwards non-NotFound failures to hooks and passes err through.
func (h *Handle) report(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) && e.Kind != KindNotFound {
		h.log.Debug("command failed", Fields{"ns": h.ns, "op": e.Op, "key": e.Key, "kind": e.Kind.String(), "err": e.Err})
		h.hooks.CommandFailed(e.Op, e.Key, e.Kind, e.Err)
	}
	return err
}
