package redkv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

// replyErr mimics a server error reply (satisfies redis.Error).
type replyErr string

func (e replyErr) Error() string { return string(e) }
func (replyErr) RedisError()     {}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil_reply", goredis.Nil, KindNotFound},
		{"wrapped_nil_reply", fmt.Errorf("hget: %w", goredis.Nil), KindNotFound},
		{"wrongtype", replyErr("WRONGTYPE Operation against a key holding the wrong kind of value"), KindDecode},
		{"server_error", replyErr("ERR unknown command"), KindProtocol},
		{"oom", replyErr("OOM command not allowed"), KindProtocol},
		{"closed", goredis.ErrClosed, KindConnection},
		{"ctx", context.DeadlineExceeded, KindConnection},
		{"plain", errors.New("read tcp: connection reset"), KindConnection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.err); got != tc.want {
				t.Fatalf("classify(%v)=%v want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestErrorIsAndUnwrap(t *testing.T) {
	nf := newError("get", "k", goredis.Nil)
	if !errors.Is(nf, ErrNotFound) || !IsNotFound(nf) {
		t.Fatalf("not found error should match ErrNotFound")
	}
	if !errors.Is(nf, goredis.Nil) {
		t.Fatalf("Unwrap should expose redis.Nil")
	}

	pe := newError("hset", "k", replyErr("ERR boom"))
	if errors.Is(pe, ErrNotFound) {
		t.Fatalf("protocol error must not match ErrNotFound")
	}
	var re goredis.Error
	if !errors.As(pe, &re) {
		t.Fatalf("errors.As should reach the reply error")
	}

	wrapped := fmt.Errorf("load session: %w", pe)
	if KindOf(wrapped) != KindProtocol {
		t.Fatalf("KindOf through wrapping: %v", KindOf(wrapped))
	}
	if KindOf(errors.New("foreign")) != 0 || KindOf(nil) != 0 {
		t.Fatalf("KindOf of foreign/nil errors should be 0")
	}
}

func TestErrorMessage(t *testing.T) {
	withKey := (&Error{Op: "get", Key: "user:1", Kind: KindDecode, Err: errors.New("WRONGTYPE")}).Error()
	if withKey != `redkv: get "user:1": decode error: WRONGTYPE` {
		t.Fatalf("message=%q", withKey)
	}
	noKey := (&Error{Op: "ping", Kind: KindConnection, Err: errors.New("refused")}).Error()
	if noKey != "redkv: ping: connection error: refused" {
		t.Fatalf("message=%q", noKey)
	}
	if Kind(0).String() != "unknown" || KindNotFound.String() != "not_found" {
		t.Fatalf("Kind.String mismatch")
	}
}
