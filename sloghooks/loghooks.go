package sloghooks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/redkv"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CommandFailedEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	cmdFailedCtr atomic.Uint64
}

var _ redkv.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	if k == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

// ExpireFailed is never sampled: a key without TTL outlives its intent.
func (h *Hooks) ExpireFailed(key string, ttl time.Duration, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("redkv.expire_failed",
		"key", h.redact(key),
		"ttl", ttl,
		"err", err)
}

func (h *Hooks) CommandFailed(op, key string, kind redkv.Kind, err error) {
	if h.l == nil || !sample(h.opts.CommandFailedEvery, &h.cmdFailedCtr) {
		return
	}
	level := slog.LevelWarn
	if kind == redkv.KindConnection {
		level = slog.LevelError
	}
	h.l.Log(context.Background(), level, "redkv.command_failed",
		"op", op,
		"key", h.redact(key),
		"kind", kind.String(),
		"err", err)
}
