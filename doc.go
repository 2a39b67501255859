// Package redkv is a small handle over a Redis server: string set/get with an
// optional expiry, and per-field hash set/get/delete/enumerate.
//
// The wire protocol, pooling and connection multiplexing are go-redis's job.
// Every operation issues a single command (SetString with a TTL issues two)
// and returns the reply or an *Error classified by Kind:
//
//	KindConnection - malformed URL, dial/IO failure, closed client, ctx done
//	KindProtocol   - the server answered with an error reply
//	KindDecode     - the key holds another type (WRONGTYPE)
//	KindNotFound   - missing key or field; errors.Is(err, ErrNotFound)
//
// Usage:
//
//	h, err := redkv.Connect("redis://localhost:6379/0", "sessions")
//	if err != nil { ... }
//	defer h.Close(ctx)
//
//	_ = h.SetString(ctx, "user:1", "alice", time.Minute) // SET, then EXPIRE
//	name, err := h.GetString(ctx, "user:1")
//
//	_ = h.HSetField(ctx, "user:1:profile", "email", "alice@example.com")
//	profile, err := h.HGetAll(ctx, "user:1:profile") // empty map if missing
//
// SET and EXPIRE are separate commands. If EXPIRE fails the value remains
// written without a TTL; the error is returned and Hooks.ExpireFailed fires.
package redkv
