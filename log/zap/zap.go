package zap

import (
	"github.com/unkn0wn-root/redkv"
	"go.uber.org/zap"
)

var _ redkv.Logger = ZapLogger{}

// ZapLogger writes redkv log lines to a *zap.Logger.
type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f redkv.Fields) { z.L.Debug(msg, fields(f)...) }
func (z ZapLogger) Info(msg string, f redkv.Fields)  { z.L.Info(msg, fields(f)...) }
func (z ZapLogger) Warn(msg string, f redkv.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z ZapLogger) Error(msg string, f redkv.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f redkv.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
