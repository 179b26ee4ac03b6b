package trace

import (
	"io"
	"sort"

	"go.uber.org/zap"
)

// ZapTracer writes events through a zap.Logger. Span ends and points are
// logged at info, span begins at debug, failures at error.
type ZapTracer struct {
	log    *zap.Logger
	level  Level
	closer io.Closer
}

// NewZapTracer wraps an existing logger. Filtering by scope happens in
// Begin/Point; the logger should accept debug entries.
func NewZapTracer(log *zap.Logger, level Level) *ZapTracer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapTracer{log: log, level: level}
}

// Logger exposes the underlying logger.
func (t *ZapTracer) Logger() *zap.Logger {
	return t.log
}

func (t *ZapTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	fields := make([]zap.Field, 0, 6+len(ev.Extra))
	fields = append(fields,
		zap.String("kind", ev.Kind.String()),
		zap.String("scope", ev.Scope.String()),
		zap.Uint64("seq", ev.Seq),
	)
	if ev.SpanID != 0 {
		fields = append(fields, zap.Uint64("span", ev.SpanID))
	}
	if ev.ParentID != 0 {
		fields = append(fields, zap.Uint64("parent", ev.ParentID))
	}
	if ev.GID != 0 {
		fields = append(fields, zap.Uint64("gid", ev.GID))
	}
	if ev.Detail != "" {
		fields = append(fields, zap.String("detail", ev.Detail))
	}
	if ev.Kind == KindSpanEnd {
		fields = append(fields, zap.Duration("elapsed", ev.Elapsed))
	}
	keys := make([]string, 0, len(ev.Extra))
	for k := range ev.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.String(k, ev.Extra[k]))
	}

	switch ev.Kind {
	case KindError:
		t.log.Error(ev.Name, fields...)
	case KindSpanBegin:
		t.log.Debug(ev.Name, fields...)
	default:
		t.log.Info(ev.Name, fields...)
	}
}

// Flush syncs file outputs. Sync errors on terminals are ignored.
func (t *ZapTracer) Flush() error {
	if t.closer == nil {
		_ = t.log.Sync()
		return nil
	}
	return t.log.Sync()
}

func (t *ZapTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

func (t *ZapTracer) Level() Level { return t.level }

func (t *ZapTracer) Enabled() bool { return t.level > LevelOff }
