package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// format renders a record as "LEVEL message key=value ...".
func (h *DebugHandler) format(record slog.Record) []byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, record.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, record.Message...)

	if h.opts.addSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := frames.Next()
		buf = append(buf, " source="...)
		buf = append(buf, f.File...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(f.Line), 10)
	}

	buf = append(buf, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.groups, a)
		return true
	})
	return append(buf, '\n')
}

// appendAttr appends " key=value", flattening groups into dotted keys.
func appendAttr(buf []byte, groups []string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := a.Value.Group()
		if len(inner) == 0 {
			return buf
		}
		if a.Key != "" {
			groups = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range inner {
			buf = appendAttr(buf, groups, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	for _, g := range groups {
		buf = append(buf, g...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, formatValue(a.Value))
}

// formatValue returns the string form of a resolved value.
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		any := v.Any()
		switch x := any.(type) {
		case nil:
			return "<nil>"
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		}
		if data, err := json.Marshal(any); err == nil {
			return string(data)
		}
		return fmt.Sprintf("%v", any)
	}
}

// appendValue quotes values that would break the key=value layout.
func appendValue(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}
