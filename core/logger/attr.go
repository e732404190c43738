package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers return the empty Attr for nil or zero input, which slog
// drops. Calls like log.Info("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time since start under the key "elapsed".
func Elapsed(start time.Time) slog.Attr {
	if start.IsZero() {
		return slog.Attr{}
	}
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Identifiers and metadata
// ============================================================================

// CorrelationID creates an attribute for correlation IDs.
func CorrelationID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("correlation_id", id)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Result creates an attribute for operation results (valid/invalid/...).
func Result(result string) slog.Attr {
	if result == "" {
		return slog.Attr{}
	}
	return slog.String("result", result)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.Int(key, n)
}

// ============================================================================
// Documents
// ============================================================================

// Document groups the kind and value of a checked document under "document".
// Callers decide whether value is the raw input or a redacted form.
func Document(kind, value string) slog.Attr {
	if kind == "" && value == "" {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, 2)
	if kind != "" {
		attrs = append(attrs, slog.String("kind", kind))
	}
	if value != "" {
		attrs = append(attrs, slog.String("value", value))
	}
	return slog.Attr{Key: "document", Value: slog.GroupValue(attrs...)}
}

// Field creates an attribute for the name of a validated field.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}
