package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Postcode records the raw candidate under the key "postcode".
func Postcode(code string) slog.Attr {
	return slog.String("postcode", code)
}

// Outward records an outward code under the key "outward".
// Empty codes produce an empty Attr.
func Outward(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("outward", code)
}

// Rule records the deciding rule name under the key "rule".
// Empty names produce an empty Attr.
func Rule(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("rule", name)
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
