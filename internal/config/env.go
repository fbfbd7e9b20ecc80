package config

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errEmpty    = errors.New("empty value")
	errZeroPort = errors.New("port must be greater than zero")
)

// reader applies lookups against one environment and remembers which
// variables fell back to their default.
type reader struct {
	lookup    LookupFunc
	fallbacks []Fallback
}

// read returns the parsed value of name, or def when the variable is unset
// or the parser rejects it.
func read[T any](r *reader, name string, def T, parse func(string) (T, error)) T {
	raw, ok := r.lookup(name)
	if !ok {
		return def
	}

	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		r.fallbacks = append(r.fallbacks, Fallback{Name: name, Value: raw})
		return def
	}
	return v
}

func parsePort(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// parseListenPort rejects 0; the listener readiness check cannot dial an
// OS-assigned port.
func parseListenPort(s string) (uint16, error) {
	v, err := parsePort(s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errZeroPort
	}
	return v, nil
}

func parseSeconds(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func parseLogLevel(s string) (string, error) {
	switch lvl := strings.ToLower(s); lvl {
	case "trace", "debug", "info", "warn", "error":
		return lvl, nil
	case "warning":
		return "warn", nil
	default:
		return "", errors.New("unknown log level")
	}
}

func parseLogFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "text", "json":
		return f, nil
	default:
		return "", errors.New("unknown log format")
	}
}

func parseNonEmpty(s string) (string, error) {
	if s == "" {
		return "", errEmpty
	}
	return s, nil
}
