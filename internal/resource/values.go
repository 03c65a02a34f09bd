package resource

import (
	"fmt"
	"math"
	"time"
)

// Raw JSON values arrive as string, float64, bool or nil. These helpers
// coerce them into model field types, rejecting anything lossy.

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func asInt(v any) (int, error) {
	n, err := asInt64(v)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func asTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("expected an RFC 3339 timestamp, got %T", v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// SetString assigns a required string attribute.
func SetString(dst *string, v any) error {
	s, err := asString(v)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// SetStringPtr assigns a nullable string attribute; an explicit JSON null
// clears it.
func SetStringPtr(dst **string, v any) error {
	if v == nil {
		*dst = nil
		return nil
	}
	s, err := asString(v)
	if err != nil {
		return err
	}
	*dst = &s
	return nil
}

// SetInt64 assigns a required integer attribute, typically a foreign key.
func SetInt64(dst *int64, v any) error {
	n, err := asInt64(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// SetInt64Ptr assigns a nullable integer attribute.
func SetInt64Ptr(dst **int64, v any) error {
	if v == nil {
		*dst = nil
		return nil
	}
	n, err := asInt64(v)
	if err != nil {
		return err
	}
	*dst = &n
	return nil
}

// SetIntPtr assigns a nullable int attribute such as a year.
func SetIntPtr(dst **int, v any) error {
	if v == nil {
		*dst = nil
		return nil
	}
	n, err := asInt(v)
	if err != nil {
		return err
	}
	*dst = &n
	return nil
}

// SetTime assigns a timestamp attribute from an RFC 3339 string.
func SetTime(dst *time.Time, v any) error {
	t, err := asTime(v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
