package gokata

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/reoring/gokata/i18n"
)

// literalKindOf classifies a Go value into a primitive kind. Integer widths
// accepted on lowering (int, int32, int64) all fold into KindInt.
func literalKindOf(v any) (PrimKind, bool) {
	switch v.(type) {
	case int, int32, int64:
		return KindInt, true
	case float64:
		return KindFloat, true
	case bool:
		return KindBool, true
	case string:
		return KindString, true
	}
	return 0, false
}

// normalizeScalar folds accepted integer widths into int64 so equality checks
// and round-trips are representation-independent.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	}
	return v
}

func scalarEqual(a, b any) bool {
	return normalizeScalar(a) == normalizeScalar(b)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	}
	return 0, false
}

// intFromPrimitive accepts the integer representations format backends hand
// back: int64, json.Number, CBOR's uint64, and integral float64 (the
// NumberFloat64 decoding mode).
func intFromPrimitive(p any) (int64, bool) {
	switch n := p.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), true
		}
	}
	return 0, false
}

// floatFromPrimitive accepts any numeric primitive. Integer forms are allowed
// because backends shorten whole floats (5.0 travels as "5").
func floatFromPrimitive(p any) (float64, bool) {
	switch n := p.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func mismatch(path, expect string, got any) Issues {
	return Issues{{
		Path:    at(path),
		Code:    CodeTypeMismatch,
		Message: i18n.T(CodeTypeMismatch, nil),
		Hint:    fmt.Sprintf("expects %s, got %s", expect, typeName(got)),
		Params:  map[string]any{"expected": expect, "got": typeName(got)},
	}}
}

func malformed(path, expect string, got any) Issues {
	return Issues{{
		Path:    at(path),
		Code:    CodeMalformedPrimitive,
		Message: i18n.T(CodeMalformedPrimitive, nil),
		Hint:    fmt.Sprintf("expects %s, got %s", expect, typeName(got)),
		Params:  map[string]any{"expected": expect, "got": typeName(got)},
	}}
}
