package gokata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reoring/gokata/i18n"
	"github.com/reoring/gokata/internal/b85"
)

// lowerValue dispatches purely on the descriptor shape: the declared type
// governs behavior even when the runtime value could structurally satisfy
// another shape. Failures are fail-fast; nothing is substituted silently.
func lowerValue(ctx context.Context, v any, d Descriptor, opt WireOpt, path string) (any, error) {
	switch t := d.(type) {
	case Primitive:
		return lowerPrimitive(v, t, path)
	case Literal:
		return lowerLiteral(v, t, path)
	case Optional:
		if v == nil {
			return nil, nil
		}
		return lowerValue(ctx, v, t.Inner, opt, path)
	case Union:
		return lowerUnion(ctx, v, t, opt, path)
	case Sequence:
		return lowerSequence(ctx, v, t, opt, path)
	case Mapping:
		return lowerMapping(ctx, v, t, opt, path)
	case Record:
		return lowerRecord(ctx, v, t, opt, path)
	case Enum:
		return lowerEnum(v, t, path)
	case Temporal:
		return lowerTemporal(v, t, opt, path)
	case Complex:
		return lowerComplex(v, path)
	case Bytes:
		return lowerBytes(v, path)
	case Signature:
		return lowerSignature(ctx, v, t, opt, path)
	case Reduce:
		return lowerReduce(ctx, v, t, opt, path)
	default:
		return nil, Issues{descIssue(path, fmt.Sprintf("unsupported descriptor %T", d))}
	}
}

func lowerPrimitive(v any, t Primitive, path string) (any, error) {
	switch t.Kind {
	case KindInt:
		if n, ok := asInt64(v); ok {
			return n, nil
		}
	case KindFloat:
		if f, ok := v.(float64); ok {
			return f, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, mismatch(path, t.Kind.String(), v)
}

func lowerLiteral(v any, t Literal, path string) (any, error) {
	nv := normalizeScalar(v)
	for _, allowed := range t.Values {
		if scalarEqual(allowed, nv) {
			return nv, nil
		}
	}
	return nil, mismatch(path, "one of "+literalOptions(t.Values), v)
}

func literalOptions(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%#v", v)
	}
	return strings.Join(parts, ", ")
}

// lowerUnion locates the first alternative whose shape accepts the value
// (structural match, not label match) and wraps the lowered value in a
// single-entry mapping {label: lowered}.
func lowerUnion(ctx context.Context, v any, t Union, opt WireOpt, path string) (any, error) {
	labels := make([]string, len(t.Alternatives))
	for i, alt := range t.Alternatives {
		label, _ := resolveLabel(alt)
		labels[i] = label
		low, err := lowerValue(ctx, v, alt.Desc, opt, path)
		if err != nil {
			continue
		}
		return map[string]any{label: low}, nil
	}
	return nil, mismatch(path, "one of "+strings.Join(labels, ", "), v)
}

func lowerSequence(ctx context.Context, v any, t Sequence, opt WireOpt, path string) (any, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, mismatch(path, "a sequence", v)
	}
	if t.FixedArity != nil {
		if len(items) != len(t.FixedArity) {
			return nil, Issues{{
				Path:    at(path),
				Code:    CodeTypeMismatch,
				Message: i18n.T(CodeTypeMismatch, nil),
				Hint:    fmt.Sprintf("expects %d items, got %d", len(t.FixedArity), len(items)),
				Params:  map[string]any{"expected": len(t.FixedArity), "got": len(items)},
			}}
		}
		out := make([]any, len(items))
		for i, item := range items {
			low, err := lowerValue(ctx, item, t.FixedArity[i], opt, joinPath(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			out[i] = low
		}
		return out, nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		low, err := lowerValue(ctx, item, t.Element, opt, joinPath(path, fmt.Sprint(i)))
		if err != nil {
			return nil, err
		}
		out[i] = low
	}
	return out, nil
}

func lowerMapping(ctx context.Context, v any, t Mapping, opt WireOpt, path string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, "a string-keyed mapping", v)
	}
	out := make(map[string]any, len(m))
	for _, k := range sortedKeys(m) {
		low, err := lowerValue(ctx, m[k], t.Value, opt, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		out[k] = low
	}
	return out, nil
}

// lowerRecord lowers each declared field in declared order. Keys in the value
// that are not declared fields are ignored; only the declared shape travels.
func lowerRecord(ctx context.Context, v any, t Record, opt WireOpt, path string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, "a record mapping", v)
	}
	out := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		fv, present := m[f.Name]
		if !present {
			if _, isOpt := f.Desc.(Optional); isOpt {
				out[f.Name] = nil
				continue
			}
			return nil, Issues{{
				Path:    joinPath(path, f.Name),
				Code:    CodeMissingField,
				Message: i18n.T(CodeMissingField, nil),
				Hint:    fmt.Sprintf("field %q has no value", f.Name),
			}}
		}
		low, err := lowerValue(ctx, fv, f.Desc, opt, joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[f.Name] = low
	}
	return out, nil
}

func lowerEnum(v any, t Enum, path string) (any, error) {
	for _, m := range t.Members {
		if scalarEqual(m.Value, v) {
			return m.Name, nil
		}
	}
	return nil, mismatch(path, fmt.Sprintf("a member of %s", enumName(t)), v)
}

func enumName(t Enum) string {
	if t.Name != "" {
		return t.Name
	}
	return "the enumeration"
}

func lowerTemporal(v any, t Temporal, opt WireOpt, path string) (any, error) {
	tv, ok := v.(time.Time)
	if !ok {
		return nil, mismatch(path, t.Granularity.String(), v)
	}
	if opt.TemporalAsNative {
		return tv, nil
	}
	return formatTemporal(tv, t.Granularity), nil
}

// lowerComplex collapses a zero imaginary part to a bare float so that purely
// real values stay human-editable.
func lowerComplex(v any, path string) (any, error) {
	c, ok := v.(complex128)
	if !ok {
		return nil, mismatch(path, "complex", v)
	}
	if imag(c) == 0 {
		return real(c), nil
	}
	return map[string]any{"real": real(c), "imag": imag(c)}, nil
}

func lowerBytes(v any, path string) (any, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, mismatch(path, "bytes", v)
	}
	if utf8.Valid(b) {
		return "utf8:" + string(b), nil
	}
	return b85.Encode(b), nil
}

func lowerSignature(ctx context.Context, v any, t Signature, opt WireOpt, path string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, "a bound-arguments mapping", v)
	}
	declared := make(map[string]struct{}, len(t.Params))
	out := make(map[string]any, len(t.Params))
	for _, p := range t.Params {
		declared[p.Name] = struct{}{}
		pv, present := m[p.Name]
		if !present {
			if p.Required {
				return nil, Issues{{
					Path:    joinPath(path, p.Name),
					Code:    CodeMissingField,
					Message: i18n.T(CodeMissingField, nil),
					Hint:    fmt.Sprintf("parameter %q has no bound value", p.Name),
				}}
			}
			continue
		}
		low, err := lowerValue(ctx, pv, p.Desc, opt, joinPath(path, p.Name))
		if err != nil {
			return nil, err
		}
		out[p.Name] = low
	}
	if t.Unknown == UnknownStrict {
		for _, k := range sortedKeys(m) {
			if _, ok := declared[k]; !ok {
				return nil, Issues{{
					Path:    joinPath(path, k),
					Code:    CodeUnexpectedField,
					Message: i18n.T(CodeUnexpectedField, nil),
					Hint:    fmt.Sprintf("parameter %q is not part of the signature", k),
				}}
			}
		}
	}
	return out, nil
}

// lowerReduce extracts the sole retained constructor argument and lowers it.
// The result carries no type tag; raising relies on the descriptor alone.
func lowerReduce(ctx context.Context, v any, t Reduce, opt WireOpt, path string) (any, error) {
	arg, err := t.Reducer(v)
	if err != nil {
		iss := mismatch(path, "a reducible value", v)
		iss[0].Cause = err
		return nil, iss
	}
	return lowerValue(ctx, arg, t.Arg, opt, path)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
