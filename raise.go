package gokata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reoring/gokata/i18n"
	"github.com/reoring/gokata/internal/b85"
)

// raiseValue is the structural inverse of lowerValue. Primitive-kind
// disagreements surface as malformed_primitive; record and signature shape
// errors keep their dedicated codes.
func raiseValue(ctx context.Context, p any, d Descriptor, opt WireOpt, path string) (any, error) {
	switch t := d.(type) {
	case Primitive:
		return raisePrimitive(p, t, path)
	case Literal:
		return raiseLiteral(p, t, path)
	case Optional:
		if p == nil {
			return nil, nil
		}
		return raiseValue(ctx, p, t.Inner, opt, path)
	case Union:
		return raiseUnion(ctx, p, t, opt, path)
	case Sequence:
		return raiseSequence(ctx, p, t, opt, path)
	case Mapping:
		return raiseMapping(ctx, p, t, opt, path)
	case Record:
		return raiseRecord(ctx, p, t, opt, path)
	case Enum:
		return raiseEnum(p, t, path)
	case Temporal:
		return raiseTemporal(p, t, opt, path)
	case Complex:
		return raiseComplex(p, path)
	case Bytes:
		return raiseBytes(p, path)
	case Signature:
		return raiseSignature(ctx, p, t, opt, path)
	case Reduce:
		return raiseReduce(ctx, p, t, opt, path)
	default:
		return nil, Issues{descIssue(path, fmt.Sprintf("unsupported descriptor %T", d))}
	}
}

func raisePrimitive(p any, t Primitive, path string) (any, error) {
	switch t.Kind {
	case KindInt:
		if n, ok := intFromPrimitive(p); ok {
			return n, nil
		}
	case KindFloat:
		if f, ok := floatFromPrimitive(p); ok {
			return f, nil
		}
	case KindBool:
		if b, ok := p.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := p.(string); ok {
			return s, nil
		}
	}
	return nil, malformed(path, t.Kind.String(), p)
}

func raiseLiteral(p any, t Literal, path string) (any, error) {
	kind, _ := literalKindOf(t.Values[0])
	got, err := raisePrimitive(p, Primitive{Kind: kind}, path)
	if err != nil {
		return nil, err
	}
	for _, allowed := range t.Values {
		if scalarEqual(allowed, got) {
			return got, nil
		}
	}
	return nil, malformed(path, "one of "+literalOptions(t.Values), p)
}

// raiseUnion expects a single-entry mapping {label: lowered} and raises the
// entry against the alternative the label names.
func raiseUnion(ctx context.Context, p any, t Union, opt WireOpt, path string) (any, error) {
	m, ok := p.(map[string]any)
	if !ok {
		return nil, malformed(path, "a single-entry mapping", p)
	}
	if len(m) != 1 {
		return nil, Issues{{
			Path:    at(path),
			Code:    CodeMalformedPrimitive,
			Message: i18n.T(CodeMalformedPrimitive, nil),
			Hint:    fmt.Sprintf("expects a single-entry mapping, got %d entries", len(m)),
			Params:  map[string]any{"got": len(m)},
		}}
	}
	var key string
	var inner any
	for k, v := range m {
		key, inner = k, v
	}
	labels := make([]string, len(t.Alternatives))
	for i, alt := range t.Alternatives {
		label, _ := resolveLabel(alt)
		labels[i] = label
		if label == key {
			return raiseValue(ctx, inner, alt.Desc, opt, joinPath(path, key))
		}
	}
	return nil, Issues{{
		Path:    at(path),
		Code:    CodeUnknownUnionLabel,
		Message: i18n.T(CodeUnknownUnionLabel, nil),
		Hint:    fmt.Sprintf("label %q is not one of %s", key, strings.Join(labels, ", ")),
		Params:  map[string]any{"label": key},
	}}
}

func raiseSequence(ctx context.Context, p any, t Sequence, opt WireOpt, path string) (any, error) {
	items, ok := p.([]any)
	if !ok {
		return nil, malformed(path, "a sequence", p)
	}
	if t.FixedArity != nil {
		if len(items) != len(t.FixedArity) {
			return nil, Issues{{
				Path:    at(path),
				Code:    CodeMalformedPrimitive,
				Message: i18n.T(CodeMalformedPrimitive, nil),
				Hint:    fmt.Sprintf("expects %d items, got %d", len(t.FixedArity), len(items)),
				Params:  map[string]any{"expected": len(t.FixedArity), "got": len(items)},
			}}
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := raiseValue(ctx, item, t.FixedArity[i], opt, joinPath(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		v, err := raiseValue(ctx, item, t.Element, opt, joinPath(path, fmt.Sprint(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func raiseMapping(ctx context.Context, p any, t Mapping, opt WireOpt, path string) (any, error) {
	m, ok := p.(map[string]any)
	if !ok {
		return nil, malformed(path, "a string-keyed mapping", p)
	}
	out := make(map[string]any, len(m))
	for _, k := range sortedKeys(m) {
		v, err := raiseValue(ctx, m[k], t.Value, opt, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func raiseRecord(ctx context.Context, p any, t Record, opt WireOpt, path string) (any, error) {
	m, ok := p.(map[string]any)
	if !ok {
		return nil, malformed(path, "a record mapping", p)
	}
	declared := make(map[string]struct{}, len(t.Fields))
	out := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		declared[f.Name] = struct{}{}
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
				Hint:    fmt.Sprintf("field %q is missing", f.Name),
			}}
		}
		v, err := raiseValue(ctx, fv, f.Desc, opt, joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	if t.Unknown == UnknownStrict {
		for _, k := range sortedKeys(m) {
			if _, ok := declared[k]; !ok {
				return nil, Issues{{
					Path:    joinPath(path, k),
					Code:    CodeUnexpectedField,
					Message: i18n.T(CodeUnexpectedField, nil),
					Hint:    fmt.Sprintf("field %q is not declared", k),
				}}
			}
		}
	}
	return out, nil
}

func raiseEnum(p any, t Enum, path string) (any, error) {
	name, ok := p.(string)
	if !ok {
		return nil, malformed(path, "an enumeration member name", p)
	}
	for _, m := range t.Members {
		if m.Name == name {
			return normalizeScalar(m.Value), nil
		}
	}
	return nil, Issues{{
		Path:    at(path),
		Code:    CodeUnknownEnumMember,
		Message: i18n.T(CodeUnknownEnumMember, nil),
		Hint:    fmt.Sprintf("%q is not a member of %s", name, enumName(t)),
		Params:  map[string]any{"member": name},
	}}
}

// raiseTemporal accepts a native time.Time leaf when the adapter allows it,
// and otherwise parses the ISO-8601 string form. Native backends that
// stringify a granularity they cannot represent still raise cleanly.
func raiseTemporal(p any, t Temporal, opt WireOpt, path string) (any, error) {
	if tv, ok := p.(time.Time); ok && opt.TemporalAsNative {
		return tv, nil
	}
	s, ok := p.(string)
	if !ok {
		if opt.TemporalAsNative {
			return nil, malformed(path, t.Granularity.String(), p)
		}
		return nil, malformed(path, "an ISO-8601 string", p)
	}
	tv, err := parseTemporal(s, t.Granularity)
	if err != nil {
		iss := malformed(path, "an ISO-8601 "+t.Granularity.String(), p)
		iss[0].Cause = err
		return nil, iss
	}
	return tv, nil
}

// raiseComplex accepts either a bare number (imaginary part zero) or the
// {"real", "imag"} mapping.
func raiseComplex(p any, path string) (any, error) {
	if f, ok := floatFromPrimitive(p); ok {
		return complex(f, 0), nil
	}
	m, ok := p.(map[string]any)
	if !ok || len(m) != 2 {
		return nil, malformed(path, `a number or {"real", "imag"} mapping`, p)
	}
	re, okRe := floatFromPrimitive(m["real"])
	im, okIm := floatFromPrimitive(m["imag"])
	if !okRe || !okIm {
		return nil, malformed(path, `numerical entries "real" and "imag"`, p)
	}
	return complex(re, im), nil
}

// raiseBytes splits on the first ':'; a recognized encoding prefix selects
// text decoding, anything else is base85. The base85 alphabet contains no
// ':', so the two forms never collide.
func raiseBytes(p any, path string) (any, error) {
	s, ok := p.(string)
	if !ok {
		return nil, malformed(path, "an encoded byte string", p)
	}
	if i := strings.IndexByte(s, ':'); i >= 0 && s[:i] == "utf8" {
		return []byte(s[i+1:]), nil
	}
	b, err := b85.Decode(s)
	if err != nil {
		iss := malformed(path, "base85 text", p)
		iss[0].Cause = err
		return nil, iss
	}
	return b, nil
}

func raiseSignature(ctx context.Context, p any, t Signature, opt WireOpt, path string) (any, error) {
	m, ok := p.(map[string]any)
	if !ok {
		return nil, malformed(path, "a bound-arguments mapping", p)
	}
	declared := make(map[string]struct{}, len(t.Params))
	out := make(map[string]any, len(t.Params))
	for _, prm := range t.Params {
		declared[prm.Name] = struct{}{}
		pv, present := m[prm.Name]
		if !present {
			if prm.Required {
				return nil, Issues{{
					Path:    joinPath(path, prm.Name),
					Code:    CodeMissingField,
					Message: i18n.T(CodeMissingField, nil),
					Hint:    fmt.Sprintf("parameter %q is missing", prm.Name),
				}}
			}
			continue
		}
		v, err := raiseValue(ctx, pv, prm.Desc, opt, joinPath(path, prm.Name))
		if err != nil {
			return nil, err
		}
		out[prm.Name] = v
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

func raiseReduce(ctx context.Context, p any, t Reduce, opt WireOpt, path string) (any, error) {
	arg, err := raiseValue(ctx, p, t.Arg, opt, path)
	if err != nil {
		return nil, err
	}
	v, err := t.Construct(arg)
	if err != nil {
		iss := malformed(path, "a constructible argument", p)
		iss[0].Cause = err
		return nil, iss
	}
	return v, nil
}
