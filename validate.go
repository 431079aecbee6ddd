package gokata

import (
	"fmt"

	"github.com/reoring/gokata/i18n"
)

// Validate runs the one-shot validation pass over a descriptor tree. It
// rejects unions whose resolved labels collide (or cannot be derived),
// sequences and mappings missing an element descriptor, records and
// signatures with duplicate names, and literal sets mixing primitive kinds.
// It must succeed before any value is processed; Compile calls it for you.
func Validate(d Descriptor) error {
	if iss := validateDesc(d, ""); len(iss) > 0 {
		return iss
	}
	return nil
}

func validateDesc(d Descriptor, path string) Issues {
	switch t := d.(type) {
	case nil:
		return Issues{descIssue(path, "missing descriptor")}
	case Primitive:
		if t.Kind < KindInt || t.Kind > KindString {
			return Issues{descIssue(path, fmt.Sprintf("unknown primitive kind %d", int(t.Kind)))}
		}
	case Literal:
		return validateLiteral(t, path)
	case Optional:
		return validateDesc(t.Inner, path)
	case Union:
		return validateUnion(t, path)
	case Sequence:
		return validateSequence(t, path)
	case Mapping:
		return validateDesc(t.Value, path)
	case Record:
		return validateRecord(t, path)
	case Enum:
		return validateEnum(t, path)
	case Temporal:
		if t.Granularity < GranularityDate || t.Granularity > GranularityDateTime {
			return Issues{descIssue(path, fmt.Sprintf("unknown temporal granularity %d", int(t.Granularity)))}
		}
	case Complex, Bytes:
		// fixed built-in shapes carry no metadata to validate
	case Signature:
		return validateSignature(t, path)
	case Reduce:
		return validateReduce(t, path)
	default:
		return Issues{descIssue(path, fmt.Sprintf("unsupported descriptor %T", d))}
	}
	return nil
}

func validateLiteral(t Literal, path string) Issues {
	if len(t.Values) == 0 {
		return Issues{descIssue(path, "literal set is empty")}
	}
	want, ok := literalKindOf(t.Values[0])
	if !ok {
		return Issues{descIssue(path, fmt.Sprintf("unsupported literal value %T", t.Values[0]))}
	}
	for _, v := range t.Values[1:] {
		k, ok := literalKindOf(v)
		if !ok {
			return Issues{descIssue(path, fmt.Sprintf("unsupported literal value %T", v))}
		}
		if k != want {
			return Issues{descIssue(path, fmt.Sprintf("literal set mixes %s and %s values", want, k))}
		}
	}
	return nil
}

func validateUnion(t Union, path string) Issues {
	if len(t.Alternatives) == 0 {
		return Issues{descIssue(path, "union has no alternatives")}
	}
	seen := make(map[string]struct{}, len(t.Alternatives))
	for i, alt := range t.Alternatives {
		label, ok := resolveLabel(alt)
		if !ok {
			return Issues{{
				Path:    at(path),
				Code:    CodeAmbiguousUnion,
				Message: i18n.T(CodeAmbiguousUnion, nil),
				Hint:    fmt.Sprintf("alternative %d has no derivable label; attach one explicitly", i),
			}}
		}
		if _, dup := seen[label]; dup {
			return Issues{{
				Path:    at(path),
				Code:    CodeAmbiguousUnion,
				Message: i18n.T(CodeAmbiguousUnion, nil),
				Hint:    fmt.Sprintf("label %q resolved by more than one alternative", label),
				Params:  map[string]any{"label": label},
			}}
		}
		seen[label] = struct{}{}
		if iss := validateDesc(alt.Desc, path); len(iss) > 0 {
			return iss
		}
	}
	return nil
}

func validateSequence(t Sequence, path string) Issues {
	switch {
	case t.Element != nil && t.FixedArity != nil:
		return Issues{descIssue(path, "sequence sets both element and fixed arity")}
	case t.Element != nil:
		return validateDesc(t.Element, path)
	case t.FixedArity != nil:
		for i, d := range t.FixedArity {
			if iss := validateDesc(d, joinPath(path, fmt.Sprint(i))); len(iss) > 0 {
				return iss
			}
		}
		return nil
	default:
		return Issues{descIssue(path, "sequence is missing an element descriptor")}
	}
}

func validateRecord(t Record, path string) Issues {
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if _, dup := seen[f.Name]; dup {
			return Issues{descIssue(path, fmt.Sprintf("duplicate field %q", f.Name))}
		}
		seen[f.Name] = struct{}{}
		if iss := validateDesc(f.Desc, joinPath(path, f.Name)); len(iss) > 0 {
			return iss
		}
	}
	return nil
}

func validateEnum(t Enum, path string) Issues {
	if len(t.Members) == 0 {
		return Issues{descIssue(path, "enumeration has no members")}
	}
	seen := make(map[string]struct{}, len(t.Members))
	for _, m := range t.Members {
		if _, dup := seen[m.Name]; dup {
			return Issues{descIssue(path, fmt.Sprintf("duplicate enumeration member %q", m.Name))}
		}
		seen[m.Name] = struct{}{}
		if _, ok := literalKindOf(m.Value); !ok {
			return Issues{descIssue(path, fmt.Sprintf("unsupported value %T for member %q", m.Value, m.Name))}
		}
	}
	return nil
}

func validateSignature(t Signature, path string) Issues {
	seen := make(map[string]struct{}, len(t.Params))
	for _, p := range t.Params {
		if _, dup := seen[p.Name]; dup {
			return Issues{descIssue(path, fmt.Sprintf("duplicate parameter %q", p.Name))}
		}
		seen[p.Name] = struct{}{}
		if iss := validateDesc(p.Desc, joinPath(path, p.Name)); len(iss) > 0 {
			return iss
		}
	}
	return nil
}

func validateReduce(t Reduce, path string) Issues {
	if t.Construct == nil {
		return Issues{descIssue(path, "reduction is missing a constructor")}
	}
	if t.Reducer == nil {
		return Issues{descIssue(path, "reduction is missing a reducer")}
	}
	return validateDesc(t.Arg, path)
}

// resolveLabel resolves the discriminator label for a union alternative. An
// explicit label wins; otherwise the label derives from the descriptor's own
// name when that name is present and distinct from the unqualified primitive
// kind names.
func resolveLabel(a Alternative) (string, bool) {
	if a.Label != "" {
		return a.Label, true
	}
	switch t := a.Desc.(type) {
	case Primitive:
		return t.Kind.String(), true
	case Record:
		return derivedName(t.Name)
	case Enum:
		return derivedName(t.Name)
	case Reduce:
		return derivedName(t.Name)
	}
	return "", false
}

func derivedName(name string) (string, bool) {
	if name == "" || isPrimKindName(name) {
		return "", false
	}
	return name, true
}

func isPrimKindName(s string) bool {
	switch s {
	case "int", "float", "bool", "str":
		return true
	}
	return false
}

func descIssue(path, hint string) Issue {
	return Issue{Path: at(path), Code: CodeInvalidDescriptor, Message: i18n.T(CodeInvalidDescriptor, nil), Hint: hint}
}

func at(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func joinPath(path, seg string) string {
	return path + "/" + seg
}
