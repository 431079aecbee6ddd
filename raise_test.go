package gokata_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/dsl"
)

func TestRaise_NumberRepresentations(t *testing.T) {
	ctx := context.Background()

	// Backends differ in how they hand numbers back; all integer forms raise
	// into int64.
	for _, p := range []any{int64(42), json.Number("42"), float64(42), uint64(42)} {
		v, err := gokata.Raise(ctx, p, dsl.Int())
		if err != nil || v != int64(42) {
			t.Fatalf("raise(%T): v=%v err=%v", p, v, err)
		}
	}
	// A fractional number is not an int.
	_, err := gokata.Raise(ctx, json.Number("1.5"), dsl.Int())
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", code)
	}

	// Whole floats travel shortened ("5"), so floats accept integer forms.
	v, err := gokata.Raise(ctx, int64(5), dsl.Float())
	if err != nil || v != 5.0 {
		t.Fatalf("raise float: v=%v err=%v", v, err)
	}
}

func TestRaise_WrongPrimitiveKind(t *testing.T) {
	ctx := context.Background()
	_, err := gokata.Raise(ctx, "abc", dsl.Int())
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", code)
	}
	_, err = gokata.Raise(ctx, []any{1}, dsl.Map(dsl.Int()))
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("a list where a mapping is expected, got %v", code)
	}
}

func TestRaise_Union(t *testing.T) {
	ctx := context.Background()
	d := dsl.Union(
		dsl.VariantLabeled("count", dsl.Int()),
		dsl.VariantLabeled("name", dsl.String()),
	)

	v, err := gokata.Raise(ctx, map[string]any{"name": "x"}, d)
	if err != nil || v != "x" {
		t.Fatalf("union raise: v=%v err=%v", v, err)
	}
	_, err = gokata.Raise(ctx, map[string]any{"other": 1}, d)
	if code := issueCode(t, err); code != gokata.CodeUnknownUnionLabel {
		t.Fatalf("expected unknown_union_label, got %v", code)
	}
	_, err = gokata.Raise(ctx, map[string]any{"count": 1, "name": "x"}, d)
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("two entries are malformed, got %v", code)
	}
	_, err = gokata.Raise(ctx, 5, d)
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("bare value is malformed for a union, got %v", code)
	}
}

func TestRaise_OptionalAbsence(t *testing.T) {
	ctx := context.Background()
	v, err := gokata.Raise(ctx, nil, dsl.Optional(dsl.Int()))
	if err != nil || v != nil {
		t.Fatalf("null must raise to nil: v=%v err=%v", v, err)
	}
}

func TestRaise_RecordFields(t *testing.T) {
	ctx := context.Background()
	d := dsl.Record("User").
		Field("id", dsl.Int()).
		Field("nick", dsl.Optional(dsl.String())).
		MustBuild()

	v, err := gokata.Raise(ctx, map[string]any{"id": int64(1)}, d)
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"id": int64(1), "nick": nil}, v); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	_, err = gokata.Raise(ctx, map[string]any{"nick": "n"}, d)
	if code := issueCode(t, err); code != gokata.CodeMissingField {
		t.Fatalf("expected missing_field, got %v", code)
	}
	_, err = gokata.Raise(ctx, map[string]any{"id": int64(1), "zzz": true}, d)
	if code := issueCode(t, err); code != gokata.CodeUnexpectedField {
		t.Fatalf("expected unexpected_field, got %v", code)
	}
}

func TestRaise_RecordUnknownStrip(t *testing.T) {
	ctx := context.Background()
	d := dsl.Record("User").
		Field("id", dsl.Int()).
		UnknownStrip().
		MustBuild()

	v, err := gokata.Raise(ctx, map[string]any{"id": int64(1), "zzz": true}, d)
	if err != nil {
		t.Fatalf("permissive record must drop unknown keys: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"id": int64(1)}, v); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestRaise_EnumMember(t *testing.T) {
	ctx := context.Background()
	d := dsl.Enum("Shape").Member("square", 1).Member("circle", 2).MustBuild()

	v, err := gokata.Raise(ctx, "circle", d)
	if err != nil || v != int64(2) {
		t.Fatalf("enum raise: v=%v err=%v", v, err)
	}
	_, err = gokata.Raise(ctx, "triangle", d)
	if code := issueCode(t, err); code != gokata.CodeUnknownEnumMember {
		t.Fatalf("expected unknown_enum_member, got %v", code)
	}
	_, err = gokata.Raise(ctx, 2, d)
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("member names are strings, got %v", code)
	}
}

func TestRaise_Temporal(t *testing.T) {
	ctx := context.Background()

	v, err := gokata.Raise(ctx, "2021-03-04T05:06:07Z", dsl.DateTime())
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	want := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	if got, ok := v.(time.Time); !ok || !got.Equal(want) {
		t.Fatalf("datetime raise: v=%v", v)
	}

	v, err = gokata.Raise(ctx, "2021-03-04", dsl.Date())
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	if got, ok := v.(time.Time); !ok || !got.Equal(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date raise: v=%v", v)
	}

	_, err = gokata.Raise(ctx, "not-a-date", dsl.Date())
	iss, _ := gokata.AsIssues(err)
	if len(iss) == 0 || iss[0].Code != gokata.CodeMalformedPrimitive || iss[0].Cause == nil {
		t.Fatalf("expected malformed_primitive with cause, got %v", err)
	}
}

func TestRaise_ComplexForms(t *testing.T) {
	ctx := context.Background()

	v, err := gokata.Raise(ctx, 5.0, dsl.Complex())
	if err != nil || v != complex(5, 0) {
		t.Fatalf("bare number raise: v=%v err=%v", v, err)
	}
	v, err = gokata.Raise(ctx, map[string]any{"real": 1.0, "imag": 2.0}, dsl.Complex())
	if err != nil || v != complex(1, 2) {
		t.Fatalf("mapping raise: v=%v err=%v", v, err)
	}
	_, err = gokata.Raise(ctx, map[string]any{"real": 1.0, "huh": 2.0}, dsl.Complex())
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", code)
	}
}

func TestRaise_Bytes(t *testing.T) {
	ctx := context.Background()

	v, err := gokata.Raise(ctx, "utf8:hi", dsl.Bytes())
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	if diff := cmp.Diff([]byte("hi"), v); diff != "" {
		t.Fatalf("bytes mismatch (-want +got):\n%s", diff)
	}

	// A colon without a recognized encoding prefix is not the text form, and
	// ':' is outside the base85 alphabet.
	_, err = gokata.Raise(ctx, "xx:yy", dsl.Bytes())
	if code := issueCode(t, err); code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", code)
	}
}

func TestRaise_SignatureRequired(t *testing.T) {
	ctx := context.Background()
	d := dsl.Signature().
		Param("i", dsl.Int()).
		Param("s", dsl.String()).Optional().
		MustBuild()

	v, err := gokata.Raise(ctx, map[string]any{"i": int64(123)}, d)
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"i": int64(123)}, v); diff != "" {
		t.Fatalf("signature mismatch (-want +got):\n%s", diff)
	}
	_, err = gokata.Raise(ctx, map[string]any{"s": "x"}, d)
	if code := issueCode(t, err); code != gokata.CodeMissingField {
		t.Fatalf("expected missing_field, got %v", code)
	}
	_, err = gokata.Raise(ctx, map[string]any{"i": int64(1), "zz": int64(2)}, d)
	if code := issueCode(t, err); code != gokata.CodeUnexpectedField {
		t.Fatalf("expected unexpected_field, got %v", code)
	}
}

func TestRaise_ReduceConstructs(t *testing.T) {
	ctx := context.Background()

	v, err := gokata.Raise(ctx, 21.5, celsiusDesc())
	if err != nil {
		t.Fatalf("raise err: %v", err)
	}
	if v != (celsius{deg: 21.5}) {
		t.Fatalf("reduce raise: v=%#v", v)
	}
}
