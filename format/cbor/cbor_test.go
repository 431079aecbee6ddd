package cbor_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/dsl"
	cborfmt "github.com/reoring/gokata/format/cbor"
)

func TestRoundTrip_Record(t *testing.T) {
	ctx := context.Background()
	d := dsl.Record("Sample").
		Field("id", dsl.Int()).
		Field("ratio", dsl.Float()).
		Field("at", dsl.DateTime()).
		Field("raw", dsl.Bytes()).
		MustBuild()
	v := map[string]any{
		"id":    int64(900719),
		"ratio": 0.25,
		"at":    time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		"raw":   []byte{0x00, 0xff, 0x10},
	}

	data, err := cborfmt.Marshal(ctx, v, d)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	back, err := cborfmt.Unmarshal(ctx, data, d)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if diff := cmp.Diff(v, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_Scalars(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		d    gokata.Descriptor
		v    any
	}{
		{"int", dsl.Int(), int64(42)},
		{"negative-int", dsl.Int(), int64(-42)},
		{"string", dsl.String(), "abc"},
		{"bool", dsl.Bool(), true},
		{"union", dsl.Union(dsl.Variant(dsl.Int()), dsl.Variant(dsl.String())), "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := cborfmt.Marshal(ctx, tc.v, tc.d)
			if err != nil {
				t.Fatalf("marshal err: %v", err)
			}
			back, err := cborfmt.Unmarshal(ctx, data, tc.d)
			if err != nil {
				t.Fatalf("unmarshal err: %v", err)
			}
			if diff := cmp.Diff(tc.v, back); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshal_ParseError(t *testing.T) {
	ctx := context.Background()
	_, err := cborfmt.Unmarshal(ctx, []byte{0xff}, dsl.Int())
	iss, ok := gokata.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", err)
	}
}
