package json_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/dsl"
	jsonfmt "github.com/reoring/gokata/format/json"
)

func orderDesc() gokata.Descriptor {
	return dsl.Record("Order").
		Field("id", dsl.Int()).
		Field("name", dsl.String()).
		Field("when", dsl.DateTime()).
		Field("tags", dsl.List(dsl.String())).
		MustBuild()
}

func TestMarshal_Scalar(t *testing.T) {
	ctx := context.Background()
	data, err := jsonfmt.Marshal(ctx, 5, dsl.Int())
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(data) != "5\n" {
		t.Fatalf("got %q", data)
	}
}

func TestRoundTrip_Record(t *testing.T) {
	ctx := context.Background()
	v := map[string]any{
		"id":   int64(7),
		"name": "widget",
		"when": time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		"tags": []any{"a", "b"},
	}

	data, err := jsonfmt.Marshal(ctx, v, orderDesc())
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	back, err := jsonfmt.Unmarshal(ctx, data, orderDesc())
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if diff := cmp.Diff(v, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_ParseError(t *testing.T) {
	ctx := context.Background()
	_, err := jsonfmt.Unmarshal(ctx, []byte("{"), orderDesc())
	iss, ok := gokata.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != gokata.CodeMalformedPrimitive {
		t.Fatalf("expected malformed_primitive, got %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected the decoder error as cause")
	}
}

func TestLoadWith_Float64Mode(t *testing.T) {
	ctx := context.Background()
	d := dsl.Record("P").Field("n", dsl.Int()).MustBuild()
	r := bytes.NewReader([]byte(`{"n": 5}`))

	v, err := jsonfmt.LoadWith(ctx, r, d, jsonfmt.Opt{Number: gokata.NumberFloat64})
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"n": int64(5)}, v); diff != "" {
		t.Fatalf("float64 mode mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpLoad_Writer(t *testing.T) {
	ctx := context.Background()
	d := dsl.Union(dsl.Variant(dsl.Int()), dsl.Variant(dsl.String()))

	buf := &bytes.Buffer{}
	if err := jsonfmt.Dump(ctx, buf, 42, d); err != nil {
		t.Fatalf("dump err: %v", err)
	}
	v, err := jsonfmt.Load(ctx, buf, d)
	if err != nil || v != int64(42) {
		t.Fatalf("load: v=%v err=%v", v, err)
	}
}
