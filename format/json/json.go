// Package json is the JSON format backend. JSON has no native temporal type,
// so temporal leaves travel as ISO-8601 strings. Encoding is backed by
// goccy/go-json with two-space indentation and a trailing newline.
package json

import (
	"bytes"
	"context"
	"io"

	gojson "github.com/goccy/go-json"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/i18n"
)

// WireOpt reports the primitive-domain options this backend lowers with.
func WireOpt() gokata.WireOpt { return gokata.WireOpt{TemporalAsNative: false} }

// Opt bundles decoding options.
type Opt struct {
	// Number controls how JSON numbers reach the raising engine. The default
	// preserves json.Number so large integers survive intact.
	Number gokata.NumberMode
}

// Marshal lowers v against d and renders the primitive tree as JSON.
func Marshal(ctx context.Context, v any, d gokata.Descriptor) ([]byte, error) {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := dump(ctx, buf, c, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data and raises the primitive tree against d.
func Unmarshal(ctx context.Context, data []byte, d gokata.Descriptor) (any, error) {
	return LoadWith(ctx, bytes.NewReader(data), d, Opt{})
}

// Dump writes Marshal output to w.
func Dump(ctx context.Context, w io.Writer, v any, d gokata.Descriptor) error {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return err
	}
	return dump(ctx, w, c, v)
}

// Load reads JSON from r and raises it against d.
func Load(ctx context.Context, r io.Reader, d gokata.Descriptor) (any, error) {
	return LoadWith(ctx, r, d, Opt{})
}

// LoadWith is Load with explicit decoding options.
func LoadWith(ctx context.Context, r io.Reader, d gokata.Descriptor, o Opt) (any, error) {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return nil, err
	}
	dec := gojson.NewDecoder(r)
	if o.Number == gokata.NumberJSONNumber {
		dec.UseNumber()
	}
	var prim any
	if err := dec.Decode(&prim); err != nil {
		return nil, parseIssue(err)
	}
	return c.Raise(ctx, prim)
}

func dump(ctx context.Context, w io.Writer, c *gokata.Codec, v any) error {
	prim, err := c.Lower(ctx, v)
	if err != nil {
		return err
	}
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	// Encode writes the trailing newline.
	return enc.Encode(prim)
}

// parseIssue translates a decoder failure into the codec's error model before
// anything reaches the raising engine.
func parseIssue(err error) error {
	return gokata.Issues{{
		Path:    "/",
		Code:    gokata.CodeMalformedPrimitive,
		Message: i18n.T(gokata.CodeMalformedPrimitive, nil),
		Hint:    "input is not valid JSON",
		Cause:   err,
	}}
}
