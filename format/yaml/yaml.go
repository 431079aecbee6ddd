// Package yaml is the YAML format backend. YAML resolves !!timestamp scalars
// natively, so temporal leaves pass through as time.Time values.
package yaml

import (
	"bytes"
	"context"
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/i18n"
)

// WireOpt reports the primitive-domain options this backend lowers with.
func WireOpt() gokata.WireOpt { return gokata.WireOpt{TemporalAsNative: true} }

// Marshal lowers v against d and renders the primitive tree as YAML.
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
	return Load(ctx, bytes.NewReader(data), d)
}

// Dump writes Marshal output to w.
func Dump(ctx context.Context, w io.Writer, v any, d gokata.Descriptor) error {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return err
	}
	return dump(ctx, w, c, v)
}

// Load reads YAML from r and raises it against d.
func Load(ctx context.Context, r io.Reader, d gokata.Descriptor) (any, error) {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return nil, err
	}
	var prim any
	if err := yamlv3.NewDecoder(r).Decode(&prim); err != nil {
		return nil, gokata.Issues{{
			Path:    "/",
			Code:    gokata.CodeMalformedPrimitive,
			Message: i18n.T(gokata.CodeMalformedPrimitive, nil),
			Hint:    "input is not valid YAML",
			Cause:   err,
		}}
	}
	return c.Raise(ctx, prim)
}

func dump(ctx context.Context, w io.Writer, c *gokata.Codec, v any) error {
	prim, err := c.Lower(ctx, v)
	if err != nil {
		return err
	}
	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(prim); err != nil {
		return err
	}
	return enc.Close()
}
