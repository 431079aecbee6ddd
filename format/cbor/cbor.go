// Package cbor is the CBOR format backend. Temporal leaves travel as tag 0
// timestamps (RFC 3339 text), so the adapter runs in native mode. Decoded
// trees are normalized before they reach the raising engine: string-keyed
// maps become map[string]any and time tags become time.Time.
package cbor

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"time"

	cborv2 "github.com/fxamacker/cbor/v2"

	gokata "github.com/reoring/gokata"
	"github.com/reoring/gokata/i18n"
)

// WireOpt reports the primitive-domain options this backend lowers with.
func WireOpt() gokata.WireOpt { return gokata.WireOpt{TemporalAsNative: true} }

var (
	encMode cborv2.EncMode
	decMode cborv2.DecMode
)

func init() {
	em, err := cborv2.EncOptions{
		Time:    cborv2.TimeRFC3339Nano,
		TimeTag: cborv2.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
	dm, err := cborv2.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// Marshal lowers v against d and renders the primitive tree as CBOR.
func Marshal(ctx context.Context, v any, d gokata.Descriptor) ([]byte, error) {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return nil, err
	}
	prim, err := c.Lower(ctx, v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(prim)
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
	prim, err := c.Lower(ctx, v)
	if err != nil {
		return err
	}
	return encMode.NewEncoder(w).Encode(prim)
}

// Load reads CBOR from r and raises it against d.
func Load(ctx context.Context, r io.Reader, d gokata.Descriptor) (any, error) {
	c, err := gokata.Compile(d, WireOpt())
	if err != nil {
		return nil, err
	}
	var prim any
	if err := decMode.NewDecoder(r).Decode(&prim); err != nil {
		return nil, gokata.Issues{{
			Path:    "/",
			Code:    gokata.CodeMalformedPrimitive,
			Message: i18n.T(gokata.CodeMalformedPrimitive, nil),
			Hint:    "input is not valid CBOR",
			Cause:   err,
		}}
	}
	return c.Raise(ctx, normalize(prim))
}

// normalize rewrites decoder-specific shapes into the primitive domain.
// Non-string map keys are left alone; the raising engine rejects them with a
// precise path.
func normalize(p any) any {
	switch v := p.(type) {
	case cborv2.Tag:
		if t, ok := tagTime(v); ok {
			return t
		}
		return normalize(v.Content)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return p
			}
			out[ks] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	}
	return p
}

// tagTime converts tags 0 (RFC 3339 text) and 1 (epoch) into time.Time.
func tagTime(tag cborv2.Tag) (time.Time, bool) {
	switch tag.Number {
	case 0:
		if s, ok := tag.Content.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t, true
			}
		}
	case 1:
		switch n := tag.Content.(type) {
		case int64:
			return time.Unix(n, 0).UTC(), true
		case uint64:
			return time.Unix(int64(n), 0).UTC(), true
		case float64:
			sec := int64(n)
			nsec := int64((n - float64(sec)) * 1e9)
			return time.Unix(sec, nsec).UTC(), true
		}
	}
	return time.Time{}, false
}
