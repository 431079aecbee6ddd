// Package format selects a backend from a file extension and provides
// whole-file dump/load convenience wrappers around the codec.
package format

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gokata "github.com/reoring/gokata"
	cborfmt "github.com/reoring/gokata/format/cbor"
	jsonfmt "github.com/reoring/gokata/format/json"
	yamlfmt "github.com/reoring/gokata/format/yaml"
)

type (
	marshalFunc   func(context.Context, any, gokata.Descriptor) ([]byte, error)
	unmarshalFunc func(context.Context, []byte, gokata.Descriptor) (any, error)
)

// DumpFile lowers v against d and writes it to path in the format the
// extension names (.json, .yml/.yaml, .cbor).
func DumpFile(ctx context.Context, path string, v any, d gokata.Descriptor) error {
	enc, _, err := backendFor(path)
	if err != nil {
		return err
	}
	data, err := enc(ctx, v, d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads path in the format the extension names and raises the
// content against d.
func LoadFile(ctx context.Context, path string, d gokata.Descriptor) (any, error) {
	_, dec, err := backendFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dec(ctx, data, d)
}

func backendFor(path string) (marshalFunc, unmarshalFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonfmt.Marshal, jsonfmt.Unmarshal, nil
	case ".yml", ".yaml":
		return yamlfmt.Marshal, yamlfmt.Unmarshal, nil
	case ".cbor":
		return cborfmt.Marshal, cborfmt.Unmarshal, nil
	}
	return nil, nil, fmt.Errorf("format: unrecognized file format %q", filepath.Ext(path))
}
