// Package gokata is a type-directed structural codec: a bidirectional mapping
// between typed Go values and a primitive domain (null, bool, int, float,
// string, sequence, string-keyed mapping, plus temporal leaves) that every
// supported storage format can represent.
//
// The codec is driven by an explicit Descriptor supplied alongside each value,
// never by inspection of the value's own dynamic type. Lowering turns a value
// into a primitive-domain tree; raising is the inverse. Format backends under
// format/ turn primitive trees into bytes and back.
//
// Design policy:
//   - Keep only public APIs in the root package; put low-level encodings under internal/.
//   - Place descriptor builders under dsl/ and format backends under format/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := dsl.Record("Point").
//		Field("x", dsl.Float()).
//		Field("y", dsl.Float()).
//		MustBuild()
//
//	m, err := gokata.Compile(d, gokata.WireOpt{})
//	prim, err := m.Lower(ctx, map[string]any{"x": 1.0, "y": 2.0})
//	back, err := m.Raise(ctx, prim)
package gokata
