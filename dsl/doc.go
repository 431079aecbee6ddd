// Package dsl provides constructor helpers for gokata descriptors.
//
// Descriptors are plain values and can be written out as struct literals; the
// helpers here exist so that descriptor trees read like type expressions:
//
//	d := dsl.Record("Order").
//		Field("id", dsl.String()).
//		Field("qty", dsl.Int()).
//		Field("note", dsl.Optional(dsl.String())).
//		MustBuild()
//
// Builders validate on Build/MustBuild; the plain constructors return raw
// descriptors validated at Compile time.
package dsl
