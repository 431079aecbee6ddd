package dsl

import gokata "github.com/reoring/gokata"

// Int describes an int64-valued primitive.
func Int() gokata.Descriptor { return gokata.Primitive{Kind: gokata.KindInt} }

// Float describes a float64-valued primitive.
func Float() gokata.Descriptor { return gokata.Primitive{Kind: gokata.KindFloat} }

// Bool describes a bool primitive.
func Bool() gokata.Descriptor { return gokata.Primitive{Kind: gokata.KindBool} }

// String describes a string primitive.
func String() gokata.Descriptor { return gokata.Primitive{Kind: gokata.KindString} }

// Literal describes a finite set of allowed values of one primitive kind.
func Literal(values ...any) gokata.Descriptor { return gokata.Literal{Values: values} }

// Optional wraps inner so that nil lowers to null.
func Optional(inner gokata.Descriptor) gokata.Descriptor { return gokata.Optional{Inner: inner} }

// List describes a homogeneous sequence.
func List(element gokata.Descriptor) gokata.Descriptor { return gokata.Sequence{Element: element} }

// Tuple describes a fixed-length heterogeneous sequence.
func Tuple(items ...gokata.Descriptor) gokata.Descriptor {
	return gokata.Sequence{FixedArity: items}
}

// Map describes a string-keyed mapping with homogeneous values.
func Map(value gokata.Descriptor) gokata.Descriptor { return gokata.Mapping{Value: value} }

// Date describes a calendar-date temporal leaf.
func Date() gokata.Descriptor { return gokata.Temporal{Granularity: gokata.GranularityDate} }

// TimeOfDay describes a clock-time temporal leaf.
func TimeOfDay() gokata.Descriptor { return gokata.Temporal{Granularity: gokata.GranularityTime} }

// DateTime describes a full timestamp temporal leaf.
func DateTime() gokata.Descriptor { return gokata.Temporal{Granularity: gokata.GranularityDateTime} }

// Complex describes a complex128 leaf.
func Complex() gokata.Descriptor { return gokata.Complex{} }

// Bytes describes a []byte leaf.
func Bytes() gokata.Descriptor { return gokata.Bytes{} }

// Reduce describes a value reconstructible from one constructor argument.
// reducer extracts the argument on lowering; construct rebuilds the value on
// raising. The name doubles as the derivable union label.
func Reduce(name string, arg gokata.Descriptor, construct func(any) (any, error), reducer func(any) (any, error)) gokata.Descriptor {
	return gokata.Reduce{Name: name, Arg: arg, Construct: construct, Reducer: reducer}
}
