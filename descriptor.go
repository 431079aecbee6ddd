package gokata

// Descriptor is an immutable, recursively-defined description of a type. The
// variant set is closed: only the types in this file implement it, and both
// engines dispatch on it exhaustively. Descriptor trees must be finite and
// acyclic.
type Descriptor interface {
	isDescriptor()
}

// PrimKind enumerates the primitive leaf kinds.
type PrimKind int

const (
	KindInt PrimKind = iota
	KindFloat
	KindBool
	KindString
)

// String returns the unqualified kind name ("int", "float", "bool", "str").
func (k PrimKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	default:
		return "unknown"
	}
}

// Granularity selects which portion of a temporal value is significant.
type Granularity int

const (
	GranularityDate Granularity = iota
	GranularityTime
	GranularityDateTime
)

func (g Granularity) String() string {
	switch g {
	case GranularityDate:
		return "date"
	case GranularityTime:
		return "time"
	case GranularityDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Primitive describes a scalar of one kind. The value domain is int64 (int
// and int32 are accepted on lowering), float64, bool and string.
type Primitive struct {
	Kind PrimKind
}

// Literal describes a finite set of allowed primitive values of one kind.
type Literal struct {
	Values []any
}

// Optional describes a value that is either absent (lowered to null) or
// conforms to Inner. It behaves like a two-alternative union {null, Inner}
// with a reserved label for null, special-cased so absent values lower to a
// bare null rather than a wrapped mapping.
type Optional struct {
	Inner Descriptor
}

// Alternative is one arm of a Union together with its discriminator label.
// An empty Label means the label is derived from the descriptor's own name
// at validation time (record/enum/reduction names, or the primitive kind
// name for Primitive alternatives).
type Alternative struct {
	Label string
	Desc  Descriptor
}

// Union describes an ordered set of alternative descriptors. Resolved labels
// must be pairwise distinct; validation fails otherwise.
type Union struct {
	Alternatives []Alternative
}

// Sequence describes either a homogeneous list (Element set, FixedArity nil)
// or a fixed-length heterogeneous tuple (FixedArity set, Element nil).
type Sequence struct {
	Element    Descriptor
	FixedArity []Descriptor
}

// Mapping describes a string-keyed map. Keys are always strings and pass
// through unchanged; only values are transformed.
type Mapping struct {
	Value Descriptor
}

// Field is a named, typed attribute of a Record.
type Field struct {
	Name string
	Desc Descriptor
}

// Record describes a structured aggregate with named, typed attributes in
// declared order. A field whose descriptor is Optional may be absent from the
// raised mapping; any other missing field is an error. Unknown keys are
// rejected under UnknownStrict and dropped under UnknownStrip.
type Record struct {
	Name    string
	Fields  []Field
	Unknown UnknownPolicy
}

// EnumMember is a named member of an Enum with its underlying value.
type EnumMember struct {
	Name  string
	Value any
}

// Enum describes an enumeration. The value domain is the member's underlying
// value; the lowered form is the member's name.
type Enum struct {
	Name    string
	Members []EnumMember
}

// Temporal describes a date, time-of-day or datetime leaf carried as
// time.Time. Whether it lowers to a native leaf or an ISO-8601 string is
// decided by WireOpt.
type Temporal struct {
	Granularity Granularity
}

// Complex describes a complex128. A value with zero imaginary part lowers to
// a bare float; otherwise to a {"real", "imag"} mapping.
type Complex struct{}

// Bytes describes a []byte. Valid UTF-8 lowers to "utf8:<text>"; anything
// else to base85 over an alphabet that excludes ':', keeping the two forms
// distinguishable.
type Bytes struct{}

// Param is one parameter of a Signature.
type Param struct {
	Name     string
	Desc     Descriptor
	Required bool
}

// Signature describes a bound set of call arguments, lowered to a record
// keyed by parameter name. Parameters with no bound value may be omitted only
// when not required.
type Signature struct {
	Params  []Param
	Unknown UnknownPolicy
}

// Reduce describes an object fully reconstructible from one constructor
// argument. Reducer extracts that argument on lowering; Construct rebuilds
// the value on raising. The lowered primitive carries no type tag, so
// round-tripping relies entirely on the descriptor supplied at raise time.
type Reduce struct {
	Name      string
	Arg       Descriptor
	Construct func(arg any) (any, error)
	Reducer   func(v any) (any, error)
}

func (Primitive) isDescriptor() {}
func (Literal) isDescriptor()   {}
func (Optional) isDescriptor()  {}
func (Union) isDescriptor()     {}
func (Sequence) isDescriptor()  {}
func (Mapping) isDescriptor()   {}
func (Record) isDescriptor()    {}
func (Enum) isDescriptor()      {}
func (Temporal) isDescriptor()  {}
func (Complex) isDescriptor()   {}
func (Bytes) isDescriptor()     {}
func (Signature) isDescriptor() {}
func (Reduce) isDescriptor()    {}
