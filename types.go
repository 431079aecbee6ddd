package gokata

// UnknownPolicy controls how unknown keys in a raised record or signature
// mapping are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// NumberMode dictates how format backends hand numbers to the raising engine.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default; lossless ints).
	NumberFloat64                      // Fast mode (with potential precision loss).
)

// WireOpt parameterizes the primitive domain per backend. It is consulted only
// for Temporal descriptors; every other shape is backend-independent.
type WireOpt struct {
	// TemporalAsNative passes time.Time through as a backend-native leaf.
	// When false, temporal values are rendered as ISO-8601 strings on
	// lowering and parsed back on raising.
	TemporalAsNative bool
}
