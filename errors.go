package gokata

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Descriptor validation (detected before any value is processed).
	CodeInvalidDescriptor = "invalid_descriptor"
	CodeAmbiguousUnion    = "ambiguous_union"
	// Lowering failures.
	CodeTypeMismatch = "type_mismatch"
	// Raising failures.
	CodeMalformedPrimitive = "malformed_primitive"
	CodeUnknownUnionLabel  = "unknown_union_label"
	CodeMissingField       = "missing_field"
	CodeUnexpectedField    = "unexpected_field"
	CodeUnknownEnumMember  = "unknown_enum_member"
)

// Issue represents a single codec failure.
type Issue struct {
	Path    string // JSON Pointer into the value/primitive tree (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, offending label, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"int","got":"string"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of codec errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. type_mismatch at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
