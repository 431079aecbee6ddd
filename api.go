package gokata

import "context"

// Codec is a validated, immutable lower/raise handle for one descriptor and
// one wire option set. It holds no mutable state: concurrent calls need no
// synchronization, and every call allocates a fresh result tree.
type Codec struct {
	desc Descriptor
	opt  WireOpt
}

// Compile validates d once and returns a reusable Codec. Validation happens
// before any value is processed; an invalid descriptor never reaches the
// engines.
func Compile(d Descriptor, opt WireOpt) (*Codec, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return &Codec{desc: d, opt: opt}, nil
}

// MustCompile is Compile, panicking on an invalid descriptor. Intended for
// descriptors constructed at program start.
func MustCompile(d Descriptor, opt WireOpt) *Codec {
	c, err := Compile(d, opt)
	if err != nil {
		panic(err)
	}
	return c
}

// Descriptor returns the descriptor the codec was compiled from.
func (c *Codec) Descriptor() Descriptor { return c.desc }

// Opt returns the wire options the codec was compiled with.
func (c *Codec) Opt() WireOpt { return c.opt }

// Lower converts a typed value into its primitive-domain form.
func (c *Codec) Lower(ctx context.Context, v any) (any, error) {
	return lowerValue(ctx, v, c.desc, c.opt, "")
}

// Raise converts a primitive-domain tree back into a typed value.
func (c *Codec) Raise(ctx context.Context, p any) (any, error) {
	return raiseValue(ctx, p, c.desc, c.opt, "")
}

// Lower compiles d with the default wire options (temporal values as
// ISO-8601 strings) and lowers v in one call. Prefer Compile when the same
// descriptor is used repeatedly.
func Lower(ctx context.Context, v any, d Descriptor) (any, error) {
	c, err := Compile(d, WireOpt{})
	if err != nil {
		return nil, err
	}
	return c.Lower(ctx, v)
}

// Raise compiles d with the default wire options and raises p in one call.
func Raise(ctx context.Context, p any, d Descriptor) (any, error) {
	c, err := Compile(d, WireOpt{})
	if err != nil {
		return nil, err
	}
	return c.Raise(ctx, p)
}
