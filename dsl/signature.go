package dsl

import gokata "github.com/reoring/gokata"

type signatureBuilder struct {
	params  []gokata.Param
	unknown gokata.UnknownPolicy
}

type paramStep struct {
	b *signatureBuilder
}

// Signature creates a call-signature builder with safe defaults
// (UnknownStrict; parameters required unless marked Optional).
func Signature() *signatureBuilder {
	return &signatureBuilder{unknown: gokata.UnknownStrict}
}

// Param appends a parameter in declared order, required by default.
func (b *signatureBuilder) Param(name string, d gokata.Descriptor) *paramStep {
	b.params = append(b.params, gokata.Param{Name: name, Desc: d, Required: true})
	return &paramStep{b: b}
}

// Optional marks the parameter as omittable when it has no bound value.
func (s *paramStep) Optional() *signatureBuilder {
	s.b.params[len(s.b.params)-1].Required = false
	return s.b
}

// Required marks the parameter as required (the default).
func (s *paramStep) Required() *signatureBuilder {
	s.b.params[len(s.b.params)-1].Required = true
	return s.b
}

func (s *paramStep) Param(name string, d gokata.Descriptor) *paramStep { return s.b.Param(name, d) }
func (s *paramStep) UnknownStrip() *signatureBuilder                   { return s.b.UnknownStrip() }
func (s *paramStep) Build() (gokata.Descriptor, error)                 { return s.b.Build() }
func (s *paramStep) MustBuild() gokata.Descriptor                      { return s.b.MustBuild() }

// UnknownStrip drops unknown argument names when raising instead of
// rejecting them.
func (b *signatureBuilder) UnknownStrip() *signatureBuilder {
	b.unknown = gokata.UnknownStrip
	return b
}

// Build validates the signature descriptor.
func (b *signatureBuilder) Build() (gokata.Descriptor, error) {
	d := gokata.Signature{Params: b.params, Unknown: b.unknown}
	if err := gokata.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// MustBuild is Build, panicking on an invalid descriptor.
func (b *signatureBuilder) MustBuild() gokata.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
