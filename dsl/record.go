package dsl

import gokata "github.com/reoring/gokata"

type recordBuilder struct {
	name    string
	fields  []gokata.Field
	unknown gokata.UnknownPolicy
}

// Record creates a record builder with safe defaults (UnknownStrict). The
// name doubles as the derivable union label.
func Record(name string) *recordBuilder {
	return &recordBuilder{name: name, unknown: gokata.UnknownStrict}
}

// Field appends a named field in declared order.
func (b *recordBuilder) Field(name string, d gokata.Descriptor) *recordBuilder {
	b.fields = append(b.fields, gokata.Field{Name: name, Desc: d})
	return b
}

// UnknownStrict rejects unknown keys when raising (default).
func (b *recordBuilder) UnknownStrict() *recordBuilder {
	b.unknown = gokata.UnknownStrict
	return b
}

// UnknownStrip drops unknown keys when raising instead of rejecting them.
func (b *recordBuilder) UnknownStrip() *recordBuilder {
	b.unknown = gokata.UnknownStrip
	return b
}

// Build validates the record descriptor.
func (b *recordBuilder) Build() (gokata.Descriptor, error) {
	d := gokata.Record{Name: b.name, Fields: b.fields, Unknown: b.unknown}
	if err := gokata.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// MustBuild is Build, panicking on an invalid descriptor.
func (b *recordBuilder) MustBuild() gokata.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
