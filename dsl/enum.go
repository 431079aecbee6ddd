package dsl

import gokata "github.com/reoring/gokata"

type enumBuilder struct {
	name    string
	members []gokata.EnumMember
}

// Enum creates an enumeration builder. The name doubles as the derivable
// union label.
func Enum(name string) *enumBuilder {
	return &enumBuilder{name: name}
}

// Member appends a named member with its underlying value.
func (b *enumBuilder) Member(name string, value any) *enumBuilder {
	b.members = append(b.members, gokata.EnumMember{Name: name, Value: value})
	return b
}

// Build validates the enumeration descriptor.
func (b *enumBuilder) Build() (gokata.Descriptor, error) {
	d := gokata.Enum{Name: b.name, Members: b.members}
	if err := gokata.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// MustBuild is Build, panicking on an invalid descriptor.
func (b *enumBuilder) MustBuild() gokata.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
