package dsl

import gokata "github.com/reoring/gokata"

// Union describes an ordered set of alternatives. Labels resolve at
// validation time; see Variant and VariantLabeled.
func Union(alts ...gokata.Alternative) gokata.Descriptor {
	return gokata.Union{Alternatives: alts}
}

// Variant is a union alternative whose label derives from the descriptor's
// own name (record/enum/reduction names, or the primitive kind name).
func Variant(d gokata.Descriptor) gokata.Alternative {
	return gokata.Alternative{Desc: d}
}

// VariantLabeled attaches an explicit discriminator label to an alternative
// without altering the alternative's own type.
func VariantLabeled(label string, d gokata.Descriptor) gokata.Alternative {
	return gokata.Alternative{Label: label, Desc: d}
}
