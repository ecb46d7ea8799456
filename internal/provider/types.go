package provider

import "slices"

// TypeNames is every elemental type name upstream may report, in the
// upstream's canonical order.
var TypeNames = []string{
	"normal",
	"fighting",
	"flying",
	"poison",
	"ground",
	"rock",
	"bug",
	"ghost",
	"steel",
	"fire",
	"water",
	"grass",
	"electric",
	"psychic",
	"ice",
	"dragon",
	"dark",
	"fairy",
	"stellar",
	"unknown",
}

// IsKnownType reports whether name is in TypeNames.
func IsKnownType(name string) bool {
	return slices.Contains(TypeNames, name)
}
