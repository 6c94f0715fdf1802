package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case StringType:
		return strings.Compare(a.String, b.String)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Invalid < String < Object
func rank(t Type) int {
	switch t {
	case StringType:
		return 1
	case ObjectType:
		return 2
	default:
		return 0
	}
}

// compareObjects compares field by field in insertion order, so two
// objects with the same keys in a different order are not equal.
func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := strings.Compare(a.Fields[i], b.Fields[i]); d != 0 {
			return d
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}
