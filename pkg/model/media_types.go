package model

import "slices"

// MediaTypes is an insertion-ordered set of media type strings. The zero
// value is an empty set ready to use.
type MediaTypes []string

// Add appends every value not already present.
func (m *MediaTypes) Add(values ...string) {
	for _, v := range values {
		if !m.Contains(v) {
			*m = append(*m, v)
		}
	}
}

func (m MediaTypes) Contains(v string) bool {
	return slices.Contains(m, v)
}

func (m MediaTypes) Len() int {
	return len(m)
}

// Values returns a copy of the members in insertion order.
func (m MediaTypes) Values() []string {
	return slices.Clone([]string(m))
}

// Equal reports set equality, ignoring order.
func (m MediaTypes) Equal(o MediaTypes) bool {
	if len(m) != len(o) {
		return false
	}
	for _, v := range m {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}
