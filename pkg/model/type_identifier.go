package model

import (
	"strconv"
	"sync/atomic"
)

// Common JVM type signatures.
const (
	JavaObject    = "Ljava/lang/Object;"
	JavaString    = "Ljava/lang/String;"
	JavaInteger   = "Ljava/lang/Integer;"
	JavaLong      = "Ljava/lang/Long;"
	JavaBoolean   = "Ljava/lang/Boolean;"
	PrimitiveInt  = "I"
	PrimitiveLong = "J"
	PrimitiveBool = "Z"
)

var dynamicCounter atomic.Uint64

// TypeIdentifier is the canonical handle of a data type. Identifiers are plain
// values: two identifiers created from the same type name compare equal with ==.
type TypeIdentifier struct {
	typ  string
	name string
}

// OfType returns the identifier for the given type signature.
func OfType(typ string) TypeIdentifier {
	return TypeIdentifier{typ: typ, name: typ}
}

// OfDynamic returns a fresh identifier for a type that is only known at
// runtime. Every call yields a distinct identifier of type JavaObject.
func OfDynamic() TypeIdentifier {
	n := dynamicCounter.Add(1)
	return TypeIdentifier{typ: JavaObject, name: "$" + strconv.FormatUint(n, 10)}
}

func (t TypeIdentifier) Type() string { return t.typ }

// Name is the unique name of the identifier. It equals Type for identifiers
// created by OfType.
func (t TypeIdentifier) Name() string { return t.name }

func (t TypeIdentifier) IsDynamic() bool {
	return t.name != t.typ
}

func (t TypeIdentifier) IsZero() bool {
	return t == TypeIdentifier{}
}

func (t TypeIdentifier) Equal(o TypeIdentifier) bool {
	return t == o
}

func (t TypeIdentifier) String() string {
	if t.IsDynamic() {
		return t.name + "(" + t.typ + ")"
	}
	return t.typ
}
