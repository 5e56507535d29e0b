// Package value implements a kind-tagged dynamic value system with the
// loose conversion semantics of a dynamically typed platform: additive
// combination, stringification, numeric conversion, boolean inversion,
// generic coercion and loose/strict equality. Values are classified once
// by New and every operation dispatches on the resulting Kind.
package value

const (
	NullKind      = Kind("null")
	UndefinedKind = Kind("undefined")
	BoolKind      = Kind("boolean")
	NumberKind    = Kind("number")
	BigIntKind    = Kind("bigint")
	StringKind    = Kind("string")
	SymbolKind    = Kind("symbol")
	ArrayKind     = Kind("array")
	ObjectKind    = Kind("object")
	FuncKind      = Kind("function")
)

var Kinds = []Kind{
	NullKind,
	UndefinedKind,
	BoolKind,
	NumberKind,
	BigIntKind,
	StringKind,
	SymbolKind,
	ArrayKind,
	ObjectKind,
	FuncKind,
}

type Kind string

type Value interface {
	Kind() Kind
	NativeValue() any
}

// TypeName reports the platform type name of a value as used in error
// messages. Null and arrays both report "object"; there is no special
// case for either, matching the platform's typeof operator.
func TypeName(v Value) string {
	switch v.Kind() {
	case NullKind, ArrayKind:
		return string(ObjectKind)
	}
	return string(v.Kind())
}

// IsSimpleKind reports whether a kind is a primitive, meaning anything
// other than an array, object or function.
func IsSimpleKind(kind Kind) bool {
	switch kind {
	case ArrayKind, ObjectKind, FuncKind:
		return false
	}
	return true
}
