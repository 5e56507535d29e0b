package value

import (
	"errors"
	"fmt"
)

// Every failure condition is a distinct error value or type. Message
// text is part of the observable contract and matches the original
// implementation verbatim.
var (
	ErrUndefinedAdd    = errors.New("Cannot add undefined values.")
	ErrMixedBigInt     = errors.New("Cannot mix bigint and other types in addition.")
	ErrNotBoolean      = errors.New("Argument is not a boolean.")
	ErrNumericParse    = errors.New("Cannot convert string to number.")
	ErrUndefinedNumber = errors.New("Cannot convert undefined to number.")
	ErrObjectNumber    = errors.New("Cannot convert object to number.")
	ErrSymbolCoercion  = errors.New("Cannot coerce to symbol unless value is already a symbol.")
)

// TypeMismatchError reports an additive combination over operands that
// have no defined combination, naming both platform type names.
type TypeMismatchError struct {
	Left  string
	Right string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Cannot add values of type %q and %q.", e.Left, e.Right)
}

// UnsupportedTypeError reports a numeric conversion of a kind that has
// no numeric form at all, such as symbol or function.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Cannot convert type %q to number.", e.TypeName)
}

type NumericCoercionError struct {
	Value string
}

func (e *NumericCoercionError) Error() string {
	return fmt.Sprintf("Cannot coerce value to number: %s", e.Value)
}

type BigIntCoercionError struct {
	Value string
}

func (e *BigIntCoercionError) Error() string {
	return fmt.Sprintf("Cannot coerce value to bigint: %s", e.Value)
}

type ObjectCoercionError struct {
	TypeName string
}

func (e *ObjectCoercionError) Error() string {
	return fmt.Sprintf("Cannot coerce value of type %q to object.", e.TypeName)
}

type UndefinedCoercionError struct {
	TypeName string
}

func (e *UndefinedCoercionError) Error() string {
	return fmt.Sprintf("Cannot coerce value of type %q to undefined.", e.TypeName)
}

type UnsupportedTargetTypeError struct {
	Target Kind
}

func (e *UnsupportedTargetTypeError) Error() string {
	return fmt.Sprintf("Unsupported target type: %q.", string(e.Target))
}
