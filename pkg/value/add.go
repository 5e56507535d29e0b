package value

import "math/big"

// Add combines two values with the platform's additive semantics.
// Branch order matters and is part of the contract:
//
//  1. two arrays concatenate
//  2. a plain object on either side is a type mismatch; an array paired
//     with a plain object lands here too, and both sides report their
//     platform type name, so the array side reports "object"
//  3. an undefined operand on either side fails
//  4. everything else follows native + dispatch: textual operands (and
//     arrays, whose primitive form is text) concatenate, bigints add
//     only to bigints, and the remaining primitives add numerically
//     with booleans as 0/1 and null as 0
func Add(left, right Value) (Value, error) {
	if left.Kind() == ArrayKind && right.Kind() == ArrayKind {
		return concat(left.(*Array), right.(*Array)), nil
	}

	if left.Kind() == ObjectKind || right.Kind() == ObjectKind {
		return nil, &TypeMismatchError{
			Left:  TypeName(left),
			Right: TypeName(right),
		}
	}

	if left.Kind() == UndefinedKind || right.Kind() == UndefinedKind {
		return nil, ErrUndefinedAdd
	}

	// Symbols and functions have no additive form. The original never
	// defines a combination for them, so they report as a mismatch.
	if !addable(left) || !addable(right) {
		return nil, &TypeMismatchError{
			Left:  TypeName(left),
			Right: TypeName(right),
		}
	}

	if left.Kind() == StringKind || right.Kind() == StringKind ||
		left.Kind() == ArrayKind || right.Kind() == ArrayKind {
		return String(Display(left) + Display(right)), nil
	}

	if left.Kind() == BigIntKind || right.Kind() == BigIntKind {
		lb, lok := left.(*BigInt)
		rb, rok := right.(*BigInt)
		if !lok || !rok {
			return nil, ErrMixedBigInt
		}
		return NewBigInt(new(big.Int).Add(lb.Int(), rb.Int())), nil
	}

	return addNumeric(left, right)
}

func addable(v Value) bool {
	switch v.Kind() {
	case SymbolKind, FuncKind:
		return false
	}
	return true
}

func concat(left, right *Array) *Array {
	values := make([]Value, 0, len(left.values)+len(right.values))
	values = append(values, left.values...)
	values = append(values, right.values...)
	return MakeArray(values...)
}

// addNumeric adds number, boolean and null operands. Integer math is
// used when both sides parse as integers, float math otherwise.
func addNumeric(left, right Value) (Value, error) {
	ln := numericOperand(left)
	rn := numericOperand(right)

	li, lerr := ln.ToInt()
	ri, rerr := rn.ToInt()
	if lerr == nil && rerr == nil {
		return fromInt(li + ri), nil
	}

	lf, err := ln.ToFloat()
	if err != nil {
		return nil, err
	}
	rf, err := rn.ToFloat()
	if err != nil {
		return nil, err
	}
	return fromFloat(lf + rf), nil
}

func numericOperand(v Value) Number {
	switch x := v.(type) {
	case Number:
		return x
	case Boolean:
		if x {
			return Number("1")
		}
		return Number("0")
	}
	// null in a numeric context
	return Number("0")
}
