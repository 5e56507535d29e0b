package value

import (
	"math"
	"math/big"
	"reflect"
)

// StrictEqual compares kind and value with no coercion. NaN never equals
// itself; arrays, objects and functions compare by reference identity.
func StrictEqual(left, right Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *Null, *Undefined:
		return true
	case Boolean:
		return l == right.(Boolean)
	case String:
		return l == right.(String)
	case Number:
		return numbersEqual(l, right.(Number))
	case *BigInt:
		return l.Int().Cmp(right.(*BigInt).Int()) == 0
	case *Symbol:
		return l == right.(*Symbol)
	case *Array:
		return sameRef(l.ref, right.(*Array).ref)
	case *Object:
		return sameRef(l.ref, right.(*Object).ref)
	case *Func:
		return sameRef(l.fn, right.(*Func).fn)
	}
	return false
}

// LooseEqual compares with the platform's coercing equality: null equals
// undefined, text and numbers compare numerically, booleans coerce to
// numbers, and composite values compare through their primitive form.
func LooseEqual(left, right Value) bool {
	lk, rk := left.Kind(), right.Kind()

	if lk == rk {
		return StrictEqual(left, right)
	}

	if nullish(lk) && nullish(rk) {
		return true
	}
	if nullish(lk) || nullish(rk) {
		return false
	}

	// booleans coerce to numbers first
	if lk == BoolKind {
		return LooseEqual(numericOperand(left), right)
	}
	if rk == BoolKind {
		return LooseEqual(left, numericOperand(right))
	}

	// composite values compare through their primitive (display) form
	if lk == ArrayKind || lk == ObjectKind {
		return LooseEqual(String(Display(left)), right)
	}
	if rk == ArrayKind || rk == ObjectKind {
		return LooseEqual(left, String(Display(right)))
	}

	switch {
	case lk == NumberKind && rk == StringKind:
		n, ok := coerceNumber(right)
		return ok && numbersEqual(left.(Number), n)
	case lk == StringKind && rk == NumberKind:
		n, ok := coerceNumber(left)
		return ok && numbersEqual(n, right.(Number))
	case lk == BigIntKind && rk == StringKind:
		b, ok := coerceBigInt(right)
		return ok && left.(*BigInt).Int().Cmp(b.Int()) == 0
	case lk == StringKind && rk == BigIntKind:
		b, ok := coerceBigInt(left)
		return ok && b.Int().Cmp(right.(*BigInt).Int()) == 0
	case lk == BigIntKind && rk == NumberKind:
		return bigIntEqualsNumber(left.(*BigInt), right.(Number))
	case lk == NumberKind && rk == BigIntKind:
		return bigIntEqualsNumber(right.(*BigInt), left.(Number))
	}

	return false
}

func nullish(k Kind) bool {
	return k == NullKind || k == UndefinedKind
}

func numbersEqual(left, right Number) bool {
	lf, lerr := left.ToFloat()
	rf, rerr := right.ToFloat()
	if lerr != nil || rerr != nil {
		return false
	}
	if math.IsNaN(lf) || math.IsNaN(rf) {
		return false
	}
	return lf == rf
}

func bigIntEqualsNumber(b *BigInt, n Number) bool {
	f, err := n.ToFloat()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return new(big.Float).SetFloat64(f).Cmp(new(big.Float).SetInt(b.Int())) == 0
}

// sameRef reports whether two native references point at the same slice,
// map or function.
func sameRef(left, right any) bool {
	if left == nil || right == nil {
		return false
	}
	lv, rv := reflect.ValueOf(left), reflect.ValueOf(right)
	if lv.Kind() != rv.Kind() {
		return false
	}
	switch lv.Kind() {
	case reflect.Slice:
		return lv.Pointer() == rv.Pointer() && lv.Len() == rv.Len()
	case reflect.Map, reflect.Func:
		return lv.Pointer() == rv.Pointer()
	}
	return false
}
