package value

import (
	"math"
	"math/big"
	"strings"
)

// Coerce converts a value to the target kind. String and boolean targets
// are total; every other target has an explicit failure mode.
func Coerce(v Value, target Kind) (Value, error) {
	switch target {
	case StringKind:
		return String(Display(v)), nil
	case NumberKind:
		n, ok := coerceNumber(v)
		if !ok {
			return nil, &NumericCoercionError{Value: Display(v)}
		}
		return n, nil
	case BoolKind:
		return Boolean(Truthy(v)), nil
	case BigIntKind:
		b, ok := coerceBigInt(v)
		if !ok {
			return nil, &BigIntCoercionError{Value: Display(v)}
		}
		return b, nil
	case ObjectKind:
		switch v.Kind() {
		case NullKind, ObjectKind, ArrayKind:
			return v, nil
		}
		return nil, &ObjectCoercionError{TypeName: TypeName(v)}
	case SymbolKind:
		if v.Kind() == SymbolKind {
			return v, nil
		}
		return nil, ErrSymbolCoercion
	case UndefinedKind:
		if v.Kind() == UndefinedKind {
			return v, nil
		}
		return nil, &UndefinedCoercionError{TypeName: TypeName(v)}
	}
	return nil, &UnsupportedTargetTypeError{Target: target}
}

// Truthy reports the boolean coercion of a value. The falsy values are
// false, empty text, 0, NaN, 0n, null and undefined.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Boolean:
		return bool(x)
	case String:
		return len(x) > 0
	case Number:
		f, err := x.ToFloat()
		return err == nil && f != 0 && !math.IsNaN(f)
	case *BigInt:
		return x.Int().Sign() != 0
	case *Null, *Undefined:
		return false
	}
	return true
}

// coerceBigInt builds a big integer from an integer-valued number,
// integer-looking text or a boolean. Fractional values and composite
// kinds fail.
func coerceBigInt(v Value) (*BigInt, bool) {
	switch x := v.(type) {
	case *BigInt:
		return x, true
	case Number:
		if i, err := x.ToInt(); err == nil {
			return NewBigIntFromInt64(i), true
		}
		f, err := x.ToFloat()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, false
		}
		i, _ := new(big.Float).SetFloat64(f).Int(nil)
		return NewBigInt(i), true
	case String:
		s := strings.TrimSpace(string(x))
		if s == "" {
			return NewBigIntFromInt64(0), true
		}
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, false
		}
		return NewBigInt(i), true
	case Boolean:
		if x {
			return NewBigIntFromInt64(1), true
		}
		return NewBigIntFromInt64(0), true
	}
	return nil, false
}
