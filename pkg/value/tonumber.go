package value

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber converts a value to a Number with explicit failure modes.
// Strings parse through a leading numeric prefix, like the platform's
// parseInt/parseFloat pair: a string containing a decimal point parses
// fractionally, anything else parses as a base-10 integer.
func ToNumber(v Value) (Value, error) {
	switch v.Kind() {
	case NumberKind:
		return v, nil
	case StringKind:
		s := string(v.(String))
		if strings.Contains(s, ".") {
			f, ok := parseFloatPrefix(s)
			if !ok {
				return nil, ErrNumericParse
			}
			return fromFloat(f), nil
		}
		i, ok := parseIntPrefix(s)
		if !ok {
			return nil, ErrNumericParse
		}
		return fromInt(i), nil
	case BoolKind:
		return numericOperand(v), nil
	case NullKind:
		return Number("0"), nil
	case UndefinedKind:
		return nil, ErrUndefinedNumber
	case ObjectKind, ArrayKind:
		n, ok := coerceNumber(v)
		if !ok {
			return nil, ErrObjectNumber
		}
		return n, nil
	}
	return nil, &UnsupportedTypeError{TypeName: TypeName(v)}
}

// parseIntPrefix parses the longest leading base-10 integer, skipping
// leading whitespace, like parseInt.
func parseIntPrefix(s string) (int64, bool) {
	digits := numericPrefix(s, false)
	if digits == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// parseFloatPrefix parses the longest leading decimal number, skipping
// leading whitespace, like parseFloat.
func parseFloatPrefix(s string) (float64, bool) {
	digits := numericPrefix(s, true)
	if digits == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func numericPrefix(s string, fractional bool) string {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	seenDot := false
	seenDigit := false
	for end < len(s) {
		c := s[end]
		if c == '+' || c == '-' {
			if end != 0 {
				break
			}
		} else if c == '.' && fractional && !seenDot {
			seenDot = true
		} else if c >= '0' && c <= '9' {
			seenDigit = true
		} else {
			break
		}
		end++
	}
	if !seenDigit {
		return ""
	}
	return s[:end]
}

// coerceNumber applies the platform's generic Number(value) coercion.
// ok=false stands in for NaN.
func coerceNumber(v Value) (Number, bool) {
	switch x := v.(type) {
	case Number:
		return x, !x.IsNaN()
	case String:
		s := strings.TrimSpace(string(x))
		if s == "" {
			return Number("0"), true
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Number(s), true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return Number("NaN"), false
		}
		return fromFloat(f), true
	case Boolean:
		return numericOperand(v), true
	case *Null:
		return Number("0"), true
	case *BigInt:
		return Number(x.String()), true
	case *Array, *Object:
		// composite values coerce through their primitive (display) form
		return coerceNumber(String(Display(v)))
	}
	return Number("NaN"), false
}
