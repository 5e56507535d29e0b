// Package transform exposes loose value-conversion utilities over plain
// Go values: additive combination, stringification, numeric conversion,
// boolean inversion, generic coercion, defensive structured-data parsing
// and a diagnostic equality report. All of the semantics live in
// pkg/value; this package classifies inputs, dispatches and unwraps
// results back to native Go values.
package transform

import (
	"encoding/json"
	"strings"

	"github.com/chanankuan/type-transform/pkg/value"
)

// Undefined is the absent-value sentinel. Pass it where the platform
// would pass undefined; nil always means null.
var Undefined = value.NewUndefined()

// AddValues combines two values with type-aware rules: arrays
// concatenate, plain objects fail, undefined operands fail, and
// primitives follow native additive dispatch.
func AddValues(left, right any) (any, error) {
	v, err := value.Add(value.New(left), value.New(right))
	if err != nil {
		return nil, err
	}
	return v.NativeValue(), nil
}

// StringifyValue renders a value as text. Primitives render as their
// display form, arrays and objects as compact structured-data text.
// ok=false means the value has no representation at all, which only
// happens for a bare function.
func StringifyValue(v any) (out string, ok bool, err error) {
	return value.Stringify(value.New(v))
}

// InvertBoolean negates a boolean. Every other category fails, including
// 0/1 and the strings "true"/"false".
func InvertBoolean(v any) (bool, error) {
	out, err := value.Not(value.New(v))
	if err != nil {
		return false, err
	}
	return bool(out.(value.Boolean)), nil
}

// ConvertToNumber converts a value to a number, returning an int64 for
// integral results and a float64 otherwise.
func ConvertToNumber(v any) (any, error) {
	out, err := value.ToNumber(value.New(v))
	if err != nil {
		return nil, err
	}
	return out.NativeValue(), nil
}

// CoerceToType converts a value to the named target type: one of
// "string", "number", "boolean", "bigint", "object", "symbol" or
// "undefined". Numbers come back as int64 or float64, bigints as
// *big.Int.
func CoerceToType(v any, target string) (any, error) {
	out, err := value.Coerce(value.New(v), value.Kind(target))
	if err != nil {
		return nil, err
	}
	return out.NativeValue(), nil
}

// SafeJSONParse decodes structured-data text, returning fallback on any
// decode failure instead of an error. Decoding is all or nothing;
// trailing garbage after a valid document counts as failure. Numbers
// decode as json.Number so the integer/fractional distinction survives.
func SafeJSONParse(s string, fallback any) any {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return fallback
	}
	if dec.More() {
		return fallback
	}
	return out
}

// ParanoidEquals reports both loose and strict equality between two
// values as diagnostic text, with a warning line when the two disagree
// because of coercion. It never fails.
func ParanoidEquals(left, right any) string {
	return value.Report(value.New(left), value.New(right))
}
