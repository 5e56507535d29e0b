package value

import (
	"encoding/json"
	"fmt"
)

// Display renders a value as the platform's default display text: the
// String(value) form, not structured-data encoding. Arrays join their
// elements with commas, objects render as "[object Object]".
func Display(v Value) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v.NativeValue())
}

// Stringify renders a value as text. Primitives use their display form,
// arrays and objects use compact structured-data encoding. A bare
// function has no structured-data representation, reported through
// ok=false rather than an error.
func Stringify(v Value) (string, bool, error) {
	switch v.Kind() {
	case FuncKind:
		return "", false, nil
	case ArrayKind, ObjectKind:
		data, err := json.Marshal(v)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	}
	return Display(v), true, nil
}
