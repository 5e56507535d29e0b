package value

import (
	"encoding/json"
	"strings"
)

// NewArray wraps a native slice. The slice itself is retained so strict
// equality can compare identity the way the platform compares object
// references.
func NewArray(objs []any) *Array {
	values := make([]Value, 0, len(objs))
	for _, obj := range objs {
		values = append(values, New(obj))
	}
	return &Array{
		values: values,
		ref:    objs,
	}
}

func MakeArray(values ...Value) *Array {
	return &Array{values: values}
}

type Array struct {
	values []Value
	ref    any
}

func (a *Array) Kind() Kind {
	return ArrayKind
}

func (a *Array) NativeValue() any {
	result := make([]any, 0, len(a.values))
	for _, v := range a.values {
		result = append(result, v.NativeValue())
	}
	return result
}

func (a *Array) ToValues() []Value {
	return a.values
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) Index(idx int) (Value, bool) {
	if idx < 0 || idx >= len(a.values) {
		return nil, false
	}
	return a.values[idx], true
}

// String renders the platform's array display: elements joined with
// commas, null and undefined elements rendering as empty text.
func (a *Array) String() string {
	parts := make([]string, 0, len(a.values))
	for _, v := range a.values {
		switch v.Kind() {
		case NullKind, UndefinedKind:
			parts = append(parts, "")
		default:
			parts = append(parts, Display(v))
		}
	}
	return strings.Join(parts, ",")
}

// MarshalJSON follows structured-data serialization rules: function,
// symbol and undefined elements encode as null.
func (a *Array) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(a.values))
	for _, v := range a.values {
		switch v.Kind() {
		case FuncKind, SymbolKind, UndefinedKind:
			out = append(out, json.RawMessage("null"))
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			out = append(out, data)
		}
	}
	return json.Marshal(out)
}
