package value

import (
	"fmt"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceToString(t *testing.T) {
	tests := []struct {
		val    any
		expect autogold.Value
	}{
		{val: 123, expect: autogold.Expect("123")},
		{val: 45.67, expect: autogold.Expect("45.67")},
		{val: true, expect: autogold.Expect("true")},
		{val: nil, expect: autogold.Expect("null")},
		{val: NewUndefined(), expect: autogold.Expect("undefined")},
		{val: []any{1, 2, nil, "x"}, expect: autogold.Expect("1,2,,x")},
		{val: map[string]any{"a": 1}, expect: autogold.Expect("[object Object]")},
		{val: NewSymbol("desc"), expect: autogold.Expect("Symbol(desc)")},
		{val: NewBigIntFromInt64(9), expect: autogold.Expect("9")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v, err := Coerce(New(test.val), StringKind)
			require.NoError(t, err)
			test.expect.Equal(t, v.NativeValue())
		})
	}
}

func TestCoerceToNumber(t *testing.T) {
	tests := []struct {
		val    any
		expect autogold.Value
	}{
		{val: "", expect: autogold.Expect(int64(0))},
		{val: " 12 ", expect: autogold.Expect(int64(12))},
		{val: "12.5", expect: autogold.Expect(12.5)},
		{val: true, expect: autogold.Expect(int64(1))},
		{val: nil, expect: autogold.Expect(int64(0))},
		{val: []any{}, expect: autogold.Expect(int64(0))},
		{val: []any{5}, expect: autogold.Expect(int64(5))},
		{val: NewBigIntFromInt64(3), expect: autogold.Expect(int64(3))},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v, err := Coerce(New(test.val), NumberKind)
			require.NoError(t, err)
			test.expect.Equal(t, v.NativeValue())
		})
	}
}

func TestCoerceToNumberErrors(t *testing.T) {
	tests := []struct {
		val     any
		message string
	}{
		{val: "abc", message: "Cannot coerce value to number: abc"},
		{val: map[string]any{}, message: "Cannot coerce value to number: [object Object]"},
		{val: []any{1, 2}, message: "Cannot coerce value to number: 1,2"},
		{val: NewUndefined(), message: "Cannot coerce value to number: undefined"},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			_, err := Coerce(New(test.val), NumberKind)
			require.EqualError(t, err, test.message)
		})
	}
}

// Boolean coercion is total: it never fails, for any input kind.
func TestCoerceToBool(t *testing.T) {
	tests := []struct {
		val    any
		expect bool
	}{
		{val: false, expect: false},
		{val: "", expect: false},
		{val: 0, expect: false},
		{val: Number("NaN"), expect: false},
		{val: nil, expect: false},
		{val: NewUndefined(), expect: false},
		{val: NewBigIntFromInt64(0), expect: false},
		{val: true, expect: true},
		{val: "0", expect: true},
		{val: " ", expect: true},
		{val: 1, expect: true},
		{val: []any{}, expect: true},
		{val: map[string]any{}, expect: true},
		{val: NewSymbol(""), expect: true},
		{val: NewFunc(func() {}), expect: true},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v, err := Coerce(New(test.val), BoolKind)
			require.NoError(t, err)
			assert.Equal(t, test.expect, bool(v.(Boolean)))
		})
	}
}

func TestCoerceToBigInt(t *testing.T) {
	tests := []struct {
		val    any
		expect string
	}{
		{val: "123", expect: "123"},
		{val: 42, expect: "42"},
		{val: 7.0, expect: "7"},
		{val: true, expect: "1"},
		{val: "", expect: "0"},
		{val: "123456789012345678901234567890", expect: "123456789012345678901234567890"},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v, err := Coerce(New(test.val), BigIntKind)
			require.NoError(t, err)
			assert.Equal(t, test.expect, Display(v))
		})
	}
}

func TestCoerceToBigIntErrors(t *testing.T) {
	tests := []struct {
		val     any
		message string
	}{
		{val: "123.45", message: "Cannot coerce value to bigint: 123.45"},
		{val: 42.5, message: "Cannot coerce value to bigint: 42.5"},
		{val: nil, message: "Cannot coerce value to bigint: null"},
		{val: map[string]any{}, message: "Cannot coerce value to bigint: [object Object]"},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			_, err := Coerce(New(test.val), BigIntKind)
			require.EqualError(t, err, test.message)
		})
	}
}

func TestCoerceToObject(t *testing.T) {
	for _, val := range []any{nil, map[string]any{"a": 1}, []any{1}} {
		in := New(val)
		out, err := Coerce(in, ObjectKind)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	_, err := Coerce(New(5), ObjectKind)
	require.EqualError(t, err, `Cannot coerce value of type "number" to object.`)
	_, err = Coerce(New("x"), ObjectKind)
	require.EqualError(t, err, `Cannot coerce value of type "string" to object.`)
}

func TestCoerceToSymbol(t *testing.T) {
	sym := NewSymbol("x")
	out, err := Coerce(sym, SymbolKind)
	require.NoError(t, err)
	assert.Equal(t, Value(sym), out)

	_, err = Coerce(New(5), SymbolKind)
	require.ErrorIs(t, err, ErrSymbolCoercion)
	require.EqualError(t, err, "Cannot coerce to symbol unless value is already a symbol.")
}

func TestCoerceToUndefined(t *testing.T) {
	in := NewUndefined()
	out, err := Coerce(in, UndefinedKind)
	require.NoError(t, err)
	assert.Equal(t, Value(in), out)

	// the platform reports null's category as "object"
	_, err = Coerce(NewNull(), UndefinedKind)
	require.EqualError(t, err, `Cannot coerce value of type "object" to undefined.`)
	_, err = Coerce(New(true), UndefinedKind)
	require.EqualError(t, err, `Cannot coerce value of type "boolean" to undefined.`)
}

func TestCoerceUnsupportedTarget(t *testing.T) {
	_, err := Coerce(New(5), FuncKind)
	require.EqualError(t, err, `Unsupported target type: "function".`)
	_, err = Coerce(New(5), Kind("wat"))
	require.EqualError(t, err, `Unsupported target type: "wat".`)
}
