package value

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKinds(t *testing.T) {
	tests := []struct {
		val    any
		expect Kind
	}{
		{val: nil, expect: NullKind},
		{val: true, expect: BoolKind},
		{val: "x", expect: StringKind},
		{val: 3, expect: NumberKind},
		{val: 3.5, expect: NumberKind},
		{val: int64(9), expect: NumberKind},
		{val: uint8(9), expect: NumberKind},
		{val: big.NewInt(3), expect: BigIntKind},
		{val: []any{1}, expect: ArrayKind},
		{val: map[string]any{"a": 1}, expect: ObjectKind},
		{val: func() {}, expect: FuncKind},
		{val: NewUndefined(), expect: UndefinedKind},
		{val: NewSymbol("x"), expect: SymbolKind},
		// unknown types reduce through a JSON round trip
		{val: struct{ A int }{A: 1}, expect: ObjectKind},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			assert.Equal(t, test.expect, New(test.val).Kind())
		})
	}
}

// Null and arrays report the platform type name "object"; everything
// else reports its own kind.
func TestTypeName(t *testing.T) {
	assert.Equal(t, "object", TypeName(NewNull()))
	assert.Equal(t, "object", TypeName(New([]any{1})))
	assert.Equal(t, "object", TypeName(New(map[string]any{})))
	assert.Equal(t, "boolean", TypeName(New(true)))
	assert.Equal(t, "number", TypeName(New(1)))
	assert.Equal(t, "string", TypeName(New("x")))
	assert.Equal(t, "undefined", TypeName(NewUndefined()))
	assert.Equal(t, "symbol", TypeName(NewSymbol("x")))
	assert.Equal(t, "function", TypeName(NewFunc(func() {})))
	assert.Equal(t, "bigint", TypeName(NewBigIntFromInt64(1)))
}

func TestValuePassThrough(t *testing.T) {
	v := New("x")
	assert.Equal(t, v, New(v))
}
