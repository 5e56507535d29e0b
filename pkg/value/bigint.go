package value

import (
	"encoding/json"
	"math/big"
)

func NewBigInt(i *big.Int) *BigInt {
	return &BigInt{i: i}
}

func NewBigIntFromInt64(i int64) *BigInt {
	return &BigInt{i: big.NewInt(i)}
}

type BigInt struct {
	i *big.Int
}

func (n *BigInt) Kind() Kind {
	return BigIntKind
}

func (n *BigInt) NativeValue() any {
	return n.i
}

func (n *BigInt) Int() *big.Int {
	return n.i
}

func (n *BigInt) String() string {
	return n.i.String()
}

func (n *BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(n.i.String()))
}
