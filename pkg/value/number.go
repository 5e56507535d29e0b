package value

import (
	"encoding/json"
	"math"
	"strconv"
)

// Number is string backed, in the style of json.Number, so the
// integer/fractional distinction of the source text survives conversion.
type Number string

func (n Number) Kind() Kind {
	return NumberKind
}

// NativeValue returns an int64 when the number is integral, otherwise a
// float64. NaN and infinities come back as float64.
func (n Number) NativeValue() any {
	if i, err := n.ToInt(); err == nil {
		return i
	}
	f, _ := n.ToFloat()
	return f
}

func (n Number) String() string {
	return (string)(n)
}

func (n Number) ToInt() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

func (n Number) ToFloat() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

func (n Number) IsNaN() bool {
	f, err := n.ToFloat()
	return err != nil || math.IsNaN(f)
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(n))
}

func fromFloat(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func fromInt(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}
