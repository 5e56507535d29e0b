package value

import (
	"bytes"
	"encoding/json"
	"math/big"
	"reflect"
	"strconv"
)

// New classifies a native Go value into its Kind and wraps it. Values
// that already implement Value pass through unchanged, so Undefined and
// Symbol sentinels survive a round trip. Unrecognized types are reduced
// through a JSON round trip; anything that cannot be represented at all
// classifies as undefined.
func New(v any) Value {
	switch x := v.(type) {
	case nil:
		return NewNull()
	case Value:
		return x
	case bool:
		return Boolean(x)
	case string:
		return String(x)
	case json.Number:
		return Number(x)
	case int:
		return Number(strconv.FormatInt(int64(x), 10))
	case int8:
		return Number(strconv.FormatInt(int64(x), 10))
	case int16:
		return Number(strconv.FormatInt(int64(x), 10))
	case int32:
		return Number(strconv.FormatInt(int64(x), 10))
	case int64:
		return Number(strconv.FormatInt(x, 10))
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return Number(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return Number(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return Number(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return Number(strconv.FormatUint(x, 10))
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case *big.Int:
		return NewBigInt(x)
	case big.Int:
		return NewBigInt(&x)
	case []any:
		return NewArray(x)
	case map[string]any:
		return NewObject(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return NewFunc(v)
	case reflect.Pointer:
		if rv.IsNil() {
			return NewNull()
		}
		return New(rv.Elem().Interface())
	}

	data, err := json.Marshal(v)
	if err != nil {
		return NewUndefined()
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return NewUndefined()
	}
	return New(out)
}
