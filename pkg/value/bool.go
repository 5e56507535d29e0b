package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

type Boolean bool

func (n Boolean) Kind() Kind {
	return BoolKind
}

func (n Boolean) NativeValue() any {
	return (bool)(n)
}

func (n Boolean) String() string {
	if n {
		return "true"
	}
	return "false"
}

// Not negates a boolean value. Every other kind is rejected, including
// 0/1 and the strings "true"/"false".
func Not(v Value) (Value, error) {
	b, ok := v.(Boolean)
	if !ok {
		return nil, ErrNotBoolean
	}
	return !b, nil
}
