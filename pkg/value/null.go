package value

func NewNull() *Null {
	return &Null{}
}

type Null struct {
}

func (n *Null) Kind() Kind {
	return NullKind
}

func (n *Null) NativeValue() any {
	return nil
}

func (n *Null) String() string {
	return "null"
}

func (n *Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
