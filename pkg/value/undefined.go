package value

func NewUndefined() *Undefined {
	return &Undefined{}
}

// Undefined is the absent-value kind. It is a distinct kind from Null:
// null is an explicit empty marker, undefined means no value at all.
type Undefined struct {
}

func (n *Undefined) Kind() Kind {
	return UndefinedKind
}

func (n *Undefined) NativeValue() any {
	return n
}

func (n *Undefined) String() string {
	return "undefined"
}
