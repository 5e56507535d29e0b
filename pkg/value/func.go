package value

func NewFunc(fn any) *Func {
	return &Func{fn: fn}
}

type Func struct {
	fn any
}

func (f *Func) Kind() Kind {
	return FuncKind
}

func (f *Func) NativeValue() any {
	return f.fn
}

func (f *Func) String() string {
	return "function () {}"
}
