package value

func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Symbol is an opaque identity value. The platform has no structural
// equality for symbols, so two symbols are equal only when they are the
// same instance.
type Symbol struct {
	description string
}

func (s *Symbol) Kind() Kind {
	return SymbolKind
}

func (s *Symbol) NativeValue() any {
	return s
}

func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}
