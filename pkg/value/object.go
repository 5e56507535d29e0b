package value

import (
	"bytes"
	"encoding/json"
	"sort"
)

// NewObject wraps a native map with sorted keys. The map itself is
// retained so strict equality can compare identity.
func NewObject(data map[string]any) *Object {
	o := &Object{ref: data}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		o.entries = append(o.entries, Entry{
			Key:   key,
			Value: New(data[key]),
		})
	}

	return o
}

type Object struct {
	entries []Entry
	ref     any
}

type Entry struct {
	Key   string
	Value Value
}

func (n *Object) Kind() Kind {
	return ObjectKind
}

func (n *Object) NativeValue() any {
	result := map[string]any{}
	for _, entry := range n.entries {
		switch entry.Value.Kind() {
		case FuncKind, SymbolKind, UndefinedKind:
			continue
		}
		result[entry.Key] = entry.Value.NativeValue()
	}
	return result
}

func (n *Object) Entries() []Entry {
	return n.entries
}

func (n *Object) Keys() []string {
	result := make([]string, 0, len(n.entries))
	for _, entry := range n.entries {
		result = append(result, entry.Key)
	}
	return result
}

func (n *Object) LookupValue(key string) (Value, bool) {
	for _, e := range n.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (n *Object) String() string {
	return "[object Object]"
}

// MarshalJSON encodes entries in order, silently omitting function,
// symbol and undefined valued members per structured-data serialization
// rules.
func (n *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	for _, entry := range n.entries {
		switch entry.Value.Kind() {
		case FuncKind, SymbolKind, UndefinedKind:
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		data, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
