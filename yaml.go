package jpath

import "github.com/goccy/go-yaml"

// MarshalYAML implements yaml.InterfaceMarshaler, emitting the document as
// an order-preserving mapping.
func (d *Document) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, len(*d))
	for i, e := range *d {
		ms[i] = yaml.MapItem{Key: e.Key, Value: e.Value}
	}
	return ms, nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (a *Array) MarshalYAML() (any, error) {
	return []any(*a), nil
}

// DumpYAML serializes the underlying structure as YAML, preserving document
// key order. Serializer failures are returned unchanged.
func (n *Node) DumpYAML() ([]byte, error) {
	return yaml.Marshal(n.data)
}
