package jpath

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the full set of jpath unmarshalers allowing decoding
// into:
//   - any/interface{} -> objects as *Document, arrays as *Array, directive
//     objects dispatched through r
//   - *Document       -> direct ordered object decoding
//   - *Array          -> direct array decoding
//
// A nil Registry disables directive handling: every object decodes as a
// *Document.
func Unmarshalers(r *Registry) *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(r),
		unmarshalDocument(),
		unmarshalArray(),
	)
}

// unmarshalValue decodes into interface{} targets:
//   - Wraps JSON objects as *Document (ordered) rather than map[string]any
//   - Wraps JSON arrays as *Array so callers can distinguish from []any
//   - Detects directive objects of the form {"$<name>": <value>[, ...ignored...]}
//     and dispatches to the registered directive. Any extra fields after the
//     directive field are skipped.
//   - Leaves primitive JSON values (string, number, bool, null) to the
//     default decoding by returning json.SkipFunc.
//
// Empty objects ({}) produce an empty *Document; empty arrays ([]) an empty
// *Array.
func unmarshalValue(r *Registry) *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			val, err := decodeObject(dec, r)
			if err != nil {
				return err
			}
			*v = val
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// unmarshalDocument decodes a JSON object into a *Document target. Directive
// objects are NOT interpreted here; that only happens when decoding into
// interface{} graphs. This separation lets callers opt in to directive
// semantics only where they want them.
func unmarshalDocument() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Document) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		val, err := decodeObject(dec, nil)
		if err != nil {
			return err
		}
		*v = *(val.(*Document))
		return nil
	})
}

// unmarshalArray decodes a JSON array into an *Array target.
func unmarshalArray() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Array) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		arr, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = *arr
		return nil
	})
}

// decodeObject decodes a JSON object into a *Document. If r is non-nil and
// the first key starts with '$', the object is a directive object and the
// registered directive produces its value instead.
func decodeObject(dec *jsontext.Decoder, r *Registry) (any, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	if dec.PeekKind() == '}' { // empty
		if _, err := dec.ReadToken(); err != nil { // '}'
			return nil, fmt.Errorf("read object close: %w", err)
		}
		return &Document{}, nil
	}
	var firstKey string
	if err := json.UnmarshalDecode(dec, &firstKey); err != nil {
		return nil, fmt.Errorf("read object first key: %w", err)
	}
	if r != nil && len(firstKey) > 0 && firstKey[0] == '$' {
		val, err := r.Decode(firstKey[1:], dec)
		if err != nil {
			return nil, fmt.Errorf("directive %q: %w", firstKey, err)
		}
		for dec.PeekKind() != '}' { // skip remaining fields
			if err := dec.SkipValue(); err != nil {
				return nil, fmt.Errorf("directive %q skip extra field: %w", firstKey, err)
			}
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return nil, fmt.Errorf("directive %q read object close: %w", firstKey, err)
		}
		return val, nil
	}
	var firstVal any
	if err := json.UnmarshalDecode(dec, &firstVal); err != nil {
		return nil, fmt.Errorf("read object value for key %q: %w", firstKey, err)
	}
	doc := Document{{Key: firstKey, Value: firstVal}}
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var vv any
		if err := json.UnmarshalDecode(dec, &vv); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		doc = append(doc, Entry{Key: k, Value: vv})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return &doc, nil
}

// decodeArray decodes a JSON array into an *Array.
func decodeArray(dec *jsontext.Decoder) (*Array, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := Array{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return &arr, nil
}
