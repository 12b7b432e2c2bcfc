package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces the canonical textual encoding of v.
// CRITICAL: this is the ONLY serialization that should appear on the
// report's final line; identical input always yields identical bytes.
//
// Encoding rules:
//  1. Object keys in declaration order (never sorted)
//  2. A single space after every ':' and after every element ','
//  3. Integers in base 10, no leading zeros, no '+' for non-negatives
//  4. Strings NFC-normalized, no HTML escaping (< > & stay literal)
//  5. No floats, no nulls (returns error)
func MarshalCanonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalValue(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("null is forbidden in canonical encoding")
	case Int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(val)))
		return nil
	case String:
		return marshalString(buf, string(val))
	case Array:
		return marshalArray(buf, val)
	case Object:
		return marshalObject(buf, val)
	default:
		return fmt.Errorf("unsupported type for canonical encoding: %T", v)
	}
}

// marshalString encodes a string with NFC normalization applied at the
// serialization boundary. HTML escaping is disabled: <, >, and & must
// encode as themselves.
func marshalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return err
	}

	// json.Encoder adds a trailing newline, remove it
	result := tmp.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	buf.Write(result)
	return nil
}

func marshalArray(buf *bytes.Buffer, arr Array) error {
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := marshalValue(buf, elem); err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return nil
}

func marshalObject(buf *bytes.Buffer, obj Object) error {
	buf.WriteByte('{')
	for i, field := range obj {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := marshalString(buf, field.Key); err != nil {
			return fmt.Errorf("key %q: %w", field.Key, err)
		}
		buf.WriteString(": ")
		if err := marshalValue(buf, field.Value); err != nil {
			return fmt.Errorf("value for key %q: %w", field.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}
