package record

// Value is a sealed interface over the types the canonical encoder
// accepts. Only String, Int, Bool, Array, and Object implement it.
// NO floats and NO nulls - both break byte-deterministic encoding.
type Value interface {
	value() // Sealed - only these types implement it
}

// String represents a text value. NFC-normalized at encoding time.
type String string

func (String) value() {}

// Int represents an integer value. Always int64, never float64.
type Int int64

func (Int) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Array represents an ordered sequence of values.
type Array []Value

func (Array) value() {}

// Field is a single key/value pair of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object represents a sequence of key/value fields. Objects are slices,
// not maps: key order is declaration order and must survive encoding.
type Object []Field

func (Object) value() {}

// Ints converts a plain int64 slice to an Array.
func Ints(ns []int64) Array {
	arr := make(Array, len(ns))
	for i, n := range ns {
		arr[i] = Int(n)
	}
	return arr
}

// Strings converts a plain string slice to an Array.
func Strings(ss []string) Array {
	arr := make(Array, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return arr
}
