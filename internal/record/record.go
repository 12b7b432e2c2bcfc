package record

// Record is the fixed-shape value produced once per report run.
// Count and Items are independently specified inputs: Count drives
// enumeration, Items gates the greeting. No relationship between them
// is enforced. Immutable after construction.
type Record struct {
	Count int64
	Items []int64
}

// Canonical returns the record's deterministic serialized form.
// Keys appear in declaration order: count before items.
func (r Record) Canonical() ([]byte, error) {
	return MarshalCanonical(Object{
		{Key: "count", Value: Int(r.Count)},
		{Key: "items", Value: Ints(r.Items)},
	})
}
