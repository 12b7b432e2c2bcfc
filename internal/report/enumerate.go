package report

import "iter"

// Enumerate returns the lazy sequence 0, 1, ..., count-1.
// The sequence is finite and restartable: every range over it replays
// from zero. A count of zero yields nothing.
func Enumerate(count int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := int64(0); i < count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
