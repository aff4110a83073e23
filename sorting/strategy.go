package sorting

// Strategy sorts a sequence of ints in non-decreasing order.
//
// Sort must accept any finite input (nil, empty, duplicates, negatives) and
// must not modify in.
type Strategy interface {
	Sort(in []int) []int
}

// Named is implemented by strategies that report a stable name for logging.
type Named interface {
	Name() string
}

// NameOf returns the strategy's name, or "unnamed" if it does not implement Named.
func NameOf(s Strategy) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "unnamed"
}

// Func adapts a plain function to the Strategy interface.
type Func func(in []int) []int

// Sort implements Strategy.
func (f Func) Sort(in []int) []int { return f(in) }

// Sequence is an ordered, fixed-length collection of ints.
type Sequence []int

// Clone returns an independent copy. A nil Sequence clones to an empty one.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IsSorted reports whether s is in non-decreasing order.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
