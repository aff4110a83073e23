package sorting

// Insertion sorts by shifting each element left until it sits after every
// value that is less than or equal to it.
type Insertion struct{}

// NewInsertion returns an Insertion strategy.
func NewInsertion() Insertion { return Insertion{} }

// Name implements Named.
func (Insertion) Name() string { return "insertion" }

// Sort implements Strategy.
func (Insertion) Sort(in []int) []int {
	out := Sequence(in).Clone()
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i
		for j > 0 && out[j-1] > v {
			out[j] = out[j-1]
			j--
		}
		out[j] = v
	}
	return out
}
