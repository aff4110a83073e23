package sorting

// Bubble sorts by repeated passes over adjacent pairs.
//
// Each pass swaps (i, i+1) when the left value is strictly greater, so equal
// values keep their relative order. It stops after a pass with no swaps or
// after n-1 passes, whichever comes first.
type Bubble struct{}

// NewBubble returns a Bubble strategy.
func NewBubble() Bubble { return Bubble{} }

// Name implements Named.
func (Bubble) Name() string { return "bubble" }

// Sort implements Strategy.
func (b Bubble) Sort(in []int) []int {
	out, _ := b.sortCounting(in)
	return out
}

// sortCounting sorts a copy of in and also reports how many passes ran.
func (Bubble) sortCounting(in []int) ([]int, int) {
	out := Sequence(in).Clone()
	n := len(out)

	passes := 0
	for pass := 1; pass < n; pass++ {
		passes++
		swapped := false
		for i := 0; i < n-pass; i++ {
			if out[i] > out[i+1] {
				out[i], out[i+1] = out[i+1], out[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out, passes
}
