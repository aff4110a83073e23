package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBubble_PassCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		in         []int
		wantPasses int
	}{
		{name: "empty", in: nil, wantPasses: 0},
		{name: "single", in: []int{5}, wantPasses: 0},
		{name: "sorted exits after one clean pass", in: []int{1, 2, 3}, wantPasses: 1},
		{name: "one swap then clean pass", in: []int{2, 1, 3, 4}, wantPasses: 2},
		{name: "reversed needs n-1 passes", in: []int{4, 3, 2, 1}, wantPasses: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, passes := Bubble{}.sortCounting(tc.in)
			assert.True(t, Sequence(out).IsSorted())
			assert.Equal(t, tc.wantPasses, passes)
		})
	}
}

func BenchmarkBubble_Sample(b *testing.B) {
	in := []int{31, 22, 13, 43, 15, 6, 37}
	s := NewBubble()

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Sort(in)
	}
}

func BenchmarkInsertion_Sample(b *testing.B) {
	in := []int{31, 22, 13, 43, 15, 6, 37}
	s := NewInsertion()

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Sort(in)
	}
}
