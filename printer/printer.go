// Package printer renders int sequences for display.
package printer

import (
	"io"
	"strconv"
	"strings"
)

// Separator goes between elements; nothing follows the last one.
const Separator = ", "

// Format joins seq with Separator. An empty or nil seq formats to "".
func Format(seq []int) string {
	if len(seq) == 0 {
		return ""
	}

	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Printer writes formatted sequences to an output stream.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w. It returns nil if w is nil.
func New(w io.Writer) *Printer {
	if w == nil {
		return nil
	}
	return &Printer{w: w}
}

// Print writes Format(seq), a newline, and a trailing blank line.
func (p *Printer) Print(seq []int) error {
	_, err := io.WriteString(p.w, Format(seq)+"\n\n")
	return err
}
