// Package renderer renders capital gains reports as markdown.
package renderer

import (
	"bytes"
	"io"
	"time"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// day formats the calendar day of t.
func day(t time.Time) string { return t.Format("2006-01-02") }
