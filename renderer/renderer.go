// Package renderer turns a wealth report into markdown documents. Markdown
// keeps the output usable both on the terminal, rendered through glamour,
// and pasted as-is into notes or issues.
package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock buffers a whole section and copies it out only if the
// block function reports it produced content.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
