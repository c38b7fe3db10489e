package comparison

import (
	"html"
	"strings"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Diff rendering is deliberately separate from diff computation: the
// comparator returns structured DiffOps, and callers pick a renderer.
// RenderHTML is the bundled one; a terminal or plain-flag renderer can be
// built on the same ops.

const (
	removedOpen = `<span class="diff-removed">`
	addedOpen   = `<span class="diff-added">`
	spanClose   = `</span>`
)

// RenderHTML renders a diff-op sequence into two parallel HTML-safe
// strings: left shows the first paragraph with its unique lines highlighted
// as removals, right shows the second with its unique lines highlighted as
// additions.  Common lines render plainly in both.
func RenderHTML(ops []analysis.DiffOp) (left, right string) {
	var l, r []string
	for _, op := range ops {
		escaped := html.EscapeString(op.Line)
		switch op.Tag {
		case analysis.DiffCommon:
			l = append(l, escaped)
			r = append(r, escaped)
		case analysis.DiffRemoved:
			l = append(l, removedOpen+escaped+spanClose)
		case analysis.DiffAdded:
			r = append(r, addedOpen+escaped+spanClose)
		}
	}
	return strings.Join(l, "<br>"), strings.Join(r, "<br>")
}
