package answers

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a character diff from want to got. Colored output uses ANSI
// escapes; plain output marks deletions as [-x-] and insertions as {+x+}.
func Diff(want, got string, colored bool) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	if colored {
		return dmp.DiffPrettyText(diffs)
	}

	var sb strings.Builder

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}

	return sb.String()
}
