// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package render

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from committed to generated, or "" when the
// two are identical. name labels both sides.
func Diff(committed, generated []byte, name string) string {
	if bytes.Equal(committed, generated) {
		return ""
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(committed)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: name + " (committed)",
		ToFile:   name + " (generated)",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
