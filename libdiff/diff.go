package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vdf-format/go-vdf/encode"
	"github.com/vdf-format/go-vdf/ir"
)

// Diff returns the line-mode diffs between the canonical encodings of
// from and to. An empty result means the documents are equal.
func Diff(from, to *ir.Node) ([]diffpatch.Diff, error) {
	if ir.Equal(from, to) {
		return nil, nil
	}
	a, err := encodeDoc(from)
	if err != nil {
		return nil, err
	}
	b, err := encodeDoc(to)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	return diffCfg.DiffCharsToLines(diffs, lines), nil
}

func encodeDoc(node *ir.Node) (string, error) {
	var sb strings.Builder
	if err := encode.Encode(node, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Text renders diffs with one-character line prefixes, colorized when
// colors is true.
func Text(diffs []diffpatch.Diff, colors bool) string {
	var (
		sb  strings.Builder
		ins = func(s string) string { return s }
		del = ins
	)
	if colors {
		// "%s" keeps any % in the diffed text out of printf's hands
		ins = func(s string) string { return color.GreenString("%s", s) }
		del = func(s string) string { return color.RedString("%s", s) }
	}
	for _, d := range diffs {
		for _, line := range splitKeepNonEmpty(d.Text) {
			switch d.Type {
			case diffpatch.DiffInsert:
				sb.WriteString(ins("+"+line) + "\n")
			case diffpatch.DiffDelete:
				sb.WriteString(del("-"+line) + "\n")
			case diffpatch.DiffEqual:
				sb.WriteString(" " + line + "\n")
			}
		}
	}
	return sb.String()
}

func splitKeepNonEmpty(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
