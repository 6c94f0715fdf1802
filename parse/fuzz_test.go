package parse

import (
	"bytes"
	"testing"

	"github.com/vdf-format/go-vdf/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Minimal documents
		"",
		"\"A\"",
		"\"A\"\n{\n}",
		"\"A\"\n{\n\t\"k\"\t\t\"v\"\n}",

		// Nesting
		"\"A\"\n{\n\t\"B\"\n\t{\n\t\t\"k\"\t\t\"v\"\n\t}\n}",
		"\"A\"\n{\n\t\"B\"\n\t{\n\t}\n\t\"k\"\t\t\"v\"\n}",

		// Skipped material
		"// comment\n\"A\"\n{\n}",
		"#include \"other.vdf\"\n\"A\"\n{\n}",
		"\n\n\"A\"\n{\n}\n\n",

		// Values with awkward content
		"\"A\"\n{\n\t\"path\"\t\t\"C:\\\\Steam\"\n}",
		"\"A\"\n{\n\t\"empty\"\t\t\"\"\n}",
		"\"A\"\n{\n\t\"spaced\"\t\t\"Team Fortress 2\"\n}",

		// Malformed shapes
		"}",
		"{",
		"\"k\"\t\t\"v\"",
		"\"A\"\n{",
		"\"A\"\n{\n}\n}",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// If parse succeeds, encoding must succeed: the tree only
		// contains string and object nodes by construction.
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("encode of parsed tree: %v", err)
		}

		// Round trip must not fail either, though it is not always
		// tree-identical for inputs whose values embed quotes or
		// tabs (a preserved grammar limitation).
		if _, err := Parse(buf.Bytes()); err != nil {
			t.Fatalf("reparse of encoded tree: %v", err)
		}
	})
}
