package mergeop

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestMerge(t *testing.T) {
	base := mustParse(t,
		"\"UserConfig\"\n{\n\t\"language\"\t\t\"english\"\n\t\"cloud\"\t\t\"1\"\n}")
	overlay := mustParse(t,
		"\"UserConfig\"\n{\n\t\"language\"\t\t\"german\"\n\t\"betakey\"\t\t\"public\"\n}")
	want := mustParse(t,
		"\"UserConfig\"\n{\n\t\"language\"\t\t\"german\"\n\t\"cloud\"\t\t\"1\"\n\t\"betakey\"\t\t\"public\"\n}")

	got := Merge(base, overlay)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", d)
	}
}

func TestMergeLeafVsObject(t *testing.T) {
	base := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("leaf")}})
	sub := ir.FromKeyVals([]ir.KeyVal{{Key: "inner", Val: ir.FromString("v")}})
	overlay := ir.NewObject()
	overlay.Set("k", sub)

	got := Merge(base, overlay)
	if d := cmp.Diff(overlay, got); d != "" {
		t.Errorf("object should replace leaf (-want +got):\n%s", d)
	}
	// and the reverse: leaf replaces object
	got = Merge(overlay, base)
	if d := cmp.Diff(base, got); d != "" {
		t.Errorf("leaf should replace object (-want +got):\n%s", d)
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	base := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("v")}})
	res := Merge(base, ir.NewObject())
	res.Set("k", ir.FromString("changed"))
	if got := ir.GetString(base, "k"); got != "v" {
		t.Errorf("merge aliased input: %q", got)
	}
}

func TestMergeAll(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("1")}})
	b := ir.FromKeyVals([]ir.KeyVal{{Key: "b", Val: ir.FromString("2")}})
	c := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("3")}})
	got := MergeAll(a, b, c)
	if ir.GetString(got, "a") != "3" || ir.GetString(got, "b") != "2" {
		t.Errorf("got %v", got)
	}
	if got.Fields[0] != "a" {
		t.Errorf("order: %v", got.Fields)
	}
	if MergeAll() != nil {
		t.Error("empty MergeAll should be nil")
	}
}
