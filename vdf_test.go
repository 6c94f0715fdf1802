package vdf

import (
	"testing"

	"github.com/vdf-format/go-vdf/ir"
)

func TestRoundTrip(t *testing.T) {
	in := "\"AppState\"\n{\n\t\"appid\"\t\t\"440\"\n\t\"name\"\t\t\"Team Fortress 2\"\n}\n"
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	app := ir.Get(root, "AppState")
	if app == nil {
		t.Fatal("no AppState")
	}
	if got := ir.GetString(app, "appid"); got != "440" {
		t.Errorf("appid = %q", got)
	}
	out, err := Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("round trip:\n%q\n%q", in, out)
	}
}
