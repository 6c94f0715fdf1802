// Package vdf reads and writes Valve Data Format text.
//
// VDF is the tab-indented, brace-delimited key/value format used by
// Steam configuration and manifest files (libraryfolders.vdf,
// appmanifest_*.acf, ...). This package is a thin facade over the
// parse and encode packages for the common whole-document case.
package vdf

import (
	"bytes"

	"github.com/vdf-format/go-vdf/encode"
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/parse"
)

// Parse parses a VDF document into its IR tree.
func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Encode renders the tree as VDF text.
func Encode(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
