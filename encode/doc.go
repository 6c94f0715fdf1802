// Package encode encodes IR nodes to VDF text.
//
// # Usage
//
//	node := ir.NewObject()
//	app := ir.NewObject()
//	app.Set("appid", ir.FromString("440"))
//	node.Set("AppState", app)
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//
//	// Encode starting at a deeper indent
//	err = encode.Encode(node, &buf, encode.Depth(1))
//
//	// Encode as a YAML or JSON view
//	err = encode.Encode(node, &buf, encode.EncodeFormat(format.YAMLFormat))
//
// The encoder emits tab indentation and "\n" line terminators only, and
// reproduces object fields in insertion order. A node that is neither a
// string leaf nor an object fails with ErrUnsupported.
//
// # Related Packages
//
//   - github.com/vdf-format/go-vdf/ir - IR representation
//   - github.com/vdf-format/go-vdf/parse - Parse text to IR
package encode
