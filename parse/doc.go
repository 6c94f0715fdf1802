// Package parse parses VDF text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    // handle malformed document
//	}
//	app := ir.Get(node, "AppState")
//
// Parse returns the root wrapper object. VDF documents conventionally
// define a single top-level key ("AppState", "libraryfolders", ...);
// that is a convention of the data, not the grammar, so callers look up
// the key themselves.
//
// Structural errors (a close brace with no open block, a value line
// before any key, an unterminated block at end of input) fail with
// ErrMalformed. Unrecognized lines are skipped, never errors.
//
// # Related Packages
//
//   - github.com/vdf-format/go-vdf/ir - IR representation
//   - github.com/vdf-format/go-vdf/encode - Encode IR to text
package parse
