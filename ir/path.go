package ir

import (
	"fmt"
	"strings"
)

// GetPath navigates an ir.Node tree using a dotted path.
//
// Example:
//
//	root.GetPath("AppState.name")
//
// navigates to the "name" value of the "AppState" object. VDF keys never
// contain whitespace, and keys containing dots do not occur in Steam
// data, so no quoting syntax is needed.
//
// Returns an error if the path does not exist or descends through a leaf.
func (y *Node) GetPath(path string) (*Node, error) {
	res := y
	if path == "" {
		return res, nil
	}
	for part := range strings.SplitSeq(path, ".") {
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w: %q at %q", ErrNotObject, path, part)
		}
		next := Get(res, part)
		if next == nil {
			return nil, fmt.Errorf("%w: %q at %q", ErrNoSuchPath, path, part)
		}
		res = next
	}
	return res, nil
}

// ListPath appends to dst every immediate child of the object at path,
// in field order.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	at, err := y.GetPath(path)
	if err != nil {
		return nil, err
	}
	if at.Type != ObjectType {
		return nil, fmt.Errorf("%w: %q", ErrNotObject, path)
	}
	return append(dst, at.Values...), nil
}
