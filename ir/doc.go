// Package ir provides the intermediate representation (IR) for VDF documents.
//
// # Overview
//
// The IR package defines the core data structure for representing VDF
// (Valve Data Format) documents as a tree of nodes. All VDF documents,
// whether parsed from text or created programmatically, are represented
// as ir.Node trees.
//
// # Node Structure
//
// A Node is a tagged union over exactly two kinds:
//
//   - StringType: an immutable string leaf
//   - ObjectType: an ordered mapping from string keys to child nodes
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Field order is
// insertion order and is preserved by the encoder; VDF files are read and
// diffed by humans, so reordering keys is a regression.
//
// Keys are unique within one object. Setting an existing key replaces the
// value in place: the key keeps its original slot.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("440")
//	obj := ir.NewObject()
//	obj.Set("appid", node)
//
// # Navigating Nodes
//
// Use Get for single-key lookup and GetPath for dotted paths:
//
//	v := ir.Get(obj, "appid")
//	v, err := root.GetPath("AppState.name")
//
// # Comparison
//
// Nodes can be compared for a total order or equality:
//
//	equal := ir.Compare(a, b) == 0
//
// # Thread Safety
//
// Node structures are not thread-safe. A parsed tree is read-only by
// convention; clone it before mutating from multiple goroutines.
//
// # Related Packages
//
//   - github.com/vdf-format/go-vdf/parse - Parses text into IR nodes
//   - github.com/vdf-format/go-vdf/encode - Encodes IR nodes to text
//   - github.com/vdf-format/go-vdf/mergeop - Merge operations on IR nodes
package ir
