package mergeop

import "github.com/vdf-format/go-vdf/ir"

// Merge returns a new tree combining base and overlay. Keys present in
// both merge recursively when both values are objects; otherwise the
// overlay value replaces the base value in the base key's slot. Keys
// only in the overlay append in overlay order. Neither input is
// modified.
func Merge(base, overlay *ir.Node) *ir.Node {
	if base == nil {
		if overlay == nil {
			return nil
		}
		return overlay.Clone()
	}
	if overlay == nil {
		return base.Clone()
	}
	if base.Type != ir.ObjectType || overlay.Type != ir.ObjectType {
		return overlay.Clone()
	}
	res := ir.NewObject()
	for i, f := range base.Fields {
		ov := ir.Get(overlay, f)
		if ov == nil {
			res.Set(f, base.Values[i].Clone())
			continue
		}
		res.Set(f, Merge(base.Values[i], ov))
	}
	for i, f := range overlay.Fields {
		if ir.Get(base, f) != nil {
			continue
		}
		res.Set(f, overlay.Values[i].Clone())
	}
	return res
}

// MergeAll folds Merge left to right over docs.
func MergeAll(docs ...*ir.Node) *ir.Node {
	var res *ir.Node
	for _, doc := range docs {
		res = Merge(res, doc)
	}
	return res
}
