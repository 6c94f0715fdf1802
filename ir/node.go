package ir

type Node struct {
	Type Type

	// String holds the leaf value for StringType nodes.
	String string

	// Fields[i] is the key for Values[i]; both are empty for leaves.
	// Field order is insertion order.
	Fields []string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Set inserts val under key, appending the key if it is new. If key is
// already present, the value is replaced in place and the key keeps its
// original slot.
func (y *Node) Set(key string, val *Node) {
	for i, f := range y.Fields {
		if f == key {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetString returns the leaf value under field, or "" if field is absent
// or not a string leaf.
func GetString(y *Node, field string) string {
	v := Get(y, field)
	if v == nil || v.Type != StringType {
		return ""
	}
	return v.String
}

func (y *Node) Len() int {
	return len(y.Fields)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := &Node{}
			yv.CloneTo(dstI)
			dst.Values[i] = dstI
		}
	}
	return dst
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
