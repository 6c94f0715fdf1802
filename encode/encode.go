package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/vdf-format/go-vdf/format"
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/token"
)

type EncState struct {
	depth  int
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The node must be an object; VDF documents
// have no top-level leaves.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || node.Type != ir.ObjectType {
		return fmt.Errorf("%w: document root must be an object", ErrUnsupported)
	}
	switch es.format {
	case format.VDFFormat:
		return encodeObject(node, w, es)
	case format.JSONFormat:
		if err := encodeJSON(node, w, 0); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		v, err := yamlValue(node)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// encodeObject emits the fields of node at es.depth, one entry per
// line, tab-indented, in insertion order.
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	indent := strings.Repeat("\t", es.depth)
	for i, f := range node.Fields {
		val := node.Values[i]
		key := applyColor(es, ir.ObjectType, FieldColor, token.Quote(f))
		switch val.Type {
		case ir.StringType:
			v := applyColor(es, ir.StringType, ValueColor, token.Quote(val.String))
			if err := writeString(w, indent+key+"\t\t"+v+"\n"); err != nil {
				return err
			}
		case ir.ObjectType:
			open := applyColor(es, ir.ObjectType, SepColor, "{")
			cls := applyColor(es, ir.ObjectType, SepColor, "}")
			if err := writeString(w, indent+key+"\n"+indent+open+"\n"); err != nil {
				return err
			}
			es.depth++
			if err := encodeObject(val, w, es); err != nil {
				return err
			}
			es.depth--
			if err := writeString(w, indent+cls+"\n"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s node under key %q", ErrUnsupported, val.Type, f)
		}
	}
	return nil
}

// encodeJSON writes an order-preserving JSON view. encoding/json cannot
// be used for whole objects because it marshals maps unordered.
func encodeJSON(node *ir.Node, w io.Writer, depth int) error {
	switch node.Type {
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case ir.ObjectType:
		if node.Len() == 0 {
			return writeString(w, "{}")
		}
		indent := strings.Repeat("  ", depth+1)
		if err := writeString(w, "{\n"); err != nil {
			return err
		}
		for i, f := range node.Fields {
			kd, err := json.Marshal(f)
			if err != nil {
				return err
			}
			if err := writeString(w, indent+string(kd)+": "); err != nil {
				return err
			}
			if err := encodeJSON(node.Values[i], w, depth+1); err != nil {
				return err
			}
			sep := ",\n"
			if i == node.Len()-1 {
				sep = "\n"
			}
			if err := writeString(w, sep); err != nil {
				return err
			}
		}
		return writeString(w, strings.Repeat("  ", depth)+"}")
	default:
		return fmt.Errorf("%w: %s node", ErrUnsupported, node.Type)
	}
}

// yamlValue converts a tree to goccy/go-yaml values, using MapSlice so
// field order survives marshalling.
func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, node.Len())
		for i, f := range node.Fields {
			v, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: f, Value: v})
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("%w: %s node", ErrUnsupported, node.Type)
	}
}
