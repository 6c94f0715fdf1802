package parse

import (
	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/token"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	positions map[*ir.Node]token.Pos
}

// Positions records the source line of every parsed node into m,
// for tooling that reports locations.
func Positions(m map[*ir.Node]token.Pos) ParseOption {
	return func(po *parseOpts) { po.positions = m }
}

func trackPos(node *ir.Node, pos token.Pos, opts *parseOpts) {
	if opts.positions != nil {
		opts.positions[node] = pos
	}
}
