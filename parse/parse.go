package parse

import (
	"fmt"
	"strings"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return Lines(strings.Split(string(d), "\n"), opts...)
}

// Lines parses a pre-split sequence of lines.
func Lines(lines []string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks := token.Tokenize(nil, lines)
	st := &state{root: ir.NewObject()}
	st.parent = st.root
	for i := range toks {
		if err := st.feed(&toks[i], pOpts); err != nil {
			return nil, err
		}
	}
	if len(st.stack) != 0 {
		return nil, fmt.Errorf("%w: %d unterminated block(s) at end of input",
			ErrMalformed, len(st.stack))
	}
	return st.root, nil
}

// state carries the line-to-line machine: the object receiving key-only
// inserts (parent), the most recently created object (element, the
// target of value lines and the candidate for the next open brace), and
// the stack of parents indexed by brace depth.
//
// Nesting is conveyed by the brace lines only. The leading tabs of key
// and value lines vary between Steam files and must not be trusted for
// structure, which is why depth is tracked by this stack rather than by
// indentation.
type state struct {
	root    *ir.Node
	parent  *ir.Node
	element *ir.Node
	stack   []*ir.Node
}

func (st *state) feed(tok *token.Token, opts *parseOpts) error {
	switch tok.Type {
	case token.TKeyValue:
		if st.element == nil {
			return fmt.Errorf("%w: value line before any key, %s",
				ErrMalformed, tok.Pos)
		}
		leaf := ir.FromString(tok.Value)
		st.element.Set(tok.Key, leaf)
		trackPos(leaf, tok.Pos, opts)
	case token.TKey:
		el := ir.NewObject()
		st.parent.Set(tok.Key, el)
		st.element = el
		trackPos(el, tok.Pos, opts)
	case token.TLCurl:
		if st.element == nil {
			return fmt.Errorf("%w: open brace with no preceding key, %s",
				ErrMalformed, tok.Pos)
		}
		st.stack = append(st.stack, st.parent)
		st.parent = st.element
	case token.TRCurl:
		n := len(st.stack)
		if n == 0 {
			return fmt.Errorf("%w: close brace with no open block, %s",
				ErrMalformed, tok.Pos)
		}
		st.parent = st.stack[n-1]
		st.stack = st.stack[:n-1]
		// a value line right after a close brace belongs to the
		// restored parent
		st.element = st.parent
	case token.TSkip:
		// blank lines, // comments, directives: tolerated
	}
	return nil
}
