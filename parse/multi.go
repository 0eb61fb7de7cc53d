package parse

import (
	"errors"

	"github.com/tinyjson/go-tinyjson/ir"
	"github.com/tinyjson/go-tinyjson/token"
)

// ParseMulti reads a sequence of whitespace- or comment-separated top level
// values, as produced by concatenating JSON documents. It returns the values
// parsed, the byte offset consumed through the garbage following the last
// complete value, and the first error encountered if any. Values preceding
// malformed input are still returned.
func ParseMulti(d []byte, opts ...ParseOption) ([]*ir.Node, int, error) {
	pOpts := newParseOpts(opts)
	toks, doc, tokErr := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	p := &parser{toks: toks, doc: doc, opts: pOpts, tokErr: tokErr}
	res := []*ir.Node{}
	stop := 0
	for stop != len(d) || p.tokErr != nil {
		node, err := p.value(0)
		if err != nil {
			return res, stop, err
		}
		res = append(res, node)
		if t := p.peek(); t != nil {
			stop = t.Pos.I
		} else if p.tokErr != nil {
			stop = tokErrOffset(p.tokErr, len(d))
		} else {
			stop = len(d)
		}
	}
	return res, stop, nil
}

func tokErrOffset(err error, dflt int) int {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return te.Pos.I
	}
	return dflt
}
