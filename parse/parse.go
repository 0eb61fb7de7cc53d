package parse

import (
	"fmt"
	"strconv"

	"github.com/tinyjson/go-tinyjson/ir"
	"github.com/tinyjson/go-tinyjson/token"
)

// Parse reads a single JSON value from d. Anything but whitespace (and, with
// ParseComments, comments) after the value is an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	p, err := newParser(d, pOpts)
	if err != nil {
		return nil, err
	}
	res, err := p.value(0)
	if err != nil {
		return nil, err
	}
	p.skipComments()
	if t := p.peek(); t != nil {
		return nil, fmt.Errorf("%w: unexpected trailing %q %s",
			ir.ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks []token.Token
	doc  *token.PosDoc
	i    int
	opts *parseOpts

	// tokErr is a deferred tokenize error: ParseMulti still consumes the
	// tokens scanned before it.
	tokErr error
}

func newParser(d []byte, pOpts *parseOpts) (*parser, error) {
	toks, doc, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return &parser{toks: toks, doc: doc, opts: pOpts}, nil
}

func (p *parser) skipComments() {
	for p.i < len(p.toks) && p.toks[p.i].Type == token.TComment {
		p.i++
	}
}

// peek returns the next non-comment token without consuming it, or nil at
// end of input.
func (p *parser) peek() *token.Token {
	p.skipComments()
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) errEOF() error {
	if p.tokErr != nil {
		return fmt.Errorf("%w: %w", ir.ErrParse, p.tokErr)
	}
	return fmt.Errorf("%w: unexpected end of input %s", ir.ErrParse, p.doc.End())
}

// value parses one value, one grammar nonterminal per method below.
func (p *parser) value(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: exceeded maximum nesting depth %d %s",
			ir.ErrParse, p.opts.maxDepth, p.toks[p.i-1].Pos)
	}
	t := p.peek()
	if t == nil {
		return nil, p.errEOF()
	}
	switch t.Type {
	case token.TNull:
		p.i++
		return ir.Null(), nil
	case token.TTrue:
		p.i++
		return ir.FromBool(true), nil
	case token.TFalse:
		p.i++
		return ir.FromBool(false), nil
	case token.TInteger, token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number (%v) %s", ir.ErrParse, err, t.Pos)
		}
		p.i++
		return ir.FromFloat(f), nil
	case token.TString:
		p.i++
		return ir.FromString(t.String()), nil
	case token.TLCurl:
		p.i++
		return p.object(depth)
	case token.TLSquare:
		p.i++
		return p.array(depth)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s",
			ir.ErrParse, string(t.Bytes), t.Pos)
	}
}

func (p *parser) object(depth int) (*ir.Node, error) {
	obj := ir.Object()
	t := p.peek()
	if t != nil && t.Type == token.TRCurl {
		p.i++
		return obj, nil
	}
	for {
		t := p.peek()
		if t == nil {
			return nil, p.errEOF()
		}
		if t.Type != token.TString {
			return nil, fmt.Errorf("%w: expected object key, got %q %s",
				ir.ErrParse, string(t.Bytes), t.Pos)
		}
		key := t.String()
		p.i++
		t = p.peek()
		if t == nil {
			return nil, p.errEOF()
		}
		if t.Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' in object, got %q %s",
				ir.ErrParse, string(t.Bytes), t.Pos)
		}
		p.i++
		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		// a repeated key overwrites in place, keeping its position
		obj.Set(key, val)
		t = p.peek()
		if t == nil {
			return nil, p.errEOF()
		}
		switch t.Type {
		case token.TComma:
			p.i++
		case token.TRCurl:
			p.i++
			return obj, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' in object, got %q %s",
				ir.ErrParse, string(t.Bytes), t.Pos)
		}
	}
}

func (p *parser) array(depth int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	t := p.peek()
	if t != nil && t.Type == token.TRSquare {
		p.i++
		return arr, nil
	}
	for {
		elt, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		t := p.peek()
		if t == nil {
			return nil, p.errEOF()
		}
		switch t.Type {
		case token.TComma:
			p.i++
		case token.TRSquare:
			p.i++
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' in array, got %q %s",
				ir.ErrParse, string(t.Bytes), t.Pos)
		}
	}
}
