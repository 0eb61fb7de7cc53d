package parse

import "github.com/tinyjson/go-tinyjson/token"

// Nesting deeper than this reports a parse error instead of exhausting
// the stack.
const defaultMaxDepth = 200

type parseOpts struct {
	comments bool
	maxDepth int
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.comments {
		return []token.TokenOpt{token.TokenComments(true)}
	}
	return nil
}

type ParseOption func(*parseOpts)

// ParseComments accepts // line and /* */ block comments anywhere whitespace
// is allowed. Without it comments are a parse error.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
