package token

import "fmt"

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TComment
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TComment: "TComment",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// String returns the token text, with TString bytes decoded.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

// End is the byte offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
