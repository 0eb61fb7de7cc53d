package token

import (
	"fmt"
	"unicode/utf8"
)

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// TokenComments admits // line comments and /* */ block comments, emitted as
// TComment tokens. Without it a '/' is a tokenize error.
func TokenComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

// Tokenize scans src into tokens appended to dst. The returned PosDoc renders
// byte offsets as line/column for error reporting. On error the tokens
// scanned before the offending input are still returned, so callers reading
// a stream of concatenated documents can use the complete prefix.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, *PosDoc, error) {
	opt := &tokenOpts{}
	for _, f := range opts {
		f(opt)
	}
	posDoc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++

		case ' ', '\t', '\r':
			i++

		case '{', '}', '[', ']', ':', ',':
			dst = append(dst, Token{
				Type:  punctType(c),
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+1],
			})
			i++

		case '"':
			j, err := scanQuoted(src[i:])
			if err != nil {
				return dst, posDoc, NewTokenizeErr(err, posDoc.Pos(i+j))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+j],
			})
			i += j

		case '-':
			numLen, isFloat, err := number(src[i+1:])
			if err != nil {
				return dst, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tok := Token{
				Type:  TInteger,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+numLen+1],
			}
			if isFloat {
				tok.Type = TFloat
			}
			dst = append(dst, tok)
			i += numLen + 1

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			numLen, isFloat, err := number(src[i:])
			if err != nil {
				return dst, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tok := Token{
				Type:  TInteger,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+numLen],
			}
			if isFloat {
				tok.Type = TFloat
			}
			dst = append(dst, tok)
			i += numLen

		case 't':
			if i+4 <= n && string(src[i:i+4]) == "true" {
				dst = append(dst, Token{Type: TTrue, Pos: posDoc.Pos(i), Bytes: src[i : i+4]})
				i += 4
				continue
			}
			return dst, posDoc, UnexpectedErr(literalChunk(src, i), posDoc.Pos(i))

		case 'f':
			if i+5 <= n && string(src[i:i+5]) == "false" {
				dst = append(dst, Token{Type: TFalse, Pos: posDoc.Pos(i), Bytes: src[i : i+5]})
				i += 5
				continue
			}
			return dst, posDoc, UnexpectedErr(literalChunk(src, i), posDoc.Pos(i))

		case 'n':
			if i+4 <= n && string(src[i:i+4]) == "null" {
				dst = append(dst, Token{Type: TNull, Pos: posDoc.Pos(i), Bytes: src[i : i+4]})
				i += 4
				continue
			}
			return dst, posDoc, UnexpectedErr(literalChunk(src, i), posDoc.Pos(i))

		case '/':
			if !opt.comments {
				return dst, posDoc, UnexpectedErr(`"/"`, posDoc.Pos(i))
			}
			j, err := scanComment(src, i, posDoc)
			if err != nil {
				return dst, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TComment,
				Pos:   posDoc.Pos(i),
				Bytes: src[i:j],
			})
			i = j

		default:
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz == 1 {
				return dst, posDoc, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(i))
			}
			return dst, posDoc, UnexpectedErr(literalChunk(src, i), posDoc.Pos(i))
		}
	}
	return dst, posDoc, nil
}

func punctType(c byte) TokenType {
	switch c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ':':
		return TColon
	default:
		return TComma
	}
}

// literalChunk grabs a short run of non-delimiter bytes for error messages,
// so a typo like "truthy" is reported whole.
func literalChunk(d []byte, i int) string {
	j := i
	for j < len(d) && j < i+10 {
		switch d[j] {
		case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ':', ',', '"':
			return fmt.Sprintf("%q", string(d[i:j]))
		}
		j++
	}
	return fmt.Sprintf("%q", string(d[i:j]))
}

// scanComment consumes a // line comment (up to but excluding the newline)
// or a /* */ block comment, recording newlines inside block comments.
func scanComment(d []byte, i int, posDoc *PosDoc) (int, error) {
	if i+1 >= len(d) {
		return i, ErrComment
	}
	switch d[i+1] {
	case '/':
		j := i + 2
		for j < len(d) && d[j] != '\n' {
			j++
		}
		return j, nil
	case '*':
		j := i + 2
		for j+1 < len(d) {
			if d[j] == '\n' {
				posDoc.nl(j)
			}
			if d[j] == '*' && d[j+1] == '/' {
				return j + 2, nil
			}
			j++
		}
		return len(d), ErrComment
	default:
		return i, ErrComment
	}
}
