package token

import "errors"

var (
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("invalid escape")
	ErrBadUnicode        = errors.New("invalid \\u escape")
	ErrBadSurrogate      = errors.New("invalid surrogate pair")
	ErrBadUTF8           = errors.New("invalid utf-8")
	ErrStringControl     = errors.New("unescaped control character in string")
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("leading zero in number")
	ErrComment           = errors.New("malformed comment")
)
