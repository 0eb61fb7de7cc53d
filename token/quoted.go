package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// scanQuoted validates a double-quoted JSON string at the start of d and
// returns its total length, both quotes included. On error the returned int
// is the offset of the offending byte within d.
func scanQuoted(d []byte) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			j, err := scanEscape(d, i)
			if err != nil {
				return j, err
			}
			i = j
		case c < 0x20:
			return i, ErrStringControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, ErrBadUTF8
			}
			i += sz
		}
	}
	return n, ErrUnterminated
}

// scanEscape validates the escape sequence at d[i] == '\\' and returns the
// index just past it. Surrogate pairs are validated as a unit.
func scanEscape(d []byte, i int) (int, error) {
	if i+1 >= len(d) {
		return len(d), ErrUnterminated
	}
	switch d[i+1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return i + 2, nil
	case 'u':
		return scanUnicodeEscape(d, i)
	default:
		return i + 1, ErrBadEscape
	}
}

func scanUnicodeEscape(d []byte, i int) (int, error) {
	hi, ok := hex4(d[i+2:])
	if !ok {
		return i, ErrBadUnicode
	}
	switch {
	case hi >= 0xdc00 && hi <= 0xdfff:
		// low surrogate with no preceding high surrogate
		return i, ErrBadSurrogate
	case hi >= 0xd800 && hi <= 0xdbff:
		if i+8 > len(d) || d[i+6] != '\\' || d[i+7] != 'u' {
			return i, ErrBadSurrogate
		}
		lo, ok := hex4(d[i+8:])
		if !ok {
			return i + 6, ErrBadUnicode
		}
		if lo < 0xdc00 || lo > 0xdfff {
			return i + 6, ErrBadSurrogate
		}
		return i + 12, nil
	default:
		return i + 6, nil
	}
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// QuotedToString decodes the contents of a quoted string token. The bytes
// must already have passed scanQuoted.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, _ := hex4(d[i+2:])
			if r >= 0xd800 && r <= 0xdbff {
				lo, _ := hex4(d[i+8:])
				b.WriteRune(0x10000 + (r-0xd800)<<10 + (lo - 0xdc00))
				i += 12
				continue
			}
			b.WriteRune(r)
			i += 6
		default:
			// cannot happen on validated input
			b.WriteByte(d[i+1])
			i += 2
		}
	}
	return b.String()
}

// Unquote validates and decodes a complete quoted string.
func Unquote(v string) (string, error) {
	d := []byte(v)
	if len(d) == 0 || d[0] != '"' {
		return "", ErrUnterminated
	}
	n, err := scanQuoted(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", ErrUnterminated
	}
	return QuotedToString(d), nil
}

// Quote renders v as a JSON string. Control characters are escaped, as are
// U+2028 and U+2029 which are line terminators in JavaScript; other
// non-ASCII passes through as UTF-8.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\u2028', '\u2029':
			ucs[0] = byte(r >> 8)
			ucs[1] = byte(r)
			cps = hex.AppendEncode(cps[:0], ucs)
			d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
		default:
			if r < 0x20 {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
