package token

// number scans an unsigned JSON number at the start of d (the caller handles
// a leading '-'). It returns the byte length, whether a fraction or exponent
// was present, and an error for malformed syntax.
func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return digits, false, ErrNumberLeadingZero
	}
	f, err := fract(d[digits:])
	if err != nil {
		return digits, false, err
	}
	e, err := exp(d[digits+f:])
	if err != nil {
		return digits + f, false, err
	}
	return digits + f + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	// '.' must be followed by 1 or more digits, rfc 8259
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0, ErrNumber
	}
	return n + 1, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, ErrNumber
	}
	return n + i, nil
}
