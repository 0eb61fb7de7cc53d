package parse

import "github.com/tinyjson/go-tinyjson/ir"

// MustParse accepts exactly the grammar Parse does and panics where Parse
// returns an error, for call sites preferring unwinding over error checks.
func MustParse(d []byte, opts ...ParseOption) *ir.Node {
	node, err := Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return node
}

// MustParseString is MustParse over a string.
func MustParseString(s string, opts ...ParseOption) *ir.Node {
	return MustParse([]byte(s), opts...)
}
