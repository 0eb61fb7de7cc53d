// Package encode renders IR nodes as JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	s, err := encode.String(node)
//	// {"name":"alice","age":30}
//
//	// Multi-line form
//	s, err = encode.String(node, encode.WithIndent(2))
//
//	// Colorized for a terminal
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.AutoColors(os.Stdout)))
//
// Object fields are written in insertion order. Output is deterministic:
// encoding a parsed tree and reparsing it yields an equal tree.
//
// # Related Packages
//
//   - github.com/tinyjson/go-tinyjson/ir - IR representation
//   - github.com/tinyjson/go-tinyjson/parse - Parse text to IR
package encode
