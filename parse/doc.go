// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	// Parse a document
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Permit comments
//	node, err := parse.Parse(data, parse.ParseComments(true))
//
// Errors carry the byte offset and 1-based line/column of the offending
// input. MustParse is the panicking variant; ParseMulti reads a stream of
// concatenated documents.
//
// # Related Packages
//
//   - github.com/tinyjson/go-tinyjson/ir - IR representation
//   - github.com/tinyjson/go-tinyjson/encode - Encode IR to text
//   - github.com/tinyjson/go-tinyjson/token - Tokenization
package parse
