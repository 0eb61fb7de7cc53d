package encode

import "github.com/tinyjson/go-tinyjson/ir"

func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}
