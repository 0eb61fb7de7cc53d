// Package schema provides lightweight structural checks over IR objects:
// flat field-presence and kind validation, nothing more.
package schema

import (
	"errors"
	"fmt"

	"github.com/tinyjson/go-tinyjson/ir"
)

var ErrShape = errors.New("shape error")

// Field declares an expected object field and its kind.
type Field struct {
	Name string
	Type ir.Type
}

// Shape is an ordered list of expected fields. Checking proceeds in
// declaration order and stops at the first failure, which determines the
// field a multi-failure object is reported against.
type Shape []Field

// Check returns nil iff node is an object and every declared field is
// present with the declared kind. The error names the offending field.
func (s Shape) Check(node *ir.Node) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: expected object, got %s", ErrShape, node.Type)
	}
	for _, f := range s {
		v, ok := node.Lookup(f.Name)
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrShape, f.Name)
		}
		if v.Type != f.Type {
			return fmt.Errorf("%w: bad type for field %q: expected %s, got %s",
				ErrShape, f.Name, f.Type, v.Type)
		}
	}
	return nil
}

// HasShape is the boolean convenience over Check.
func HasShape(node *ir.Node, s Shape) bool {
	return s.Check(node) == nil
}
