package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tinyjson/go-tinyjson/ir"
	"github.com/tinyjson/go-tinyjson/token"
)

type EncState struct {
	indent int
	depth  int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default form is the minimal single-line
// canonical rendering; WithIndent selects a multi-line form. Encoding a tree
// and parsing it back yields an equal tree, and re-encoding that tree yields
// the same text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.NullType:
		return encodeNull(w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, int(node.Type))
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Scalar encoding

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.NullType, "null"))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.NumberType, NumberString(node.Number)))
}

// NumberString is the one documented numeric rendering policy: NaN and the
// infinities are not representable in JSON and fall back to null; integral
// doubles within ±2^53 render without a decimal point; everything else is
// the shortest representation that round-trips through a float64.
func NumberString(f float64) string {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return "null"
	case f == 0 && math.Signbit(f):
		return "-0"
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		return strconv.FormatInt(int64(f), 10)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.StringType, token.Quote(node.String)))
}

// Container encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	// fields go out in stored insertion order, never sorted
	for i, field := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, field, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func writeField(w io.Writer, field string, es *EncState) error {
	v := applyColor(es, ir.ObjectType, FieldColor, token.Quote(field))
	sep := applyColor(es, ir.ObjectType, SepColor, ":")
	if es.indent > 0 {
		sep += " "
	}
	return writeString(w, v+sep)
}
