package ir

import (
	"maps"
	"math"
	"slices"
)

// Node is a JSON value: one of Null, Bool, Number, String, Array or Object.
// Numbers are always doubles; integer constructors convert on the way in and
// Int64 truncates on the way out, which is exact within ±2^53.
//
// Objects keep their fields in insertion order: Fields holds the keys and
// Values the corresponding values at the same index. For arrays only Values
// is used. Nodes are treated as immutable once built; built trees may be
// shared freely across readers.
type Node struct {
	Type   Type
	Bool   bool
	Number float64
	String string
	Fields []string
	Values []*Node
}

// nullNode is the canonical null returned by soft accessors on a miss.
var nullNode = &Node{Type: NullType}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: float64(v)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Object returns an empty object, ready for Set.
func Object() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with keys in sorted order, since Go map iteration
// order is not stable.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field] = node.Values[i]
	}
	return res
}

// Set overwrites the value of an existing field in place, keeping its
// position, or appends a new field. Insertion order is observable in
// iteration and encoding, so a sorted or hashed container won't do here.
func (y *Node) Set(key string, val *Node) {
	for i, field := range y.Fields {
		if field == key {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// Append adds an element to an array.
func (y *Node) Append(val *Node) {
	y.Values = append(y.Values, val)
}

// Lookup reports the value for key and whether it is present.
func (y *Node) Lookup(key string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	for i, field := range y.Fields {
		if field == key {
			return y.Values[i], true
		}
	}
	return nil, false
}

// Key returns the value for key, or the canonical null if y is not an object
// or the key is absent. Together with At this makes chained navigation total:
// y.Key("a").Key("b").At(2) never fails.
func (y *Node) Key(key string) *Node {
	if v, ok := y.Lookup(key); ok {
		return v
	}
	return nullNode
}

// At returns the i-th array element, or the canonical null if y is not an
// array or i is out of range.
func (y *Node) At(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nullNode
	}
	return y.Values[i]
}

// Soft accessors: the wrong-kind case yields a zero value, never an error.

func (y *Node) IsNull() bool   { return y.Type == NullType }
func (y *Node) IsBool() bool   { return y.Type == BoolType }
func (y *Node) IsNumber() bool { return y.Type == NumberType }
func (y *Node) IsString() bool { return y.Type == StringType }
func (y *Node) IsArray() bool  { return y.Type == ArrayType }
func (y *Node) IsObject() bool { return y.Type == ObjectType }

func (y *Node) BoolValue() bool {
	if y.Type != BoolType {
		return false
	}
	return y.Bool
}

func (y *Node) NumberValue() float64 {
	if y.Type != NumberType {
		return 0
	}
	return y.Number
}

// Int64 truncates the stored double. Exact for integers within ±2^53.
func (y *Node) Int64() int64 {
	f := y.NumberValue()
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func (y *Node) StringValue() string {
	if y.Type != StringType {
		return ""
	}
	return y.String
}

func (y *Node) ArrayItems() []*Node {
	if y.Type != ArrayType {
		return nil
	}
	return y.Values
}

func (y *Node) ObjectItems() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, field := range y.Fields {
		res[i] = KeyVal{Key: field, Val: y.Values[i]}
	}
	return res
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.String = y.String
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree calling f twice per node, before (isPost=false) and
// after (isPost=true) its children. Returning false from the pre call skips
// the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
