package ir

// Equal reports structural equality. Arrays compare element-wise in order;
// objects compare per key regardless of insertion order. Order affects
// iteration and encoding, not equality.
func Equal(a, b *Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, field := range a.Fields {
			bv, ok := b.Lookup(field)
			if !ok {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (y *Node) Equal(o *Node) bool {
	return Equal(y, o)
}

// Less is a strict total order over all nodes, heterogeneous kinds included.
// Kinds rank Null < Bool < Number < String < Array < Object (the Type
// declaration order); equal kinds compare recursively by content. Objects
// compare pair-wise in stored order, key before value.
func Less(a, b *Node) bool {
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	switch a.Type {
	case NullType:
		return false
	case BoolType:
		return !a.Bool && b.Bool
	case NumberType:
		return a.Number < b.Number
	case StringType:
		return a.String < b.String
	case ArrayType:
		return lessValues(a.Values, b.Values)
	case ObjectType:
		n := min(len(a.Fields), len(b.Fields))
		for i := 0; i < n; i++ {
			if a.Fields[i] != b.Fields[i] {
				return a.Fields[i] < b.Fields[i]
			}
			if Less(a.Values[i], b.Values[i]) {
				return true
			}
			if Less(b.Values[i], a.Values[i]) {
				return false
			}
		}
		return len(a.Fields) < len(b.Fields)
	default:
		return false
	}
}

func (y *Node) Less(o *Node) bool {
	return Less(y, o)
}

func lessValues(a, b []*Node) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if Less(a[i], b[i]) {
			return true
		}
		if Less(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}
