package ir

import (
	"sort"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int // -1 a<b, 0 equal, 1 a>b
	}{
		// Type ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), Object(), -1},

		{"null == null", Null(), Null(), 0},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"1 < 2", FromInt(1), FromInt(2), -1},
		{"int == equal float", FromInt(1), FromFloat(1.0), 0},
		{"1.5 < 2.5", FromFloat(1.5), FromFloat(2.5), -1},

		{"a < b", FromString("a"), FromString("b"), -1},
		{"a == a", FromString("a"), FromString("a"), 0},

		{"[] == []", FromSlice(nil), FromSlice(nil), 0},
		{"[1] < [1,2]", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"[1] < [2]", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"{} == {}", Object(), Object(), 0},
		{"{a:1} < {a:1,b:2}",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"{a:1} < {b:1}",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"{a:1} < {a:2}",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != (tt.expected < 0) {
				t.Errorf("Less(a, b) = %v, want %v", got, tt.expected < 0)
			}
			if got := Less(tt.b, tt.a); got != (tt.expected > 0) {
				t.Errorf("Less(b, a) = %v, want %v", got, tt.expected > 0)
			}
		})
	}
}

func TestEqualIgnoresObjectOrder(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromInt(2)},
		{Key: "x", Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Errorf("objects with same fields in different order not equal")
	}
	c := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "z", Val: FromInt(2)},
	})
	if Equal(a, c) {
		t.Errorf("objects with different keys compare equal")
	}
}

func TestEqualArraysOrdered(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(2), FromInt(1)})
	if Equal(a, b) {
		t.Errorf("arrays with reordered elements compare equal")
	}
}

func TestLessTotalOrder(t *testing.T) {
	nodes := []*Node{
		Object(),
		FromString("z"),
		FromBool(true),
		FromSlice([]*Node{FromInt(1)}),
		Null(),
		FromFloat(2.5),
		FromBool(false),
		FromInt(1),
		FromString("a"),
	}
	sort.Slice(nodes, func(i, j int) bool { return Less(nodes[i], nodes[j]) })
	for i := 1; i < len(nodes); i++ {
		if Less(nodes[i], nodes[i-1]) {
			t.Errorf("order violated at %d: %v before %v", i, nodes[i-1].Type, nodes[i].Type)
		}
	}
	if !nodes[0].IsNull() || !nodes[len(nodes)-1].IsObject() {
		t.Errorf("extremes wrong: %v .. %v", nodes[0].Type, nodes[len(nodes)-1].Type)
	}
}
