package ir

import (
	"math"
	"testing"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	obj := Object()
	obj.Set("b", FromInt(1))
	obj.Set("a", FromInt(2))
	obj.Set("c", FromInt(3))
	// overwriting b must keep its position
	obj.Set("b", FromInt(9))
	want := []string{"b", "a", "c"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(obj.Fields), len(want))
	}
	for i, f := range want {
		if obj.Fields[i] != f {
			t.Errorf("field[%d] = %q, want %q", i, obj.Fields[i], f)
		}
	}
	if obj.Key("b").Int64() != 9 {
		t.Errorf("b = %d, want 9", obj.Key("b").Int64())
	}
}

func TestKeyAtChaining(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
	})
	if got := obj.Key("a").At(1).StringValue(); got != "y" {
		t.Errorf(`Key("a").At(1) = %q, want "y"`, got)
	}
	// every miss lands on null and keeps chaining
	for _, n := range []*Node{
		obj.Key("missing"),
		obj.Key("missing").Key("deeper").At(12),
		obj.Key("a").At(7),
		obj.At(0),
		FromInt(3).Key("a"),
	} {
		if !n.IsNull() {
			t.Errorf("missed access gave %v, want null", n.Type)
		}
	}
}

func TestSoftAccessors(t *testing.T) {
	n := FromString("hi")
	if n.BoolValue() != false || n.NumberValue() != 0 || n.Int64() != 0 {
		t.Errorf("wrong-kind accessors on %v not zero valued", n.Type)
	}
	if n.ArrayItems() != nil || n.ObjectItems() != nil {
		t.Errorf("wrong-kind container accessors on %v not nil", n.Type)
	}
	if Null().StringValue() != "" {
		t.Errorf("StringValue on null not empty")
	}
}

func TestInt64(t *testing.T) {
	for _, tt := range []struct {
		f    float64
		want int64
	}{
		{3.9, 3},
		{-3.9, -3},
		{0, 0},
		{1 << 53, 1 << 53},
		{-(1 << 53), -(1 << 53)},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
		{1e300, math.MaxInt64},
	} {
		if got := FromFloat(tt.f).Int64(); got != tt.want {
			t.Errorf("Int64(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
	if got := FromInt(42).Int64(); got != 42 {
		t.Errorf("FromInt round trip = %d", got)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, f := range want {
		if obj.Fields[i] != f {
			t.Errorf("field[%d] = %q, want %q", i, obj.Fields[i], f)
		}
	}
	m := ToMap(obj)
	if len(m) != 3 || m["m"].Int64() != 3 {
		t.Errorf("ToMap = %v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Errorf("ToMap on non-object not nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal")
	}
	cp.Key("a").Values[0] = FromInt(2)
	if orig.Key("a").At(0).Int64() != 1 {
		t.Errorf("mutating clone changed original")
	}
}

func TestVisit(t *testing.T) {
	node := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	pre, post := 0, 0
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}
}
