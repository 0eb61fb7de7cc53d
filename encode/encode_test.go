package encode

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinyjson/go-tinyjson/ir"
)

func TestEncodeCanonical(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), `null`},
		{ir.FromBool(true), `true`},
		{ir.FromBool(false), `false`},
		{ir.FromInt(42), `42`},
		{ir.FromFloat(3.25), `3.25`},
		{ir.FromString("hi"), `"hi"`},
		{ir.FromString("a\nb"), `"a\nb"`},
		{ir.FromSlice(nil), `[]`},
		{ir.Object(), `{}`},
		{
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null(), ir.FromString("x")}),
			`[1,null,"x"]`,
		},
		{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "b", Val: ir.FromInt(2)},
				{Key: "a", Val: ir.FromInt(1)},
			}),
			`{"b":2,"a":1}`,
		},
	}
	for _, tt := range tests {
		got, err := String(tt.node)
		if err != nil {
			t.Errorf("%s: %v", tt.want, err)
			continue
		}
		if got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})},
	})
	want := `{
  "a": 1,
  "b": [
    2,
    3
  ]
}`
	got, err := String(node, WithIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	// insertion order survives encoding; overwriting keeps position
	obj := ir.Object()
	obj.Set("z", ir.FromInt(1))
	obj.Set("a", ir.FromInt(2))
	obj.Set("z", ir.FromInt(3))
	if got := MustString(obj); got != `{"z":3,"a":2}` {
		t.Errorf("got %s", got)
	}
}

func TestNumberString(t *testing.T) {
	for _, tt := range []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{1, "1"},
		{-17, "-17"},
		{1 << 53, "9.007199254740992e+15"},
		{1<<53 - 1, "9007199254740991"},
		{3.14, "3.14"},
		{1e100, "1e+100"},
		{-2.5e-3, "-0.0025"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	} {
		if got := NumberString(tt.f); got != tt.want {
			t.Errorf("NumberString(%v) = %s, want %s", tt.f, got, tt.want)
		}
	}
}

func TestEncodeUnknownType(t *testing.T) {
	if _, err := String(&ir.Node{Type: ir.Type(99)}); err == nil {
		t.Errorf("expected error for unknown node type")
	}
}

func TestEncodeColorsInert(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	plain := MustString(node)
	colored, err := String(node, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain")
	}
	// a nil scheme leaves output untouched
	same, err := String(node, EncodeColors(nil))
	if err != nil {
		t.Fatal(err)
	}
	if same != plain {
		t.Errorf("nil color scheme altered output: %s", same)
	}
}
