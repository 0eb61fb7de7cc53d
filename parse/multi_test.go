package parse

import "testing"

func TestParseMulti(t *testing.T) {
	in := `{"a": 1} [2, 3] true`
	nodes, stop, err := ParseMulti([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d values, want 3", len(nodes))
	}
	if stop != len(in) {
		t.Errorf("stop = %d, want %d", stop, len(in))
	}
	if nodes[0].Key("a").Int64() != 1 || nodes[1].Len() != 2 || !nodes[2].BoolValue() {
		t.Errorf("values = %v", nodes)
	}
}

func TestParseMultiEmpty(t *testing.T) {
	nodes, stop, err := ParseMulti(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 || stop != 0 {
		t.Errorf("got %d values, stop %d", len(nodes), stop)
	}
	// whitespace is not a value
	if _, _, err := ParseMulti([]byte("   ")); err == nil {
		t.Errorf("whitespace-only input accepted")
	}
}

func TestParseMultiKeepsPrefix(t *testing.T) {
	nodes, _, err := ParseMulti([]byte(`1 2 {"bad"`))
	if err == nil {
		t.Fatal("expected error")
	}
	// the two complete values before the malformed one are still returned
	if len(nodes) != 2 || nodes[0].Int64() != 1 || nodes[1].Int64() != 2 {
		t.Errorf("values = %v", nodes)
	}
}

func TestParseMultiTokenizeErr(t *testing.T) {
	nodes, _, err := ParseMulti([]byte(`[1] %`))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(nodes) != 1 || nodes[0].At(0).Int64() != 1 {
		t.Errorf("values = %v", nodes)
	}
}
