package token

import "testing"

func TestNewLength(t *testing.T) {
	for _, n := range []int{1, 2, 7, 8, 32} {
		if got := len(New(n)); got != n {
			t.Fatalf("New(%d) length = %d", n, got)
		}
	}
	if New(0) != "" || New(-3) != "" {
		t.Fatal("non-positive lengths must yield empty tokens")
	}
}

func TestNewIsHex(t *testing.T) {
	for _, r := range New(64) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("unexpected rune %q in token", r)
		}
	}
}

func TestNewVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := New(16)
		if seen[tok] {
			t.Fatalf("duplicate token %s", tok)
		}
		seen[tok] = true
	}
}

func TestOrderNumber(t *testing.T) {
	if got := len(OrderNumber()); got != 8 {
		t.Fatalf("order number length = %d", got)
	}
}
