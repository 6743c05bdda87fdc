package tests

import "testing"

func double(n int) int {
	return n * 2
}

func TestDouble(t *testing.T) {
	if got := double(21); got != 42 {
		t.Fatalf("double(21) = %d, want 42", got)
	}
}
