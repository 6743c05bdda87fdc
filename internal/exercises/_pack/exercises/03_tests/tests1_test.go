// Tests are important to ensure that your code does what you think it should
// do. This exercise is run with `go test`.

package tests

import "testing"

// TODO: Fix the function so that the test passes.
func double(n int) int {
	return n + 2
}

func TestDouble(t *testing.T) {
	if got := double(21); got != 42 {
		t.Fatalf("double(21) = %d, want 42", got)
	}
}
