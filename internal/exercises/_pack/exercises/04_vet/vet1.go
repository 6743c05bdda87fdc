// This exercise compiles and runs, but `go vet` is not happy with it.
// Exercises marked as strict only pass once `go vet` reports nothing.

package main

import "fmt"

func main() {
	name := "gopher"
	// TODO: Fix the format verb.
	fmt.Printf("Hello, %d!\n", name)
}
