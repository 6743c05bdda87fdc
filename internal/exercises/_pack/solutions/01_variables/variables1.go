package main

import "fmt"

func main() {
	// Declares `x` and assigns 5 in a single statement.
	x := 5

	fmt.Println("x has the value", x)
}
