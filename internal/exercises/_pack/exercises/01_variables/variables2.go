package main

import "fmt"

func main() {
	x := 10
	// TODO: The compiler rejects this program. Fix it without removing `x`.
	y := x * 2

	fmt.Println("x is", x)
}
