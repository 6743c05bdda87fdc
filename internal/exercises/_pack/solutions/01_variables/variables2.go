package main

import "fmt"

func main() {
	x := 10
	y := x * 2

	fmt.Println("x is", x)
	fmt.Println("y is", y)
}
