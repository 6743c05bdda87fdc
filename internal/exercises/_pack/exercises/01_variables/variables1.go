package main

import "fmt"

func main() {
	// TODO: Add the missing declaration so that the program compiles.
	x = 5

	fmt.Println("x has the value", x)
}
