package main

import "fmt"

// Some function with the name `callMe` without arguments or a return value.
func callMe() {}

func main() {
	callMe()
	fmt.Println("callMe was called")
}
