package main

import "fmt"

// TODO: Add some function with the name `callMe` without arguments or a return value.

func main() {
	callMe()
	fmt.Println("callMe was called")
}
