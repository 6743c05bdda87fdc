package main

import "fmt"

func main() {
	name := "gopher"
	fmt.Printf("Hello, %s!\n", name)
}
