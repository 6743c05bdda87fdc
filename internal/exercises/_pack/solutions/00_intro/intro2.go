package main

import "fmt"

func main() {
	// `Println` prints its arguments followed by a newline.
	fmt.Println("Hello world!")
}
