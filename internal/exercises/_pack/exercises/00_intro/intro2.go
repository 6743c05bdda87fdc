// TODO: Fix the code to print "Hello world!".

package main

import "fmt"

func main() {
	fmt.Printline("Hello world!")
}
