// TODO: We sometimes encourage you to keep trying things on a given exercise
// even after you already figured it out. If you got everything working and
// feel ready for the next exercise, enter `n` in the terminal.
//
// The exercise file will be reloaded when you change one of the lines below!
// Try adding a new `fmt.Println` and check the updated output in the terminal.

package main

import "fmt"

func main() {
	fmt.Println(`       Welcome to...                        `)
	fmt.Println(`   __ _  ___  _ __ | |__   ___ _ __| (_)_ __   __ _ ___ `)
	fmt.Println(`  / _' |/ _ \| '_ \| '_ \ / _ \ '__| | | '_ \ / _' / __|`)
	fmt.Println(` | (_| | (_) | |_) | | | |  __/ |  | | | | | | (_| \__ \`)
	fmt.Println(`  \__, |\___/| .__/|_| |_|\___|_|  |_|_|_| |_|\__, |___/`)
	fmt.Println(`  |___/      |_|                             |___/     `)
	fmt.Println()
	fmt.Println("This exercise compiles successfully. The remaining exercises contain a compiler")
	fmt.Println("or logic error. The central concept behind gopherlings is to fix these errors and")
	fmt.Println("solve the exercises. Good luck!")
	fmt.Println()
	fmt.Println("The file of this exercise is `exercises/00_intro/intro1.go`. Have a look!")
	fmt.Println("The current exercise path will be always shown under the progress bar.")
}
