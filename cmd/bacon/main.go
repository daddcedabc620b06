// Command bacon prints the Bacon score of every actor named on standard input.
//
// Usage:
//
//	bacon [-l] [--dump] [--reference NAME] [--workers N] <dataset>
//
// The exit status is 1 if the dataset cannot be loaded or any query names an
// actor missing from it.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
