// Command genealign aligns two sequences from the command line.
package main

import "github.com/katalvlaran/genealign/internal/cli"

func main() {
	cli.Execute() // initialize cobra commands
}
