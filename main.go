package main

import "github.com/xll-gen/bin2header/cmd"

// main is the entry point of the bin2header CLI.
// It executes the root command which reads the input file and prints the array.
func main() {
	cmd.Execute()
}
