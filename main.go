// Package main is the entry point for the verdict CLI.
package main

import "github.com/verdict-dev/verdict/cmd"

func main() {
	cmd.Execute()
}
