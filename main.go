// Package main is the entry point for the jia CLI.
package main

import "github.com/LukeInkster/JavaInheritanceAnalysis/cmd"

func main() {
	cmd.Execute()
}
