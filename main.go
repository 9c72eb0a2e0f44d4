// Package main is the entry point for the rooze CLI.
package main

import "gooze.dev/pkg/rooze/cmd"

func main() {
	cmd.Execute()
}
