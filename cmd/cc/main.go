package main

import "github.com/BuildAppolis/claude-context-wrapper/internal/cli"

func main() {
	cli.Execute()
}
