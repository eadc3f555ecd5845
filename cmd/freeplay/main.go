package main

import "github.com/mcoot/freeplay/internal/cli"

func main() {
	cli.Execute()
}
