package main

import "cdf-compare/internal/cli"

func main() {
	cli.Execute()
}
