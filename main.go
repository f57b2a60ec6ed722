package main

import "github.com/raysh454/xssrisk/internal/cli"

func main() {
	cli.Execute()
}
