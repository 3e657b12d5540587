package main

import "github.com/andrescamacho/puremvc-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
