package main

import "github.com/avakin/stocksage/internal/cli"

func main() {
	cli.Execute()
}
