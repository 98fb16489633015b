package main

import "github.com/aalvaropc/djbhash/internal/cli"

func main() {
	cli.Execute()
}
