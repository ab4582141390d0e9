package main

import "github.com/fyerfyer/fyer-intervals/cmd/ivcli/cmd"

func main() {
	cmd.Execute()
}
