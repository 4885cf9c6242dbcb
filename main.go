package main

import "github.com/theirongolddev/ethicsim/cmd"

func main() {
	cmd.Execute()
}
