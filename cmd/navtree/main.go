package main

import (
	"os"

	"github.com/grovetools/navtree/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
