package main

import (
	"os"

	"github.com/thenoetrevino/circleback/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
