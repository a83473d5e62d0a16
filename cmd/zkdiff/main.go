package main

import (
	"os"

	"github.com/zkdiff/zkdiff/internal/cli"
)

var version = "0.0.0-dev"

func main() {
	r := cli.Runner{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	os.Exit(r.Run(os.Args[1:]))
}
