package main

import (
	"os"

	"github.com/example/textkit/internal/cli"
)

func main() {
	if err := cli.Execute(cli.RandDigitsCmd(), os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
