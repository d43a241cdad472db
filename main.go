package main

import (
	"os"

	"github.com/kr-g/xvenv/cmd"
	"github.com/kr-g/xvenv/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
