package main

import (
	"os"

	"panorama/cmd"

	"github.com/fatih/color"
)

var errPrint = color.New(color.FgRed).FprintfFunc()

func main() {
	if err := cmd.Execute(); err != nil {
		errPrint(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
