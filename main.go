package main

import (
	"github.com/robinovitch61/copycode/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
