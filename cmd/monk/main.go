package main

import (
	"os"

	"github.com/msto63/monk/cmd/monk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
