package main

import (
	"os"

	"github.com/nsrg-lab/attackgen/cmd"
)

func main() {

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
