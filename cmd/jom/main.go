package main

import (
	"fmt"
	"os"
)

var Version = "dev"

func main() {
	if err := newCLI().execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
