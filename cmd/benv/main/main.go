package main

import (
	"fmt"
	"os"

	"benv/cmd/benv"
)

func main() {
	rootCmd := benv.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
