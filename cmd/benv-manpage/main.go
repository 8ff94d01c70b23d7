package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"benv/cmd/benv"
	"benv/internal/version"
)

func main() {
	rootCmd := benv.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BENV",
		Section: "1",
		Source:  "benv " + version.Version,
		Manual:  "benv manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
