// Package main provides the command-line interface for the create-branch application.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/lerenn/create-branch/cmd/create-branch/internal/cli"
)

func main() {
	if err := createRootCmd().Execute(); err != nil {
		var reported *cli.ReportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
