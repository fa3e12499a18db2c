// Package main provides the sqlforge CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
