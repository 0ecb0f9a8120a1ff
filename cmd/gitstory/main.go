// Package main is the entry point for the gitstory CLI.
package main

import (
	"context"
	"os"

	"github.com/gitstory/gitstory/cmd/gitstory/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
