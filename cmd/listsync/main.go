// Package main is the entry point for listsync.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen11/listsync/cmd/listsync/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
