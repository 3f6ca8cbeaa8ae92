// razor-bind - resolve tag helper bindings from a descriptor manifest
package main

import (
	"fmt"
	"os"
)

// Version is injected during build
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
