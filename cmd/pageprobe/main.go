// Command pageprobe resolves page object schemas against HTML documents.
package main

import (
	"os"

	"github.com/tsawler/pageobject/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
