// sunicon renders the flat weather icons to files and inspects their geometry.
package main

import (
	"os"

	"go-flat-icons/internal/cli"
)

var Version = "v0.1.0"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
