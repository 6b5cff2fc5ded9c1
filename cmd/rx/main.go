// Command rx runs the rx scripting language: either a .rx file given
// as an argument, or an interactive session started with -i.
package main

import (
	"fmt"
	"os"

	"github.com/rx-lang/rx/cmd/rx/cmd"
)

// Build-time version metadata, overridden via -ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.Version = version
	cmd.GitCommit = gitCommit
	cmd.BuildDate = buildDate

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
