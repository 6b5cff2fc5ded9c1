package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var interactive bool

var rootCmd = &cobra.Command{
	Use:   "rx [file]",
	Short: "rx interpreter",
	Long: `rx is a tree-walking interpreter for the rx scripting language.

Run a script with:
  rx program.rx

Or start an interactive session with:
  rx -i`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive session")
}

func runRoot(_ *cobra.Command, args []string) error {
	if interactive {
		runInteractive(os.Stdin, os.Stdout)
		return nil
	}
	if len(args) != 1 {
		exitWithError("usage: rx <file.rx> or rx -i")
	}
	return runFile(args[0])
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
