package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/expose/internal/cli"
	"github.com/arthur-debert/expose/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd(nil)
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		r := output.NewRenderer(os.Stderr, output.NoColor(os.Stderr))
		if renderErr := r.Error(err); renderErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
