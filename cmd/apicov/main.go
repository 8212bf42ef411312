// Command apicov prints a coverage report comparing the FilingExplorer
// swagger spec against the MCP server implementation. It takes no arguments
// and exits non-zero when any mapped route is missing an expected tool.
package main

import (
	"fmt"
	"os"

	"github.com/lkretschmer/apicov"
)

func main() {
	root, err := apicov.FindProjectRoot(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)

		os.Exit(1)
	}

	missing, err := apicov.NewAnalyzer(root).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Analysis failed: %v\n", err)

		os.Exit(1)
	}

	if missing > 0 {
		os.Exit(1)
	}
}
