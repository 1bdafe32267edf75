// Command pdbgen selects a saturated pattern database collection for a
// planning task read from a YAML file.
//
// Usage: pdbgen select --task task.yaml [--config pdbgen.yaml] [flags]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
