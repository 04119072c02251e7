// stoich computes molecular masses and element compositions of chemical formulas.
package main

import (
	"os"

	"github.com/rmera/stoich/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
