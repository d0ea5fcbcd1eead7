// main is the entry point for the aletheia CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hyperpolymath/aletheia/cmd"
	"github.com/hyperpolymath/aletheia/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(contract.ExitCodeForError(err))
	}
}
