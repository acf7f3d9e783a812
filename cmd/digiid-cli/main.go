// Command digiid-cli is a thin front-end over the digiid library: it
// builds challenge URIs, signs them with a WIF-encoded private key on the
// wallet side, and verifies signatures on the service side.
package main

import (
	"fmt"
	"os"

	"github.com/digibyte-org/digiid/cmd/digiid-cli/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
