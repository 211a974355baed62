// Command aseinfo inspects Aseprite sprite sheet exports, packs them into a
// resource file and imports them into the per-user sheet library.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
