// Command hidfont inspects the console font: it dumps the packed image the
// display initializer uploads and renders the glyph table as a PNG sheet.
package main

import (
	"fmt"
	"os"

	"vgahid/internal/buildinfo"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "hidfont",
		Short:             "Inspect the HID console font",
		Version:           buildinfo.Short(),
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(newDumpCmd(), newSheetCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
