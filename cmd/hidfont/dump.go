package main

import (
	"fmt"
	"io"

	"vgahid/hal"
	"vgahid/hid/display"

	"github.com/spf13/cobra"
)

// fontImage is a plain byte slice standing in for font memory.
type fontImage []byte

func (f fontImage) Len() int            { return len(f) }
func (f fontImage) Load(i int) byte     { return f[i] }
func (f fontImage) Store(i int, v byte) { f[i] = v }

func packedFont() fontImage {
	f := make(fontImage, hal.FontBytes)
	display.UploadFont(f)
	return f
}

func newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the packed font memory image",
		Long: `Print the 2048-byte image the display initializer writes into font
memory: 128 glyphs of 16 rows, rows packed to six bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := packedFont()
			switch format {
			case "hex":
				return dumpHex(cmd.OutOrStdout(), f)
			case "bin":
				_, err := cmd.OutOrStdout().Write(f)
				return err
			}
			return fmt.Errorf("unknown format %q (want hex or bin)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, bin)")
	return cmd
}

// dumpHex writes one glyph per line.
func dumpHex(w io.Writer, f fontImage) error {
	for c := 0; c < hal.FontGlyphs; c++ {
		row := f[c*hal.FontGlyphBytes : (c+1)*hal.FontGlyphBytes]
		if _, err := fmt.Fprintf(w, "%02x:% x\n", c, row); err != nil {
			return err
		}
	}
	return nil
}
