package main

import (
	"fmt"
	"image/color"
	"os"

	"vgahid/hid/fonts/zifu"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/tinyfont"
)

const (
	sheetCols   = 16
	sheetRows   = zifu.Glyphs / sheetCols
	sheetMargin = 24
)

func newSheetCmd() *cobra.Command {
	var (
		out   string
		scale int
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Render the glyph table as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("scale must be at least 1, got %d", scale)
			}
			dc := renderSheet(scale)
			if out == "-" {
				return dc.EncodePNG(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := dc.EncodePNG(f); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", out, err)
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "font.png", "output file (- for stdout)")
	cmd.Flags().IntVarP(&scale, "scale", "s", 4, "pixels per font pixel")
	return cmd
}

// cellSize is the pitch of one glyph cell in sheet pixels.
func cellSize(scale int) (w, h int) {
	return (zifu.Width + 2) * scale, (zifu.Height + 2) * scale
}

func renderSheet(scale int) *gg.Context {
	cw, ch := cellSize(scale)
	dc := gg.NewContext(sheetMargin+sheetCols*cw, sheetMargin+sheetRows*ch)
	dc.SetRGB(0.1, 0.1, 0.12)
	dc.Clear()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.6, 0.6, 0.6)
	for c := 0; c < sheetCols; c++ {
		dc.DrawStringAnchored(fmt.Sprintf("%X", c), float64(sheetMargin+c*cw+cw/2), sheetMargin/2, 0.5, 0.5)
	}
	for r := 0; r < sheetRows; r++ {
		dc.DrawStringAnchored(fmt.Sprintf("%X", r), sheetMargin/2, float64(sheetMargin+r*ch+ch/2), 0.5, 0.5)
	}

	d := &scaledDisplay{dc: dc, scale: scale}
	fg := color.RGBA{R: 0xE1, G: 0xE6, B: 0xE8, A: 0xFF}
	for code := 0; code < zifu.Glyphs; code++ {
		x := sheetMargin + (code%sheetCols)*cw + scale
		y := sheetMargin + (code/sheetCols)*ch + scale
		d.ox, d.oy = x, y
		tinyfont.DrawChar(d, zifu.Font, 0, zifu.Height-3, rune(code), fg)
	}
	return dc
}

// scaledDisplay plots each font pixel as a scale x scale square at an
// origin that moves per glyph.
type scaledDisplay struct {
	dc     *gg.Context
	scale  int
	ox, oy int
}

func (d *scaledDisplay) Size() (x, y int16) {
	return int16(d.dc.Width()), int16(d.dc.Height())
}

func (d *scaledDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.dc.SetColor(c)
	s := float64(d.scale)
	d.dc.DrawRectangle(float64(d.ox)+float64(x)*s, float64(d.oy)+float64(y)*s, s, s)
	d.dc.Fill()
}

func (d *scaledDisplay) Display() error { return nil }
