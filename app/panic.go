package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"vgahid/hal"
	"vgahid/hid/fonts/zifu"

	"tinygo.org/x/tinyfont"
)

const panicCols = hal.ScreenWidth / zifu.Width

// reportPanic logs the panic with its stack and paints it into the pixel
// framebuffer, which overlays the text grid.
func reportPanic(h hal.HAL, v any) {
	lines := []string{"HID panic:", fmt.Sprintf("panic: %v", v)}
	if stack := debug.Stack(); len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	d := panicDisplay{pix: disp.Pixels()}
	for i := 0; i < d.pix.Len(); i++ {
		d.pix.Store(i, 0)
	}

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+zifu.Height > hal.ScreenHeight {
				return
			}
			chunk, rest := takeRunes(line, panicCols)
			tinyfont.WriteLine(d, zifu.Font, 0, y+zifu.Height-3, chunk, fg)
			y += zifu.Height
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// panicDisplay draws into the 2bpp pixel framebuffer. Any non-black colour
// selects the brightest index.
type panicDisplay struct {
	pix hal.PixelBuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return hal.ScreenWidth, hal.ScreenHeight
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= hal.ScreenWidth || iy < 0 || iy >= hal.ScreenHeight {
		return
	}
	i := iy*hal.WordsPerLine + ix/hal.PixelsPerWord
	shift := 2 * uint(ix%hal.PixelsPerWord)
	w := d.pix.Load(i) &^ (3 << shift)
	if c.R|c.G|c.B != 0 {
		w |= 3 << shift
	}
	d.pix.Store(i, w)
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
