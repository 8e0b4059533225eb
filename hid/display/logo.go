package display

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"vgahid/hal"
)

// GGLogo renders a banner with gg and packs it into the 2bpp pixel
// framebuffer, one palette index per pixel.
type GGLogo struct {
	pix  hal.PixelBuffer
	Text string
}

// NewLogo returns a logo renderer writing into pix.
func NewLogo(pix hal.PixelBuffer, text string) *GGLogo {
	return &GGLogo{pix: pix, Text: text}
}

// Draw renders the logo into the top limit lines of the framebuffer.
func (l *GGLogo) Draw(limit int) {
	if limit <= 0 {
		return
	}
	if limit > hal.ScreenHeight {
		limit = hal.ScreenHeight
	}

	dc := gg.NewContext(hal.ScreenWidth, limit)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	h := float64(limit)
	dc.SetLineWidth(2)
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.DrawRoundedRectangle(4, 4, h*2-8, h-8, h/6)
	dc.Stroke()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(h, h/2, h/4)
	dc.Fill()

	if l.Text != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.Push()
		dc.ScaleAbout(3, 3, h*2+16, h/2)
		dc.SetRGB(0.7, 0.7, 0.7)
		dc.DrawStringAnchored(l.Text, h*2+16, h/2, 0, 0.35)
		dc.Pop()
	}

	packImage(l.pix, dc.Image(), limit)
}

// packImage quantizes luminance to two bits and stores 32 pixels per word,
// pixel x in bits 2*(x%32).
func packImage(pix hal.PixelBuffer, img image.Image, lines int) {
	b := img.Bounds()
	for y := 0; y < lines && y < b.Dy(); y++ {
		for w := 0; w < hal.WordsPerLine; w++ {
			var word uint64
			for k := 0; k < hal.PixelsPerWord; k++ {
				x := w*hal.PixelsPerWord + k
				if x >= b.Dx() {
					break
				}
				word |= uint64(level(img, b.Min.X+x, b.Min.Y+y)) << (2 * k)
			}
			pix.Store(y*hal.WordsPerLine+w, word)
		}
	}
}

func level(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	lum := (299*r + 587*g + 114*b) / 1000 // 0..0xFFFF
	return uint8(lum >> 14)
}
