//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"io"
	"sync"

	"vgahid/hid/fonts/zifu"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyterm"
)

// imageDisplay is a tinyterm display backed by an RGBA image.
type imageDisplay struct {
	img *image.RGBA
}

func newImageDisplay(w, h int) *imageDisplay {
	return &imageDisplay{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *imageDisplay) Display() error { return nil }

func (d *imageDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(d.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d.img.SetRGBA(px, py, c)
		}
	}
	return nil
}

// ScrollUp shifts the image up by lines pixels and clears the exposed rows.
func (d *imageDisplay) ScrollUp(lines int16, bg color.RGBA) error {
	w, h := d.Size()
	if lines <= 0 {
		return nil
	}
	if lines >= h {
		return d.FillRectangle(0, 0, w, h, bg)
	}
	stride := d.img.Stride
	n := int(lines) * stride
	copy(d.img.Pix, d.img.Pix[n:])
	return d.FillRectangle(0, h-lines, w, lines, bg)
}

func (d *imageDisplay) SetScroll(line int16) { _ = line }

func (d *imageDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// uartPane is a VT100 terminal showing UART output.
type uartPane struct {
	mu sync.Mutex
	d  *imageDisplay
	t  *tinyterm.Terminal
}

var _ io.Writer = (*uartPane)(nil)

func newUARTPane(w, h int) *uartPane {
	d := newImageDisplay(w, h)
	_ = d.FillRectangle(0, 0, int16(w), int16(h), color.RGBA{A: 0xFF})
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:              zifu.Font,
		FontHeight:        zifu.Height,
		FontOffset:        zifu.Height - 3,
		UseSoftwareScroll: true,
	})
	return &uartPane{d: d, t: t}
}

// Write feeds UART bytes to the terminal.
func (p *uartPane) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.t.Write(b)
}

// drawTo copies the pane into dst at (x, y).
func (p *uartPane) drawTo(dst *image.RGBA, x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := p.d.img.Bounds()
	for py := 0; py < b.Dy(); py++ {
		src := p.d.img.Pix[py*p.d.img.Stride : py*p.d.img.Stride+b.Dx()*4]
		off := dst.PixOffset(x, y+py)
		if off < 0 || off+len(src) > len(dst.Pix) {
			return
		}
		copy(dst.Pix[off:], src)
	}
}
