//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// paneHeight is the UART monitor height under the VGA view: 16 text lines.
const paneHeight = 16 * GlyphHeight

// composeFrame renders the VGA output and, when pane is set, the UART
// monitor below it.
func composeFrame(dst *image.RGBA, m *Memory, s *Snapshot, pane *uartPane) {
	m.SnapshotInto(s)
	vga := dst.SubImage(image.Rect(0, 0, ScreenWidth, ScreenHeight)).(*image.RGBA)
	Render(vga, s)
	if pane != nil {
		pane.drawTo(dst, 0, ScreenHeight)
	}
}

func frameBounds(pane *uartPane) image.Rectangle {
	h := ScreenHeight
	if pane != nil {
		h += paneHeight
	}
	return image.Rect(0, 0, ScreenWidth, h)
}

// writeSnapshot saves the current frame as a PNG.
func writeSnapshot(path string, m *Memory, pane *uartPane) error {
	img := image.NewRGBA(frameBounds(pane))
	var s Snapshot
	composeFrame(img, m, &s, pane)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
