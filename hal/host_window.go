//go:build !tinygo && cgo

package hal

import (
	"image"

	"vgahid/hid/ps2"
	"vgahid/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window showing the emulated VGA output with the
// UART monitor below it, and feeds keyboard and mouse input into the device.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	pane := newUARTPane(ScreenWidth, paneHeight)
	h.serial.addSink(pane)

	g := &hostGame{h: h, pane: pane, lastMouse: ^uint64(0)}
	if cfg.Script != "" {
		if g.script, err = loadScript(cfg.Script); err != nil {
			return err
		}
	}
	g.step = newApp(h)

	b := frameBounds(pane)
	ebiten.SetWindowTitle("vgahid (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	pane   *uartPane
	script *scriptPlayer
	step   func() error

	img   *image.RGBA
	fbImg *ebiten.Image
	snap  Snapshot

	keys      []ebiten.Key
	lastMouse uint64
}

func (g *hostGame) Update() error {
	g.pollKeyboard()
	g.pollMouse()
	if g.script != nil {
		g.script.step(g.h.mem)
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollKeyboard() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.pushKey(k, false)
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.pushKey(k, true)
	}
}

func (g *hostGame) pushKey(k ebiten.Key, release bool) {
	code, ok := ebitenKeys[k]
	if !ok {
		return
	}
	for _, ev := range keyEvents(code, release) {
		g.h.mem.PushKey(ev)
	}
}

func (g *hostGame) pollMouse() {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return
	}
	_, wy := ebiten.Wheel()
	ev := ps2.MouseEvent{
		X:      uint16(x),
		Y:      uint16(y),
		Z:      wheelZ(wy),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	w := ev.Encode()
	if w == g.lastMouse&^(1<<36) {
		return
	}
	ev.Strobe = true
	g.lastMouse = ev.Encode()
	g.h.mem.SetMouse(g.lastMouse)
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	b := frameBounds(g.pane)
	if g.img == nil {
		g.img = image.NewRGBA(b)
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	composeFrame(g.img, g.h.mem, &g.snap, g.pane)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := frameBounds(g.pane)
	return b.Dx(), b.Dy()
}

var ebitenKeys = buildEbitenKeys()

func buildEbitenKeys() map[ebiten.Key]byte {
	m := map[ebiten.Key]byte{
		ebiten.KeyEscape:      ps2.CodeEscape,
		ebiten.KeyEnter:       ps2.CodeEnter,
		ebiten.KeySpace:       ps2.CodeSpace,
		ebiten.KeyBackspace:   ps2.CodeBackspace,
		ebiten.KeyTab:         ps2.CodeTab,
		ebiten.KeyArrowUp:     ps2.CodeUp,
		ebiten.KeyArrowDown:   ps2.CodeDown,
		ebiten.KeyArrowLeft:   ps2.CodeLeft,
		ebiten.KeyArrowRight:  ps2.CodeRight,
		ebiten.KeyShiftLeft:   ps2.CodeLeftShift,
		ebiten.KeyShiftRight:  ps2.CodeRightShift,
		ebiten.KeyControlLeft: ps2.CodeLeftCtrl,
		ebiten.KeyAltLeft:     ps2.CodeLeftAlt,
	}
	printable := map[ebiten.Key]byte{
		ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
		ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
		ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
		ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
		ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
		ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
		ebiten.KeyY: 'y', ebiten.KeyZ: 'z',

		ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
		ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
		ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
		ebiten.KeyDigit9: '9',

		ebiten.KeyMinus: '-', ebiten.KeyEqual: '=', ebiten.KeyBracketLeft: '[',
		ebiten.KeyBracketRight: ']', ebiten.KeyBackslash: '\\',
		ebiten.KeySemicolon: ';', ebiten.KeyQuote: '\'', ebiten.KeyBackquote: '`',
		ebiten.KeyComma: ',', ebiten.KeyPeriod: '.', ebiten.KeySlash: '/',
	}
	for k, c := range printable {
		if code, _, ok := ps2.CodeForASCII(c); ok {
			m[k] = code
		}
	}
	return m
}
