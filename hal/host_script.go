//go:build !tinygo

package hal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"vgahid/hid/ps2"

	"github.com/google/shlex"
)

// Event scripts drive the keyboard and mouse of a host run, one command per
// line:
//
//	key <name|code> [down|up]   press and release, or only one edge
//	type "text"                 type ASCII text, shifting as needed
//	mouse <x> <y> [left] [middle] [right] [z=<n>]
//	wait <steps>                let the poll loop run before the next line
//
// Blank lines and lines starting with # are ignored.

var keyNames = map[string]byte{
	"esc":       ps2.CodeEscape,
	"enter":     ps2.CodeEnter,
	"space":     ps2.CodeSpace,
	"backspace": ps2.CodeBackspace,
	"tab":       ps2.CodeTab,
	"up":        ps2.CodeUp,
	"down":      ps2.CodeDown,
	"left":      ps2.CodeLeft,
	"right":     ps2.CodeRight,
	"lshift":    ps2.CodeLeftShift,
	"rshift":    ps2.CodeRightShift,
	"lctrl":     ps2.CodeLeftCtrl,
	"lalt":      ps2.CodeLeftAlt,
}

// Keys sent with the 0xE0 prefix.
var extendedKeys = map[byte]bool{
	ps2.CodeUp:    true,
	ps2.CodeDown:  true,
	ps2.CodeLeft:  true,
	ps2.CodeRight: true,
}

type scriptOp struct {
	wait  int
	keys  []uint32
	mouse uint64
	move  bool
}

// loadScript reads and parses an event script file.
func loadScript(path string) (*scriptPlayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	ops, err := parseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &scriptPlayer{ops: ops}, nil
}

func parseScript(r io.Reader) ([]scriptOp, error) {
	var ops []scriptOp
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		op, err := parseOp(args)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseOp(args []string) (scriptOp, error) {
	if len(args) == 0 {
		return scriptOp{}, fmt.Errorf("empty command")
	}
	switch args[0] {
	case "key":
		if len(args) < 2 || len(args) > 3 {
			return scriptOp{}, fmt.Errorf("usage: key <name|code> [down|up]")
		}
		code, err := parseKey(args[1])
		if err != nil {
			return scriptOp{}, err
		}
		edge := ""
		if len(args) == 3 {
			edge = args[2]
		}
		switch edge {
		case "":
			return scriptOp{keys: append(keyEvents(code, false), keyEvents(code, true)...)}, nil
		case "down":
			return scriptOp{keys: keyEvents(code, false)}, nil
		case "up":
			return scriptOp{keys: keyEvents(code, true)}, nil
		}
		return scriptOp{}, fmt.Errorf("unknown key edge %q", edge)

	case "type":
		if len(args) != 2 {
			return scriptOp{}, fmt.Errorf("usage: type <text>")
		}
		keys, err := typeEvents(args[1])
		if err != nil {
			return scriptOp{}, err
		}
		return scriptOp{keys: keys}, nil

	case "mouse":
		if len(args) < 3 {
			return scriptOp{}, fmt.Errorf("usage: mouse <x> <y> [left] [middle] [right] [z=<n>]")
		}
		x, err := strconv.ParseUint(args[1], 0, 16)
		if err != nil {
			return scriptOp{}, fmt.Errorf("mouse x: %w", err)
		}
		y, err := strconv.ParseUint(args[2], 0, 16)
		if err != nil {
			return scriptOp{}, fmt.Errorf("mouse y: %w", err)
		}
		ev := ps2.MouseEvent{X: uint16(x), Y: uint16(y), Strobe: true}
		for _, a := range args[3:] {
			switch {
			case a == "left":
				ev.Left = true
			case a == "middle":
				ev.Middle = true
			case a == "right":
				ev.Right = true
			case strings.HasPrefix(a, "z="):
				z, err := strconv.ParseUint(a[2:], 0, 8)
				if err != nil {
					return scriptOp{}, fmt.Errorf("mouse z: %w", err)
				}
				ev.Z = uint8(z)
			default:
				return scriptOp{}, fmt.Errorf("unknown mouse flag %q", a)
			}
		}
		return scriptOp{mouse: ev.Encode(), move: true}, nil

	case "wait":
		if len(args) != 2 {
			return scriptOp{}, fmt.Errorf("usage: wait <steps>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return scriptOp{}, fmt.Errorf("bad wait %q", args[1])
		}
		return scriptOp{wait: n}, nil
	}
	return scriptOp{}, fmt.Errorf("unknown command %q", args[0])
}

func parseKey(s string) (byte, error) {
	if c, ok := keyNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 1 {
		c, _, ok := ps2.CodeForASCII(s[0])
		if ok {
			return c, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q", s)
	}
	return byte(v), nil
}

func keyEvents(code byte, release bool) []uint32 {
	var evs []uint32
	if extendedKeys[code] {
		evs = append(evs, ps2.MakeEvent(ps2.CodeExtended, false))
	}
	return append(evs, ps2.MakeEvent(code, release))
}

func typeEvents(text string) ([]uint32, error) {
	var evs []uint32
	for i := 0; i < len(text); i++ {
		code, shift, ok := ps2.CodeForASCII(text[i])
		if !ok {
			return nil, fmt.Errorf("no key for %q", text[i])
		}
		if shift {
			evs = append(evs, ps2.MakeEvent(ps2.CodeLeftShift, false))
		}
		evs = append(evs, ps2.MakeEvent(code, false), ps2.MakeEvent(code, true))
		if shift {
			evs = append(evs, ps2.MakeEvent(ps2.CodeLeftShift, true))
		}
	}
	return evs, nil
}

// scriptPlayer feeds script operations into a Memory device, one operation
// per step unless a wait is pending.
type scriptPlayer struct {
	ops  []scriptOp
	next int
	wait int
}

// step applies the next operation. It reports false once the script is done.
func (p *scriptPlayer) step(m *Memory) bool {
	if p.wait > 0 {
		p.wait--
		return true
	}
	if p.next >= len(p.ops) {
		return false
	}
	op := p.ops[p.next]
	p.next++
	for _, ev := range op.keys {
		m.PushKey(ev)
	}
	if op.move {
		m.SetMouse(op.mouse)
	}
	p.wait = op.wait
	return true
}

// wheelZ converts a wheel delta to the 4-bit two's complement Z field,
// saturating at -8 and 7.
func wheelZ(d float64) uint8 {
	if d != d {
		return 0
	}
	d = max(-8, min(7, d))
	return uint8(int8(d)) & 0x0F
}
