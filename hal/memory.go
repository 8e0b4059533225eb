package hal

import "sync"

// Memory is an in-memory display and input device.
//
// It backs the host HAL and doubles as the fake used by tests. All accessors
// are safe for concurrent use so host frontends can inject input from their
// own goroutines.
type Memory struct {
	mu     sync.Mutex
	regs   [RegCount]uint64
	cells  []uint16
	font   []byte
	pixels []uint64

	kbd     []uint32
	kbdData uint32
	mouse   uint64
}

// NewMemory returns a zeroed device with the standard region sizes.
func NewMemory() *Memory {
	return &Memory{
		cells:  make([]uint16, GridCells),
		font:   make([]byte, FontBytes),
		pixels: make([]uint64, PixelWords),
	}
}

func (m *Memory) Regs() Regs          { return memRegs{m} }
func (m *Memory) Cells() CellBuffer   { return memCells{m} }
func (m *Memory) Font() FontMemory    { return memFont{m} }
func (m *Memory) Pixels() PixelBuffer { return memPixels{m} }
func (m *Memory) Keyboard() Keyboard  { return memKeyboard{m} }
func (m *Memory) Mouse() Mouse        { return memMouse{m} }

// PushKey appends a raw event to the keyboard FIFO.
func (m *Memory) PushKey(ev uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kbd = append(m.kbd, ev&^KeybEmpty)
}

// PendingKeys reports how many events are waiting in the keyboard FIFO.
func (m *Memory) PendingKeys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.kbd)
}

// SetMouse latches a new mouse event word.
func (m *Memory) SetMouse(w uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = w
}

// Snapshot is a point-in-time copy of the display regions.
type Snapshot struct {
	Regs   [RegCount]uint64
	Cells  []uint16
	Font   []byte
	Pixels []uint64
}

// SnapshotInto copies the display state into s, reusing its slices.
func (m *Memory) SnapshotInto(s *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Regs = m.regs
	s.Cells = append(s.Cells[:0], m.cells...)
	s.Font = append(s.Font[:0], m.font...)
	s.Pixels = append(s.Pixels[:0], m.pixels...)
}

type memRegs struct{ m *Memory }

func (r memRegs) Load(reg Reg) uint64 {
	if int(reg) >= RegCount {
		return 0
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.regs[reg]
}

func (r memRegs) Store(reg Reg, v uint64) {
	if int(reg) >= RegCount {
		return
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.regs[reg] = v
}

type memCells struct{ m *Memory }

func (c memCells) Len() int { return len(c.m.cells) }

func (c memCells) Load(i int) uint16 {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	if i < 0 || i >= len(c.m.cells) {
		return 0
	}
	return c.m.cells[i]
}

func (c memCells) Store(i int, v uint16) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	if i < 0 || i >= len(c.m.cells) {
		return
	}
	c.m.cells[i] = v
}

type memFont struct{ m *Memory }

func (f memFont) Len() int { return len(f.m.font) }

func (f memFont) Load(i int) byte {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if i < 0 || i >= len(f.m.font) {
		return 0
	}
	return f.m.font[i]
}

func (f memFont) Store(i int, v byte) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if i < 0 || i >= len(f.m.font) {
		return
	}
	f.m.font[i] = v
}

type memPixels struct{ m *Memory }

func (p memPixels) Len() int { return len(p.m.pixels) }

func (p memPixels) Load(i int) uint64 {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if i < 0 || i >= len(p.m.pixels) {
		return 0
	}
	return p.m.pixels[i]
}

func (p memPixels) Store(i int, v uint64) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if i < 0 || i >= len(p.m.pixels) {
		return
	}
	p.m.pixels[i] = v
}

type memKeyboard struct{ m *Memory }

// Load returns the data latch with KeybEmpty reflecting the FIFO state.
func (k memKeyboard) Load() uint32 {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	if len(k.m.kbd) == 0 {
		return k.m.kbdData | KeybEmpty
	}
	return k.m.kbdData
}

// Pop moves the FIFO head into the data latch.
func (k memKeyboard) Pop() {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	if len(k.m.kbd) == 0 {
		return
	}
	k.m.kbdData = k.m.kbd[0]
	k.m.kbd = k.m.kbd[1:]
}

type memMouse struct{ m *Memory }

func (ms memMouse) Load() uint64 {
	ms.m.mu.Lock()
	defer ms.m.mu.Unlock()
	return ms.m.mouse
}
