// Package pia6820 implements the peripheral interface adaptor an
// Apple-1 style machine hangs its keyboard and display off of. The
// chip decodes four registers from a configurable base address and
// moves bytes between the bus and a pair of abstract 8 bit ports, so
// the register logic stays free of platform terminal details. Control
// chords on the keyboard surface as bus signals from Housekeeping.
package pia6820

import (
	"github.com/pmerrill/65xx/io"
	"github.com/pmerrill/65xx/memory"
)

// Register offsets from the base address.
const (
	KEYBOARD    = uint16(0) // Read: next key with bit 7 set.
	KEYBOARD_CR = uint16(1) // Read: bit 7 high while a key is waiting.
	DISPLAY     = uint16(2) // Write: output character (bit 7 ignored).
	DISPLAY_CR  = uint16(3)
)

// Keyboard control chords, translated to bus signals (or handled in
// place for the clear screen case) rather than queued as input.
const (
	keyExit        = uint8(0x03) // Ctrl-C
	keyDebug       = uint8(0x04) // Ctrl-D
	keyClearScreen = uint8(0x0C) // Ctrl-L
	keyReset       = uint8(0x12) // Ctrl-R
)

var _ = memory.Device(&PIA{})

// PIA is a 6820 with port A wired as an ASCII keyboard and port B as a
// teletype style display.
type PIA struct {
	base  uint16
	in    io.PortIn8
	out   io.PortOut8
	keys  []uint8
	kbdCR uint8
	dspCR uint8
}

// New returns a PIA decoding base through base+3. in may be nil for a
// machine with no keyboard; out may be nil to discard display traffic.
func New(base uint16, in io.PortIn8, out io.PortOut8) *PIA {
	return &PIA{base: base, in: in, out: out}
}

// Ports returns the four bus addresses this chip decodes, for handing
// straight to memory.Map.MapDevice.
func (p *PIA) Ports() []uint16 {
	return []uint16{p.base + KEYBOARD, p.base + KEYBOARD_CR, p.base + DISPLAY, p.base + DISPLAY_CR}
}

// Kind implements memory.Device.
func (p *PIA) Kind() string {
	return "PIA6820"
}

// Read implements memory.Device. The full bus address arrives so the
// chip does its own port decode.
func (p *PIA) Read(addr uint16) uint8 {
	switch addr - p.base {
	case KEYBOARD:
		if len(p.keys) == 0 {
			return 0x80
		}
		key := p.keys[0]
		p.keys = p.keys[1:]
		return key | 0x80
	case KEYBOARD_CR:
		if len(p.keys) > 0 {
			return p.kbdCR | 0x80
		}
		return p.kbdCR &^ 0x80
	case DISPLAY:
		// Bit 7 is display busy; this terminal is always ready.
		return 0
	case DISPLAY_CR:
		return p.dspCR
	}
	return 0
}

// Write implements memory.Device.
func (p *PIA) Write(addr uint16, val uint8) {
	switch addr - p.base {
	case KEYBOARD_CR:
		p.kbdCR = val &^ 0x80
	case DISPLAY:
		if p.out != nil {
			p.out.Output(val & 0x7F)
		}
	case DISPLAY_CR:
		p.dspCR = val
	}
}

// Housekeeping implements memory.Device: poll the keyboard port once,
// translating platform keystrokes into what an Apple-1 expects (DEL
// becomes '_', newline becomes CR, letters fold to upper case) and
// control chords into bus signals.
func (p *PIA) Housekeeping() []memory.Signal {
	if p.in == nil {
		return nil
	}
	key, ok := p.in.Input()
	if !ok {
		return nil
	}
	switch key {
	case keyExit:
		return []memory.Signal{memory.SignalExit}
	case keyReset:
		return []memory.Signal{memory.SignalReset}
	case keyDebug:
		return []memory.Signal{memory.SignalDebug}
	case keyClearScreen:
		p.clearScreen()
		return nil
	}
	switch {
	case key == 0x7F: // DEL
		key = '_'
	case key == '\n':
		key = '\r'
	case key >= 'a' && key <= 'z':
		key -= 'a' - 'A'
	}
	p.keys = append(p.keys, key&0x7F)
	return nil
}

// clearScreen pushes an ANSI erase sequence straight out the display
// port, bypassing the 7 bit character path.
func (p *PIA) clearScreen() {
	if p.out == nil {
		return
	}
	for _, b := range []uint8("\x1b[2J\x1b[H") {
		p.out.Output(b)
	}
}
