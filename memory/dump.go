package memory

import (
	"fmt"
	"strings"
)

// Hexdump renders [start, end] as classic hexdump text: 16 bytes per
// line with a printable ASCII gutter.
func (m *Map) Hexdump(start, end uint16) string {
	if start > end {
		return ""
	}
	var b strings.Builder
	for base := uint32(start) &^ 0x0F; base <= uint32(end); base += 16 {
		fmt.Fprintf(&b, "%04X ", base)
		var ascii [16]byte
		for i := uint32(0); i < 16; i++ {
			a := base + i
			if a < uint32(start) || a > uint32(end) {
				b.WriteString("   ")
				ascii[i] = ' '
				continue
			}
			v := m.Read(uint16(a))
			fmt.Fprintf(&b, "%02X ", v)
			if v >= 0x20 && v < 0x7F {
				ascii[i] = v
			} else {
				ascii[i] = '.'
			}
		}
		fmt.Fprintf(&b, " %s\n", string(ascii[:]))
	}
	return b.String()
}

// Summary renders the memory map as coalesced regions, one line per
// contiguous run of a single element kind (device runs also name the
// device).
func (m *Map) Summary() string {
	var b strings.Builder
	label := func(a uint16) string {
		e := &m.elems[a]
		if e.kind == kindDevice {
			return fmt.Sprintf("Device (%s)", e.dev.Kind())
		}
		return e.kind.String()
	}
	runStart := uint16(0)
	runLabel := label(0)
	flush := func(end uint16) {
		fmt.Fprintf(&b, "%04X-%04X %s\n", runStart, end, runLabel)
	}
	for a := uint32(1); a < NumAddresses; a++ {
		if l := label(uint16(a)); l != runLabel {
			flush(uint16(a - 1))
			runStart = uint16(a)
			runLabel = l
		}
	}
	flush(LastAddress)
	return b.String()
}
