// Package memory implements a 16 bit address space for 6502 family
// systems where every address independently resolves to one of four
// element kinds: unmapped, RAM, ROM or a memory mapped device. The
// CPU only sees the narrow Bank interface; mapping, bulk loads and
// diagnostics are operations on the concrete Map.
package memory

import "fmt"

// Bank is the read/write interface the CPU (and any other bus master)
// consumes. Neither call may fail: unmapped reads return 0 and writes
// to ROM or unmapped addresses are discarded, exactly as real hardware
// behaves.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM and unmapped
	// addresses this is simply a no-op without any error.
	Write(addr uint16, val uint8)
}

const (
	// NumAddresses is the size of the 6502 address space.
	NumAddresses = 1 << 16

	// LastAddress is the highest mappable address.
	LastAddress = uint16(NumAddresses - 1)
)

type kind uint8

const (
	kindUnmapped kind = iota
	kindRAM
	kindROM
	kindDevice
)

func (k kind) String() string {
	switch k {
	case kindRAM:
		return "RAM"
	case kindROM:
		return "ROM"
	case kindDevice:
		return "Device"
	}
	return "Unmapped"
}

// element is the per address storage cell. Exactly one interpretation
// is live based on kind: cell for RAM/ROM bytes, dev for a shared
// device handle (which receives the full original address so it can
// decode sub ports).
type element struct {
	kind kind
	cell uint8
	dev  Device
}

// A few custom error types so map/load callers can distinguish failures.

// OutOfRange indicates a region request whose bounds don't describe a
// valid slice of the address space.
type OutOfRange struct {
	Start, End uint16
}

// Error implements the interface for error types.
func (e OutOfRange) Error() string {
	return fmt.Sprintf("invalid address range 0x%04X-0x%04X", e.Start, e.End)
}

// Overlap indicates a map request that would replace an already mapped
// element while the map is in strict mode.
type Overlap struct {
	Addr uint16
	Kind string
}

// Error implements the interface for error types.
func (e Overlap) Error() string {
	return fmt.Sprintf("address 0x%04X already mapped as %s", e.Addr, e.Kind)
}

// WontFit indicates a bulk load that would run past the end of the
// address space.
type WontFit struct {
	Start uint16
	Size  int
}

// Error implements the interface for error types.
func (e WontFit) Error() string {
	return fmt.Sprintf("%d bytes at 0x%04X won't fit in a 16 bit address space", e.Size, e.Start)
}

// WatchHit records one write observed through a watchpointed address.
type WatchHit struct {
	Addr uint16
	Val  uint8
}

// Map is a complete 64K memory map. The zero value is fully unmapped.
type Map struct {
	elems   [NumAddresses]element
	watch   [NumAddresses]bool
	hits    []WatchHit
	devices []Device
	strict  bool
}

// New returns an empty (fully unmapped) memory map.
func New() *Map {
	return &Map{}
}

// SetStrict controls overlap checking: when enabled, mapping over an
// already mapped element fails with Overlap instead of replacing it.
func (m *Map) SetStrict(strict bool) {
	m.strict = strict
}

// Read implements Bank. Every address resolves; unmapped reads return 0.
func (m *Map) Read(addr uint16) uint8 {
	e := &m.elems[addr]
	switch e.kind {
	case kindRAM, kindROM:
		return e.cell
	case kindDevice:
		return e.dev.Read(addr)
	}
	return 0
}

// Write implements Bank. ROM and unmapped writes are discarded.
func (m *Map) Write(addr uint16, val uint8) {
	if m.watch[addr] {
		m.hits = append(m.hits, WatchHit{addr, val})
	}
	e := &m.elems[addr]
	switch e.kind {
	case kindRAM:
		e.cell = val
	case kindDevice:
		e.dev.Write(addr, val)
	}
}

// checkRange validates start <= end and (strict mode) that nothing in
// the range is already mapped.
func (m *Map) checkRange(start, end uint16) error {
	if start > end {
		return OutOfRange{start, end}
	}
	if m.strict {
		for a := uint32(start); a <= uint32(end); a++ {
			if k := m.elems[a].kind; k != kindUnmapped {
				return Overlap{uint16(a), k.String()}
			}
		}
	}
	return nil
}

// MapRAM maps [start, end] as zeroed RAM cells.
func (m *Map) MapRAM(start, end uint16) error {
	if err := m.checkRange(start, end); err != nil {
		return err
	}
	for a := uint32(start); a <= uint32(end); a++ {
		m.elems[a] = element{kind: kindRAM}
	}
	return nil
}

// MapROM maps len(data) ROM cells starting at start, preloaded with data.
func (m *Map) MapROM(start uint16, data []uint8) error {
	if len(data) == 0 {
		return nil
	}
	if int(start)+len(data) > NumAddresses {
		return WontFit{start, len(data)}
	}
	end := start + uint16(len(data)) - 1
	if err := m.checkRange(start, end); err != nil {
		return err
	}
	for i, v := range data {
		m.elems[int(start)+i] = element{kind: kindROM, cell: v}
	}
	return nil
}

// MapDevice maps every address in addrs to the shared device handle.
// The device sees the full original address on Read/Write so it can
// decode its own sub ports.
func (m *Map) MapDevice(dev Device, addrs ...uint16) error {
	if m.strict {
		for _, a := range addrs {
			if k := m.elems[a].kind; k != kindUnmapped {
				return Overlap{a, k.String()}
			}
		}
	}
	for _, a := range addrs {
		m.elems[a] = element{kind: kindDevice, dev: dev}
	}
	known := false
	for _, d := range m.devices {
		if d == dev {
			known = true
			break
		}
	}
	if !known {
		m.devices = append(m.devices, dev)
	}
	return nil
}

// Unmap returns [start, end] to the unmapped state.
func (m *Map) Unmap(start, end uint16) error {
	if start > end {
		return OutOfRange{start, end}
	}
	for a := uint32(start); a <= uint32(end); a++ {
		m.elems[a] = element{}
	}
	// Rebuild the device list in case the range held a device's last port.
	m.devices = m.devices[:0]
	seen := make(map[Device]bool)
	for a := 0; a < NumAddresses; a++ {
		if e := &m.elems[a]; e.kind == kindDevice && !seen[e.dev] {
			seen[e.dev] = true
			m.devices = append(m.devices, e.dev)
		}
	}
	return nil
}

// LoadData writes data through the current mapping starting at start.
// RAM cells take the bytes, ROM and unmapped cells silently drop them
// and devices see normal writes.
func (m *Map) LoadData(start uint16, data []uint8) error {
	if int(start)+len(data) > NumAddresses {
		return WontFit{start, len(data)}
	}
	for i, v := range data {
		m.Write(start+uint16(i), v)
	}
	return nil
}

// SetWatch arms the write watchpoint on addr.
func (m *Map) SetWatch(addr uint16) {
	m.watch[addr] = true
}

// ClearWatch disarms the write watchpoint on addr.
func (m *Map) ClearWatch(addr uint16) {
	m.watch[addr] = false
}

// Watching reports whether addr has an armed watchpoint.
func (m *Map) Watching(addr uint16) bool {
	return m.watch[addr]
}

// WatchLog drains and returns the writes observed through armed
// watchpoints since the last call.
func (m *Map) WatchLog() []WatchHit {
	h := m.hits
	m.hits = nil
	return h
}

// Find scans the address space for pattern. Each read byte is masked
// with the corresponding mask byte before comparison, so callers can do
// wildcard matching (mask 0x00 matches anything). mask may be nil or
// shorter than pattern; missing entries default to 0xFF.
func (m *Map) Find(pattern, mask []uint8) []uint16 {
	var found []uint16
	if len(pattern) == 0 || len(pattern) > NumAddresses {
		return found
	}
	last := NumAddresses - len(pattern)
	for a := 0; a <= last; a++ {
		hit := true
		for i, p := range pattern {
			mb := uint8(0xFF)
			if i < len(mask) {
				mb = mask[i]
			}
			if m.Read(uint16(a+i))&mb != p&mb {
				hit = false
				break
			}
		}
		if hit {
			found = append(found, uint16(a))
		}
	}
	return found
}
