// Package apple1 is the main logic for pulling together an Apple-1
// style machine: RAM, a monitor ROM, a PIA mapped terminal and a 65xx
// CPU. The chips are implemented in other packages and most of the
// logic here simply pulls together the memory mappings and routes the
// bus signals devices raise during housekeeping.
package apple1

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pmerrill/65xx/cpu"
	"github.com/pmerrill/65xx/io"
	"github.com/pmerrill/65xx/memory"
	"github.com/pmerrill/65xx/pia6820"
)

const (
	// DefaultPIABase is where the original machine decoded its PIA.
	DefaultPIABase = uint16(0xD010)

	// DefaultRAMEnd gives the machine RAM from 0x0000 up to the I/O hole.
	DefaultRAMEnd = uint16(0xBFFF)
)

// Def describes the machine to build.
type Def struct {
	// Variant selects the CPU type (defaults to CPU_CMOS, the 65C02
	// board revision).
	Variant cpu.CPUType
	// RAMEnd is the top of contiguous RAM from 0x0000 (DefaultRAMEnd when 0).
	RAMEnd uint16
	// ROM is the monitor image mapped read only at ROMBase. The reset
	// vector must live inside it (or in RAM poked before running).
	ROM     []uint8
	ROMBase uint16
	// PIABase is where the PIA decodes its four registers (DefaultPIABase when 0).
	PIABase uint16
	// Keyboard and Display are the PIA's ports; nil disables either side.
	Keyboard io.PortIn8
	Display  io.PortOut8
	// ClockHz throttles execution to roughly this many CPU cycles per
	// second. 0 runs flat out.
	ClockHz int64
}

// Machine is a fully wired Apple-1.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Map
	PIA *pia6820.PIA

	// DebugFunc, when set, runs on a Debug bus signal or a CPU fault
	// with the machine stopped and inspectable.
	DebugFunc func(*Machine)

	clockHz int64
	started time.Time
}

// New builds the machine and releases the CPU reset line; the first
// Step runs the reset sequence through the vector in ROM.
func New(def *Def) (*Machine, error) {
	if len(def.ROM) == 0 {
		return nil, errors.New("apple1: no ROM image")
	}
	variant := def.Variant
	if variant == cpu.CPU_UNIMPLEMENTED {
		variant = cpu.CPU_CMOS
	}
	ramEnd := def.RAMEnd
	if ramEnd == 0 {
		ramEnd = DefaultRAMEnd
	}
	piaBase := def.PIABase
	if piaBase == 0 {
		piaBase = DefaultPIABase
	}

	m := memory.New()
	if err := m.MapRAM(0x0000, ramEnd); err != nil {
		return nil, fmt.Errorf("apple1: map RAM: %w", err)
	}
	if err := m.MapROM(def.ROMBase, def.ROM); err != nil {
		return nil, fmt.Errorf("apple1: map ROM: %w", err)
	}
	pia := pia6820.New(piaBase, def.Keyboard, def.Display)
	if err := m.MapDevice(pia, pia.Ports()...); err != nil {
		return nil, fmt.Errorf("apple1: map PIA: %w", err)
	}

	c, err := cpu.New(&cpu.Def{Type: variant, Mem: m})
	if err != nil {
		return nil, fmt.Errorf("apple1: %w", err)
	}
	c.Reset()

	return &Machine{CPU: c, Mem: m, PIA: pia, clockHz: def.ClockHz}, nil
}

// Step executes one instruction, runs device housekeeping and returns
// the strongest signal the devices raised.
func (m *Machine) Step() (memory.Signal, error) {
	err := m.CPU.Step()
	sig := m.Mem.Housekeeping()
	return sig, err
}

// Run drives the machine until a device signals Exit or the CPU faults
// with no DebugFunc installed to catch it. Reset signals cycle the CPU
// reset line; Debug signals hand control to DebugFunc.
func (m *Machine) Run() error {
	m.started = time.Now()
	for {
		sig, err := m.Step()
		if err != nil {
			if m.DebugFunc != nil {
				m.CPU.SetDebug(true)
				m.DebugFunc(m)
				// Unless the debug hook reset the CPU the fault is
				// sticky, so give up rather than spin on it.
				if m.CPU.HitException() {
					return err
				}
				continue
			}
			return err
		}
		switch sig {
		case memory.SignalExit:
			return nil
		case memory.SignalReset:
			log.Printf("apple1: reset")
			m.CPU.PowerOnReset()
		case memory.SignalDebug:
			if m.DebugFunc != nil {
				m.CPU.SetDebug(true)
				m.DebugFunc(m)
				m.CPU.SetDebug(false)
			}
		}
		m.throttle()
	}
}

// throttle busy waits until wall time catches up with the cycle count
// at the configured clock rate. The spin is deliberate: sleeping
// overshoots by scheduler quanta which is very visible at 1MHz.
func (m *Machine) throttle() {
	if m.clockHz <= 0 {
		return
	}
	target := time.Duration(int64(m.CPU.TotalCycles) * int64(time.Second) / m.clockHz)
	for time.Since(m.started) < target {
	}
}
