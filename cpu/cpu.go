// Package cpu defines the 6502/65C02 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation.
package cpu

import (
	"fmt"
	"sync/atomic"

	"github.com/pmerrill/65xx/irq"
	"github.com/pmerrill/65xx/memory"
)

// CPUType is an enumeration of the valid CPU types.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                         // Basic NMOS 6502, documented opcodes only.
	CPU_CMOS                         // Rockwell R65C02: 65C02 plus the BBR/BBS/RMB/SMB extensions.
	CPU_MAX                          // End of CPU enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	STACK_PAGE = uint16(0x0100)
	INITIAL_SP = uint8(0xFF)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Unused bit. Set in pushed copies, forced clear on pop.
	P_B         = uint8(0x10) // Software bit, visible only in pushed copies.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// A few custom error types to distinguish why the CPU stopped.

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// InvalidOpcode represents a fetched opcode the current variant doesn't define.
type InvalidOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the interface for error types.
func (e InvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// InvalidMode indicates the address resolver was asked to resolve a
// mode which has no effective address. This is an implementation bug,
// not a program bug, but it halts execution the same way.
type InvalidMode struct {
	Op string
	PC uint16
}

// Error implements the interface for error types.
func (e InvalidMode) Error() string {
	return fmt.Sprintf("%s: addressing mode has no address (PC 0x%04X)", e.Op, e.PC)
}

// LoopDetected represents a recursive infinite loop: the PC failed to
// advance on two consecutive instructions while loop detection was on.
type LoopDetected struct {
	PC uint16
}

// Error implements the interface for error types.
func (e LoopDetected) Error() string {
	return fmt.Sprintf("recursive loop detected at PC 0x%04X", e.PC)
}

// CPU is a single 65xx processor bound to a memory bank. Registers are
// exported for observation; mutate them outside of tests at your own risk.
// All asynchronous inputs (reset, IRQ, NMI, halt address) are safe to
// drive from other goroutines; everything else belongs to the goroutine
// calling Step.
type CPU struct {
	A  uint8  // Accumulator register
	X  uint8  // X register
	Y  uint8  // Y register
	SP uint8  // Stack pointer, offset into page 0x01
	P  uint8  // Status register
	PC uint16 // Program counter

	CyclesUsed     uint64 // Cycles consumed by the current instruction.
	ExpectedCycles uint64 // Table cost of the current instruction plus penalties.
	TotalCycles    uint64 // Cycles accumulated since power on.

	IRQCount uint64 // Serviced IRQ count, for diagnostics.
	NMICount uint64 // Serviced NMI count.
	BRKCount uint64 // Executed BRK count.

	cpuType CPUType
	mem     memory.Bank
	ops     *[256]*instruction

	irqSrc  irq.Sender // Optional level triggered IRQ source polled at instruction boundaries.
	nmiSrc  irq.Sender // Optional NMI source, edge detected across polls.
	nmiPrev bool

	irqLine irq.Line // Line raised by RaiseIRQ.
	nmiLine irq.Line // Edge latch raised by RaiseNMI.

	inReset      atomic.Bool
	pendingReset atomic.Bool
	haltAddr     atomic.Int64 // Halt address or -1 when unset.

	lastCrossed   bool // Whether the last indexed resolution crossed a page.
	loopDetection bool
	loopDetected  bool
	debugMode     bool
	hitException  bool
	lastErr       error
}

// Def defines a 65xx processor.
type Def struct {
	// Type is the distinct cpu type for this implementation.
	Type CPUType
	// Mem is the memory bank this CPU fetches through.
	Mem memory.Bank
	// IRQ is an optional IRQ source polled at instruction boundaries (level triggered).
	IRQ irq.Sender
	// NMI is an optional NMI source polled at instruction boundaries (edge triggered).
	NMI irq.Sender
}

// New creates a 65xx CPU of the requested type. The CPU powers on with
// the reset line asserted: call Reset once to release it, after which
// the first Step consumes the reset sequence and loads PC from the
// reset vector.
func New(def *Def) (*CPU, error) {
	if def.Type <= CPU_UNIMPLEMENTED || def.Type >= CPU_MAX {
		return nil, InvalidCPUState{fmt.Sprintf("CPU type %d is invalid", def.Type)}
	}
	if def.Mem == nil {
		return nil, InvalidCPUState{"no memory bank provided"}
	}
	c := &CPU{
		cpuType: def.Type,
		mem:     def.Mem,
		irqSrc:  def.IRQ,
		nmiSrc:  def.NMI,
	}
	switch def.Type {
	case CPU_NMOS:
		c.ops = &nmosTable
	case CPU_CMOS:
		c.ops = &cmosTable
	}
	c.haltAddr.Store(-1)
	c.inReset.Store(true)
	return c, nil
}

// Type returns the CPU variant this instance emulates.
func (c *CPU) Type() CPUType {
	return c.cpuType
}

// Reset drives the reset line. If the line is currently released it is
// asserted and Step becomes a no-op. If it is asserted (including the
// power on state) it is released and the next Step runs the reset exit
// sequence: PC loads from the reset vector, SP moves to 0xFF, the
// registers and status clear and 7 cycles are consumed.
func (c *CPU) Reset() {
	if c.inReset.Load() {
		c.inReset.Store(false)
		c.pendingReset.Store(true)
		return
	}
	c.inReset.Store(true)
}

// PowerOnReset cycles the reset line from whatever state it is in so
// that the next Step runs the reset exit sequence.
func (c *CPU) PowerOnReset() {
	if !c.inReset.Load() {
		c.inReset.Store(true)
	}
	c.Reset()
}

// InReset reports whether the reset line is asserted.
func (c *CPU) InReset() bool {
	return c.inReset.Load()
}

// exitReset is the reset release sequence.
func (c *CPU) exitReset() {
	c.pendingReset.Store(false)
	c.SP = INITIAL_SP
	c.A, c.X, c.Y = 0, 0, 0
	c.P = 0
	c.debugMode = false
	c.hitException = false
	c.lastErr = nil
	c.loopDetected = false
	c.irqLine.Ack()
	c.nmiLine.Ack()
	c.nmiPrev = false
	c.PC = c.readWord(RESET_VECTOR)
	c.spendCycles(5) // 7 total with the two vector reads.
	c.ExpectedCycles = 7
}

// TestReset forces the CPU straight into a known running state without
// touching the reset vector: PC and SP take the given values, the other
// registers and status clear, no cycles are consumed. Test harness use only.
func (c *CPU) TestReset(pc uint16, sp uint8) {
	c.inReset.Store(false)
	c.pendingReset.Store(false)
	c.SP = sp
	c.A, c.X, c.Y = 0, 0, 0
	c.P = 0
	c.debugMode = false
	c.hitException = false
	c.lastErr = nil
	c.loopDetected = false
	c.irqLine.Ack()
	c.nmiLine.Ack()
	c.nmiPrev = false
	c.PC = pc
	c.CyclesUsed = 0
	c.ExpectedCycles = 0
}

// Step executes one instruction (or the pending reset sequence) and
// services any interrupt that is pending at the instruction boundary.
// Fatal conditions (invalid opcode, resolver misuse, recursive loop)
// mark the CPU as having hit an exception; after that Step keeps
// returning the same error without executing until the CPU is reset.
func (c *CPU) Step() error {
	if c.inReset.Load() {
		return nil
	}
	c.CyclesUsed = 0
	defer func() {
		c.TotalCycles += c.CyclesUsed
	}()
	// The reset exit sequence runs before the exception check so a
	// full reset cycle always recovers a faulted CPU.
	if c.pendingReset.Load() {
		c.exitReset()
		return nil
	}
	if c.hitException {
		return c.lastErr
	}
	if ha := c.haltAddr.Load(); ha >= 0 && uint16(ha) == c.PC {
		return nil
	}

	startPC := c.PC
	op := c.readBytePC()
	in := c.ops[op]
	if in == nil {
		return c.fault(InvalidOpcode{op, startPC})
	}
	c.ExpectedCycles = uint64(in.cycles)
	if err := in.fn(c, in); err != nil {
		return c.fault(err)
	}

	if startPC == c.PC {
		// The instruction didn't advance the PC (jmp/branch to self).
		// First sighting is only recorded; a second in a row is a hard
		// loop when detection is on.
		if c.loopDetected && c.loopDetection {
			return c.fault(LoopDetected{c.PC})
		}
		c.loopDetected = true
		return nil
	}
	c.loopDetected = false

	if !c.serviceNMI() {
		c.serviceIRQ()
	}
	return nil
}

// Run steps the CPU until it reaches the halt address (returns nil),
// re-enters reset, or hits a fatal error.
func (c *CPU) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if c.inReset.Load() {
			return nil
		}
		if ha := c.haltAddr.Load(); ha >= 0 && uint16(ha) == c.PC {
			return nil
		}
	}
}

func (c *CPU) fault(err error) error {
	c.hitException = true
	c.lastErr = err
	return err
}

// RaiseIRQ raises the maskable interrupt line. Serviced at the next
// instruction boundary if the I flag is clear; remains pending otherwise.
func (c *CPU) RaiseIRQ() {
	c.irqLine.Raise()
}

// RaiseNMI latches a non maskable interrupt edge. Serviced at the next
// instruction boundary regardless of the I flag.
func (c *CPU) RaiseNMI() {
	c.nmiLine.Raise()
}

// PendingIRQ reports whether an IRQ raised via RaiseIRQ awaits service.
func (c *CPU) PendingIRQ() bool {
	return c.irqLine.Raised()
}

// PendingNMI reports whether an NMI edge awaits service.
func (c *CPU) PendingNMI() bool {
	return c.nmiLine.Raised()
}

func (c *CPU) nmiPending() bool {
	if c.nmiSrc != nil {
		cur := c.nmiSrc.Raised()
		if cur && !c.nmiPrev {
			c.nmiLine.Raise()
		}
		c.nmiPrev = cur
	}
	return c.nmiLine.Raised()
}

func (c *CPU) serviceNMI() bool {
	if !c.nmiPending() {
		return false
	}
	c.nmiLine.Ack()
	c.NMICount++
	c.interrupt(NMI_VECTOR)
	return true
}

func (c *CPU) serviceIRQ() bool {
	pending := c.irqLine.Raised() || (c.irqSrc != nil && c.irqSrc.Raised())
	if !pending || c.P&P_INTERRUPT != 0 {
		return false
	}
	c.irqLine.Ack()
	c.IRQCount++
	c.interrupt(IRQ_VECTOR)
	return true
}

// interrupt runs the hardware interrupt sequence: push PC (high then
// low), push P with the unused and software bits set, mask further
// IRQs and load PC from the vector. 7 cycles.
func (c *CPU) interrupt(vector uint16) {
	c.pushWord(c.PC)
	c.push(c.P | P_S1 | P_B)
	c.P |= P_INTERRUPT
	c.spendCycles(2)
	c.PC = c.readWord(vector)
	c.ExpectedCycles += 7
}

// SetResetVector stores addr little-endian at 0xFFFC.
func (c *CPU) SetResetVector(addr uint16) {
	c.writeVector(RESET_VECTOR, addr)
}

// SetInterruptVector stores addr little-endian at 0xFFFE (IRQ and BRK).
func (c *CPU) SetInterruptVector(addr uint16) {
	c.writeVector(IRQ_VECTOR, addr)
}

// SetNMIVector stores addr little-endian at 0xFFFA.
func (c *CPU) SetNMIVector(addr uint16) {
	c.writeVector(NMI_VECTOR, addr)
}

// writeVector pokes directly through the bank without cycle accounting;
// these are host setup helpers, not emulated stores.
func (c *CPU) writeVector(vector, addr uint16) {
	c.mem.Write(vector, uint8(addr&0xFF))
	c.mem.Write(vector+1, uint8(addr>>8))
}

// SetHaltAddress makes Step a no-op once PC reaches addr; Run returns
// when it does. Safe to call from other goroutines.
func (c *CPU) SetHaltAddress(addr uint16) {
	c.haltAddr.Store(int64(addr))
}

// ClearHaltAddress removes the halt address.
func (c *CPU) ClearHaltAddress() {
	c.haltAddr.Store(-1)
}

// Halted reports whether PC currently sits at the halt address.
func (c *CPU) Halted() bool {
	ha := c.haltAddr.Load()
	return ha >= 0 && uint16(ha) == c.PC
}

// EnableLoopDetection controls whether a PC that fails to advance twice
// in a row raises the LoopDetected fault.
func (c *CPU) EnableLoopDetection(on bool) {
	c.loopDetection = on
	if !on {
		c.loopDetected = false
	}
}

// LoopDetected reports whether the last instruction failed to advance
// the PC. Hosts may poll this between steps even with detection off.
func (c *CPU) LoopDetected() bool {
	return c.loopDetected
}

// SetDebug sets or clears the debug mode flag. The flag is advisory
// state for the host (cleared by reset); the CPU itself only reports it.
func (c *CPU) SetDebug(on bool) {
	c.debugMode = on
}

// Debug reports the debug mode flag.
func (c *CPU) Debug() bool {
	return c.debugMode
}

// HitException reports whether a fatal error stopped execution. The CPU
// state remains inspectable; reset clears the condition.
func (c *CPU) HitException() bool {
	return c.hitException
}

// Err returns the fatal error recorded by the last exception, or nil.
func (c *CPU) Err() error {
	return c.lastErr
}

// FlagC returns the carry flag.
func (c *CPU) FlagC() bool { return c.P&P_CARRY != 0 }

// FlagZ returns the zero flag.
func (c *CPU) FlagZ() bool { return c.P&P_ZERO != 0 }

// FlagI returns the interrupt disable flag.
func (c *CPU) FlagI() bool { return c.P&P_INTERRUPT != 0 }

// FlagD returns the decimal mode flag.
func (c *CPU) FlagD() bool { return c.P&P_DECIMAL != 0 }

// FlagV returns the overflow flag.
func (c *CPU) FlagV() bool { return c.P&P_OVERFLOW != 0 }

// FlagN returns the negative flag.
func (c *CPU) FlagN() bool { return c.P&P_NEGATIVE != 0 }

// Bus and cycle plumbing. Every bus access costs exactly one cycle;
// internal (dead) cycles are spent explicitly where the hardware has them.

func (c *CPU) spendCycle() {
	c.CyclesUsed++
}

func (c *CPU) spendCycles(n uint64) {
	c.CyclesUsed += n
}

func (c *CPU) readByte(addr uint16) uint8 {
	c.CyclesUsed++
	return c.mem.Read(addr)
}

func (c *CPU) writeByte(addr uint16, val uint8) {
	c.CyclesUsed++
	c.mem.Write(addr, val)
}

func (c *CPU) readBytePC() uint8 {
	val := c.readByte(c.PC)
	c.PC++
	return val
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.readByte(addr)
	hi := c.readByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) readWordPC() uint16 {
	lo := c.readBytePC()
	hi := c.readBytePC()
	return uint16(hi)<<8 | uint16(lo)
}

// readZPWord reads a 16 bit pointer from the zero page with 8 bit wrap
// on the high byte fetch.
func (c *CPU) readZPWord(zp uint8) uint16 {
	lo := c.readByte(uint16(zp))
	hi := c.readByte(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// Stack operations. The stack never leaves page 0x01.

func (c *CPU) push(val uint8) {
	c.writeByte(STACK_PAGE|uint16(c.SP), val)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.readByte(STACK_PAGE | uint16(c.SP))
}

func (c *CPU) pushWord(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val & 0xFF))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// pushPS pushes the status register with the unused and software bits
// forced on, as both PHP and interrupt entry do.
func (c *CPU) pushPS() {
	c.push(c.P | P_S1 | P_B)
}

// popPS loads the status register from the stack with the unused and
// software bits forced clear in the live copy.
func (c *CPU) popPS() {
	c.P = c.pop() &^ (P_S1 | P_B)
}

// Flag computation helpers.

// zeroCheck sets the Z flag based on the register contents.
func (c *CPU) zeroCheck(reg uint8) {
	c.P &^= P_ZERO
	if reg == 0 {
		c.P |= P_ZERO
	}
}

// negativeCheck sets the N flag based on the register contents.
func (c *CPU) negativeCheck(reg uint8) {
	c.P &^= P_NEGATIVE
	if reg&P_NEGATIVE != 0 {
		c.P |= P_NEGATIVE
	}
}

// carryCheck sets the C flag if an 8 bit ALU operation (passed as a 16
// bit result) carried out. In some BCD overflow cases the value can
// reach 0x200 which is still a carry.
func (c *CPU) carryCheck(res uint16) {
	c.P &^= P_CARRY
	if res >= 0x100 {
		c.P |= P_CARRY
	}
}

// overflowCheck sets the V flag if the ALU operation caused a two's
// complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (c *CPU) overflowCheck(reg uint8, arg uint8, res uint8) {
	c.P &^= P_OVERFLOW
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.P |= P_OVERFLOW
	}
}

// loadRegister loads reg with val and sets Z and N from it.
func (c *CPU) loadRegister(reg *uint8, val uint8) {
	*reg = val
	c.zeroCheck(val)
	c.negativeCheck(val)
}
