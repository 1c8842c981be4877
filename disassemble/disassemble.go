// Package disassemble implements a one instruction disassembler for
// the 6502/65C02 opcode sets. It reads through the same table the CPU
// executes from so mnemonics and lengths can't drift from execution.
package disassemble

import (
	"fmt"

	"github.com/pmerrill/65xx/cpu"
	"github.com/pmerrill/65xx/memory"
)

// Step disassembles the instruction at pc for the given CPU type,
// returning the rendered text and the number of bytes to advance to
// reach the next instruction. This does not interpret instructions so
// it always reads the full encoded length past pc; make sure those
// addresses are safe to read. Unknown opcodes render as a byte literal
// and advance one.
func Step(pc uint16, cpuType cpu.CPUType, mem memory.Bank) (string, int) {
	op := mem.Read(pc)
	info, ok := cpu.Lookup(cpuType, op)
	if !ok {
		return fmt.Sprintf("%.4X %.2X          ???", pc, op), 1
	}

	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)

	var operand string
	switch {
	case len(info.Name) == 4 && (info.Name[:3] == "bbr" || info.Name[:3] == "bbs"):
		// Rockwell branches carry both a zero page operand and a
		// relative offset.
		dest := pc + 3 + uint16(int16(int8(b2)))
		operand = fmt.Sprintf("$%.2X,$%.4X", b1, dest)
	case info.Mode == cpu.ModeImplied:
		operand = ""
	case info.Mode == cpu.ModeAccumulator:
		operand = "A"
	case info.Mode == cpu.ModeImmediate:
		operand = fmt.Sprintf("#$%.2X", b1)
	case info.Mode == cpu.ModeZeroPage:
		operand = fmt.Sprintf("$%.2X", b1)
	case info.Mode == cpu.ModeZeroPageX:
		operand = fmt.Sprintf("$%.2X,X", b1)
	case info.Mode == cpu.ModeZeroPageY:
		operand = fmt.Sprintf("$%.2X,Y", b1)
	case info.Mode == cpu.ModeRelative:
		dest := pc + 2 + uint16(int16(int8(b1)))
		operand = fmt.Sprintf("$%.4X", dest)
	case info.Mode == cpu.ModeAbsolute:
		operand = fmt.Sprintf("$%.2X%.2X", b2, b1)
	case info.Mode == cpu.ModeAbsoluteX:
		operand = fmt.Sprintf("$%.2X%.2X,X", b2, b1)
	case info.Mode == cpu.ModeAbsoluteY:
		operand = fmt.Sprintf("$%.2X%.2X,Y", b2, b1)
	case info.Mode == cpu.ModeIndirect:
		operand = fmt.Sprintf("($%.2X%.2X)", b2, b1)
	case info.Mode == cpu.ModeIndirectX:
		operand = fmt.Sprintf("($%.2X,X)", b1)
	case info.Mode == cpu.ModeIndirectY:
		operand = fmt.Sprintf("($%.2X),Y", b1)
	case info.Mode == cpu.ModeZeroPageIndirect:
		operand = fmt.Sprintf("($%.2X)", b1)
	case info.Mode == cpu.ModeAbsoluteIndexedIndirect:
		operand = fmt.Sprintf("($%.2X%.2X,X)", b2, b1)
	}

	var raw string
	switch info.Length {
	case 1:
		raw = fmt.Sprintf("%.2X", op)
	case 2:
		raw = fmt.Sprintf("%.2X %.2X", op, b1)
	default:
		raw = fmt.Sprintf("%.2X %.2X %.2X", op, b1, b2)
	}

	text := fmt.Sprintf("%.4X %-8s  %s", pc, raw, info.Name)
	if operand != "" {
		text += " " + operand
	}
	return text, info.Length
}
