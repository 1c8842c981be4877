package cpu

// AddrMode enumerates the addressing modes of the 6502 family. The last
// two are 65C02 only.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeRelative
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeZeroPageIndirect
	ModeAbsoluteIndexedIndirect
)

func (m AddrMode) String() string {
	switch m {
	case ModeImplied:
		return "implied"
	case ModeAccumulator:
		return "accumulator"
	case ModeImmediate:
		return "immediate"
	case ModeZeroPage:
		return "zeropage"
	case ModeZeroPageX:
		return "zeropage,x"
	case ModeZeroPageY:
		return "zeropage,y"
	case ModeRelative:
		return "relative"
	case ModeAbsolute:
		return "absolute"
	case ModeAbsoluteX:
		return "absolute,x"
	case ModeAbsoluteY:
		return "absolute,y"
	case ModeIndirect:
		return "(indirect)"
	case ModeIndirectX:
		return "(indirect,x)"
	case ModeIndirectY:
		return "(indirect),y"
	case ModeZeroPageIndirect:
		return "(zeropage)"
	case ModeAbsoluteIndexedIndirect:
		return "(absolute,x)"
	}
	return "unknown"
}

// pageCrossed reports whether two addresses sit on different pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// getAddress resolves the instruction's effective address, advancing PC
// past the operand and charging cycles for every bus access plus the
// internal index fixups. Modes that have no effective address (implied,
// accumulator, immediate, jmp-style indirect) fault the exception path;
// their handlers never resolve through here.
func (c *CPU) getAddress(in *instruction) (uint16, error) {
	c.lastCrossed = false
	switch in.mode {
	case ModeZeroPage:
		return uint16(c.readBytePC()), nil
	case ModeZeroPageX:
		base := c.readBytePC()
		c.spendCycle()
		return uint16(base + c.X), nil
	case ModeZeroPageY:
		base := c.readBytePC()
		c.spendCycle()
		return uint16(base + c.Y), nil
	case ModeAbsolute:
		return c.readWordPC(), nil
	case ModeAbsoluteX:
		base := c.readWordPC()
		ea := base + uint16(c.X)
		c.lastCrossed = pageCrossed(base, ea)
		if in.flags&opPageBoundary != 0 && c.lastCrossed {
			c.spendCycle()
			c.ExpectedCycles++
		}
		return ea, nil
	case ModeAbsoluteY:
		base := c.readWordPC()
		ea := base + uint16(c.Y)
		c.lastCrossed = pageCrossed(base, ea)
		if in.flags&opPageBoundary != 0 && c.lastCrossed {
			c.spendCycle()
			c.ExpectedCycles++
		}
		return ea, nil
	case ModeIndirectX:
		zp := c.readBytePC()
		c.spendCycle()
		return c.readZPWord(zp + c.X), nil
	case ModeIndirectY:
		zp := c.readBytePC()
		base := c.readZPWord(zp)
		ea := base + uint16(c.Y)
		c.lastCrossed = pageCrossed(base, ea)
		if in.flags&opPageBoundary != 0 && c.lastCrossed {
			c.spendCycle()
			c.ExpectedCycles++
		}
		return ea, nil
	case ModeZeroPageIndirect:
		zp := c.readBytePC()
		return c.readZPWord(zp), nil
	case ModeAbsoluteIndexedIndirect:
		ptr := c.readWordPC() + uint16(c.X)
		c.spendCycle()
		return c.readWord(ptr), nil
	}
	return 0, InvalidMode{in.name, c.PC}
}

// getData fetches the instruction's operand value: the immediate byte
// for immediate mode, a bus read at the effective address otherwise.
func (c *CPU) getData(in *instruction) (uint8, error) {
	if in.mode == ModeImmediate {
		return c.readBytePC(), nil
	}
	addr, err := c.getAddress(in)
	if err != nil {
		return 0, err
	}
	return c.readByte(addr), nil
}
