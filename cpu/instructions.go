package cpu

// Instruction handlers. Each handler owns the full execution of its
// instruction after the opcode fetch: operand fetches, effective
// address resolution, bus traffic and the explicit internal (dead)
// cycles the hardware spends, so that CyclesUsed lands exactly on the
// table cost plus any penalties.

// Loads and stores.

func (c *CPU) iLDA(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, val)
	return nil
}

func (c *CPU) iLDX(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.X, val)
	return nil
}

func (c *CPU) iLDY(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.Y, val)
	return nil
}

// store writes val at the resolved address. Indexed stores always pay
// the index fixup cycle whether or not the page boundary was crossed.
func (c *CPU) store(in *instruction, val uint8) error {
	addr, err := c.getAddress(in)
	if err != nil {
		return err
	}
	switch in.mode {
	case ModeAbsoluteX, ModeAbsoluteY, ModeIndirectY:
		c.spendCycle()
	}
	c.writeByte(addr, val)
	return nil
}

func (c *CPU) iSTA(in *instruction) error { return c.store(in, c.A) }
func (c *CPU) iSTX(in *instruction) error { return c.store(in, c.X) }
func (c *CPU) iSTY(in *instruction) error { return c.store(in, c.Y) }
func (c *CPU) iSTZ(in *instruction) error { return c.store(in, 0) }

// Transfers.

func (c *CPU) iTAX(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.X, c.A)
	return nil
}

func (c *CPU) iTAY(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.Y, c.A)
	return nil
}

func (c *CPU) iTXA(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.A, c.X)
	return nil
}

func (c *CPU) iTYA(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.A, c.Y)
	return nil
}

func (c *CPU) iTSX(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.X, c.SP)
	return nil
}

// iTXS is the only transfer that doesn't touch flags.
func (c *CPU) iTXS(*instruction) error {
	c.spendCycle()
	c.SP = c.X
	return nil
}

// Stack.

func (c *CPU) iPHA(*instruction) error {
	c.spendCycle()
	c.push(c.A)
	return nil
}

func (c *CPU) iPHP(*instruction) error {
	c.spendCycle()
	c.pushPS()
	return nil
}

func (c *CPU) iPLA(*instruction) error {
	c.spendCycles(2)
	c.loadRegister(&c.A, c.pop())
	return nil
}

func (c *CPU) iPLP(*instruction) error {
	c.spendCycles(2)
	c.popPS()
	return nil
}

func (c *CPU) iPHX(*instruction) error {
	c.spendCycle()
	c.push(c.X)
	return nil
}

func (c *CPU) iPHY(*instruction) error {
	c.spendCycle()
	c.push(c.Y)
	return nil
}

func (c *CPU) iPLX(*instruction) error {
	c.spendCycles(2)
	c.loadRegister(&c.X, c.pop())
	return nil
}

func (c *CPU) iPLY(*instruction) error {
	c.spendCycles(2)
	c.loadRegister(&c.Y, c.pop())
	return nil
}

// Logic.

func (c *CPU) iAND(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A&val)
	return nil
}

func (c *CPU) iORA(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A|val)
	return nil
}

func (c *CPU) iEOR(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.loadRegister(&c.A, c.A^val)
	return nil
}

// Arithmetic.

func (c *CPU) iADC(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	if c.P&P_DECIMAL != 0 {
		c.adcBCD(val)
		c.decimalPenalty()
		return nil
	}
	c.adcBinary(val)
	return nil
}

func (c *CPU) iSBC(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	if c.P&P_DECIMAL != 0 {
		c.sbcBCD(val)
		c.decimalPenalty()
		return nil
	}
	// Binary SBC is ADC of the ones complement.
	c.adcBinary(^val)
	return nil
}

// decimalPenalty charges the one extra cycle CMOS parts spend on
// decimal mode ADC/SBC.
func (c *CPU) decimalPenalty() {
	if c.cpuType == CPU_CMOS {
		c.spendCycle()
		c.ExpectedCycles++
	}
}

func (c *CPU) adcBinary(val uint8) {
	carry := c.P & P_CARRY
	sum := c.A + val + carry
	c.overflowCheck(c.A, val, sum)
	c.carryCheck(uint16(c.A) + uint16(val) + uint16(carry))
	c.loadRegister(&c.A, sum)
}

// adcBCD adds packed BCD operands with the standard per nibble
// correction. BCD details: http://6502.org/tutorials/decimal_mode.html
func (c *CPU) adcBCD(val uint8) {
	carry := c.P & P_CARRY
	aL := (c.A & 0x0F) + (val & 0x0F) + carry
	if aL >= 0x0A {
		aL = ((aL + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(c.A&0xF0) + uint16(val&0xF0) + uint16(aL)
	if sum >= 0xA0 {
		sum += 0x60
	}
	res := uint8(sum)
	seq := (c.A & 0xF0) + (val & 0xF0) + aL
	c.overflowCheck(c.A, val, seq)
	c.carryCheck(sum)
	c.A = res
	c.zeroCheck(res)
	c.negativeCheck(res)
}

func (c *CPU) sbcBCD(val uint8) {
	carry := int16(c.P & P_CARRY)
	aL := int16(c.A&0x0F) - int16(val&0x0F) + carry - 1
	if aL < 0 {
		aL = ((aL - 0x06) & 0x0F) - 0x10
	}
	diff := int16(c.A&0xF0) - int16(val&0xF0) + aL
	if diff < 0 {
		diff -= 0x60
	}
	res := uint8(diff)
	// C, V come from the equivalent binary computation.
	bin := uint16(c.A) + uint16(^val) + uint16(c.P&P_CARRY)
	c.overflowCheck(c.A, ^val, uint8(bin))
	c.carryCheck(bin)
	c.A = res
	c.zeroCheck(res)
	c.negativeCheck(res)
}

// Compares.

func (c *CPU) compare(reg uint8, in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	res := reg - val
	c.zeroCheck(res)
	c.negativeCheck(res)
	c.carryCheck(uint16(reg) + uint16(^val) + 1)
	return nil
}

func (c *CPU) iCMP(in *instruction) error { return c.compare(c.A, in) }
func (c *CPU) iCPX(in *instruction) error { return c.compare(c.X, in) }
func (c *CPU) iCPY(in *instruction) error { return c.compare(c.Y, in) }

// Read-modify-write plumbing. The hardware spends an internal cycle
// between the read and the write; absolute,X additionally pays the
// index fixup except on CMOS parts when no page boundary was crossed
// (the table marks those entries).
func (c *CPU) rmw(in *instruction, f func(uint8) uint8) error {
	addr, err := c.getAddress(in)
	if err != nil {
		return err
	}
	val := c.readByte(addr)
	c.spendCycle()
	if in.mode == ModeAbsoluteX {
		if in.flags&opNoPageBoundary != 0 && !c.lastCrossed {
			c.ExpectedCycles--
		} else {
			c.spendCycle()
		}
	}
	c.writeByte(addr, f(val))
	return nil
}

// Increment / decrement.

func (c *CPU) incVal(val uint8) uint8 {
	val++
	c.zeroCheck(val)
	c.negativeCheck(val)
	return val
}

func (c *CPU) decVal(val uint8) uint8 {
	val--
	c.zeroCheck(val)
	c.negativeCheck(val)
	return val
}

func (c *CPU) iINC(in *instruction) error { return c.rmw(in, c.incVal) }
func (c *CPU) iDEC(in *instruction) error { return c.rmw(in, c.decVal) }

func (c *CPU) iINX(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.X, c.X+1)
	return nil
}

func (c *CPU) iINY(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.Y, c.Y+1)
	return nil
}

func (c *CPU) iDEX(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.X, c.X-1)
	return nil
}

func (c *CPU) iDEY(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.Y, c.Y-1)
	return nil
}

func (c *CPU) iINA(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.A, c.A+1)
	return nil
}

func (c *CPU) iDEA(*instruction) error {
	c.spendCycle()
	c.loadRegister(&c.A, c.A-1)
	return nil
}

// Shifts and rotates.

func (c *CPU) aslVal(val uint8) uint8 {
	c.carryCheck(uint16(val) << 1)
	res := val << 1
	c.zeroCheck(res)
	c.negativeCheck(res)
	return res
}

func (c *CPU) lsrVal(val uint8) uint8 {
	c.P &^= P_CARRY
	if val&0x01 != 0 {
		c.P |= P_CARRY
	}
	res := val >> 1
	c.zeroCheck(res)
	c.negativeCheck(res)
	return res
}

func (c *CPU) rolVal(val uint8) uint8 {
	carry := c.P & P_CARRY
	c.carryCheck(uint16(val) << 1)
	res := val<<1 | carry
	c.zeroCheck(res)
	c.negativeCheck(res)
	return res
}

func (c *CPU) rorVal(val uint8) uint8 {
	carry := c.P & P_CARRY
	c.P &^= P_CARRY
	if val&0x01 != 0 {
		c.P |= P_CARRY
	}
	res := val>>1 | carry<<7
	c.zeroCheck(res)
	c.negativeCheck(res)
	return res
}

func (c *CPU) accOrRMW(in *instruction, f func(uint8) uint8) error {
	if in.mode == ModeAccumulator {
		c.spendCycle()
		c.A = f(c.A)
		return nil
	}
	return c.rmw(in, f)
}

func (c *CPU) iASL(in *instruction) error { return c.accOrRMW(in, c.aslVal) }
func (c *CPU) iLSR(in *instruction) error { return c.accOrRMW(in, c.lsrVal) }
func (c *CPU) iROL(in *instruction) error { return c.accOrRMW(in, c.rolVal) }
func (c *CPU) iROR(in *instruction) error { return c.accOrRMW(in, c.rorVal) }

// Branches. Base cost covers the untaken case; taken adds a cycle and
// landing on a different page adds one more.
func (c *CPU) branch(taken bool) error {
	offset := c.readBytePC()
	if !taken {
		return nil
	}
	c.spendCycle()
	c.ExpectedCycles++
	old := c.PC
	c.PC = old + uint16(int16(int8(offset)))
	if pageCrossed(old, c.PC) {
		c.spendCycle()
		c.ExpectedCycles++
	}
	return nil
}

func (c *CPU) iBCC(*instruction) error { return c.branch(c.P&P_CARRY == 0) }
func (c *CPU) iBCS(*instruction) error { return c.branch(c.P&P_CARRY != 0) }
func (c *CPU) iBNE(*instruction) error { return c.branch(c.P&P_ZERO == 0) }
func (c *CPU) iBEQ(*instruction) error { return c.branch(c.P&P_ZERO != 0) }
func (c *CPU) iBPL(*instruction) error { return c.branch(c.P&P_NEGATIVE == 0) }
func (c *CPU) iBMI(*instruction) error { return c.branch(c.P&P_NEGATIVE != 0) }
func (c *CPU) iBVC(*instruction) error { return c.branch(c.P&P_OVERFLOW == 0) }
func (c *CPU) iBVS(*instruction) error { return c.branch(c.P&P_OVERFLOW != 0) }
func (c *CPU) iBRA(*instruction) error { return c.branch(true) }

// Jumps, calls and returns.

func (c *CPU) iJMP(in *instruction) error {
	switch in.mode {
	case ModeAbsolute:
		c.PC = c.readWordPC()
		return nil
	case ModeIndirect:
		ptr := c.readWordPC()
		if c.cpuType == CPU_NMOS && ptr&0x00FF == 0xFF {
			// NMOS bug: the high byte of the pointer comes from the
			// same page, not the next one.
			lo := c.readByte(ptr)
			hi := c.readByte(ptr & 0xFF00)
			c.PC = uint16(hi)<<8 | uint16(lo)
			return nil
		}
		c.PC = c.readWord(ptr)
		if c.cpuType == CPU_CMOS {
			c.spendCycle()
		}
		return nil
	case ModeAbsoluteIndexedIndirect:
		addr, err := c.getAddress(in)
		if err != nil {
			return err
		}
		c.PC = addr
		return nil
	}
	return InvalidMode{in.name, c.PC}
}

func (c *CPU) iJSR(*instruction) error {
	target := c.readWordPC()
	c.spendCycle()
	c.pushWord(c.PC - 1)
	c.PC = target
	return nil
}

func (c *CPU) iRTS(*instruction) error {
	c.spendCycles(3)
	c.PC = c.popWord() + 1
	return nil
}

func (c *CPU) iRTI(*instruction) error {
	c.spendCycles(2)
	c.popPS()
	c.PC = c.popWord()
	return nil
}

// iBRK is the software interrupt. PC is saved pointing past the one
// byte argument slot, the pushed status has B set, and afterwards B is
// set in the live register too. CMOS parts also clear decimal mode.
func (c *CPU) iBRK(*instruction) error {
	c.readBytePC()
	c.pushWord(c.PC)
	c.pushPS()
	c.P |= P_INTERRUPT
	if c.cpuType == CPU_CMOS {
		c.P &^= P_DECIMAL
	}
	c.PC = c.readWord(IRQ_VECTOR)
	c.P |= P_B
	c.BRKCount++
	return nil
}

// Bit tests.

func (c *CPU) iBIT(in *instruction) error {
	val, err := c.getData(in)
	if err != nil {
		return err
	}
	c.zeroCheck(c.A & val)
	if in.mode == ModeImmediate {
		// CMOS immediate BIT leaves N and V alone.
		return nil
	}
	c.P &^= P_NEGATIVE | P_OVERFLOW
	c.P |= val & (P_NEGATIVE | P_OVERFLOW)
	return nil
}

func (c *CPU) iTRB(in *instruction) error {
	return c.rmw(in, func(val uint8) uint8 {
		c.zeroCheck(c.A & val)
		return val &^ c.A
	})
}

func (c *CPU) iTSB(in *instruction) error {
	return c.rmw(in, func(val uint8) uint8 {
		c.zeroCheck(c.A & val)
		return val | c.A
	})
}

// Flag control.

func (c *CPU) iCLC(*instruction) error {
	c.spendCycle()
	c.P &^= P_CARRY
	return nil
}

func (c *CPU) iSEC(*instruction) error {
	c.spendCycle()
	c.P |= P_CARRY
	return nil
}

func (c *CPU) iCLD(*instruction) error {
	c.spendCycle()
	c.P &^= P_DECIMAL
	return nil
}

func (c *CPU) iSED(*instruction) error {
	c.spendCycle()
	c.P |= P_DECIMAL
	return nil
}

func (c *CPU) iCLI(*instruction) error {
	c.spendCycle()
	c.P &^= P_INTERRUPT
	return nil
}

func (c *CPU) iSEI(*instruction) error {
	c.spendCycle()
	c.P |= P_INTERRUPT
	return nil
}

func (c *CPU) iCLV(*instruction) error {
	c.spendCycle()
	c.P &^= P_OVERFLOW
	return nil
}

// iNOP covers the classic 0xEA plus the CMOS multi byte fillers: fetch
// the declared operand bytes and idle out the remaining table cycles.
func (c *CPU) iNOP(in *instruction) error {
	for i := uint8(1); i < in.length; i++ {
		c.readBytePC()
	}
	c.spendCycles(uint64(in.cycles) - uint64(in.length))
	return nil
}

// Rockwell bit instructions. The bit number comes from the opcode's
// high nibble and is carried in the table entry.

func (c *CPU) iBBR(in *instruction) error {
	zp := c.readBytePC()
	val := c.readByte(uint16(zp))
	c.spendCycle()
	return c.branch(val&(1<<in.bit) == 0)
}

func (c *CPU) iBBS(in *instruction) error {
	zp := c.readBytePC()
	val := c.readByte(uint16(zp))
	c.spendCycle()
	return c.branch(val&(1<<in.bit) != 0)
}

func (c *CPU) iRMB(in *instruction) error {
	return c.rmw(in, func(val uint8) uint8 {
		return val &^ (1 << in.bit)
	})
}

func (c *CPU) iSMB(in *instruction) error {
	return c.rmw(in, func(val uint8) uint8 {
		return val | 1<<in.bit
	})
}
