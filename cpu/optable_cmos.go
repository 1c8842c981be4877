package cpu

// cmosTable is the Rockwell R65C02 opcode set: the NMOS table cloned,
// then overlaid with the new CMOS opcodes, the entries where the CMOS
// part fixes a bug or changes a cycle cost, the Rockwell bit
// instructions and NOP fillers for everything left unallocated (CMOS
// parts execute those as NOPs instead of locking up).
var cmosTable = buildCMOSTable()

func rockwell(name string, mode AddrMode, length, cycles uint8, flags insFlags, bit uint8, fn opfn) *instruction {
	return &instruction{name: name, mode: mode, length: length, cycles: cycles, flags: flags, bit: bit, fn: fn}
}

func buildCMOSTable() [256]*instruction {
	t := nmosTable

	// New (zp) indirect mode for the eight ALU ops.
	t[0x72] = ins("adc", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iADC)
	t[0x32] = ins("and", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iAND)
	t[0xD2] = ins("cmp", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iCMP)
	t[0x52] = ins("eor", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iEOR)
	t[0xB2] = ins("lda", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iLDA)
	t[0x12] = ins("ora", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iORA)
	t[0xF2] = ins("sbc", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iSBC)
	t[0x92] = ins("sta", ModeZeroPageIndirect, 2, 5, 0, (*CPU).iSTA)

	// BIT gains immediate (Z only) and indexed modes.
	t[0x89] = ins("bit", ModeImmediate, 2, 2, 0, (*CPU).iBIT)
	t[0x34] = ins("bit", ModeZeroPageX, 2, 4, 0, (*CPU).iBIT)
	t[0x3C] = ins("bit", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iBIT)

	// Unconditional branch.
	t[0x80] = ins("bra", ModeRelative, 2, 2, opBranch, (*CPU).iBRA)

	// Accumulator increment/decrement.
	t[0x1A] = ins("ina", ModeAccumulator, 1, 2, 0, (*CPU).iINA)
	t[0x3A] = ins("dea", ModeAccumulator, 1, 2, 0, (*CPU).iDEA)

	// JMP: the indirect page wrap bug is fixed (costing a cycle) and
	// an indexed indirect form appears.
	t[0x6C] = ins("jmp", ModeIndirect, 3, 6, 0, (*CPU).iJMP)
	t[0x7C] = ins("jmp", ModeAbsoluteIndexedIndirect, 3, 6, 0, (*CPU).iJMP)

	// X/Y stack ops.
	t[0xDA] = ins("phx", ModeImplied, 1, 3, 0, (*CPU).iPHX)
	t[0x5A] = ins("phy", ModeImplied, 1, 3, 0, (*CPU).iPHY)
	t[0xFA] = ins("plx", ModeImplied, 1, 4, 0, (*CPU).iPLX)
	t[0x7A] = ins("ply", ModeImplied, 1, 4, 0, (*CPU).iPLY)

	// Store zero.
	t[0x64] = ins("stz", ModeZeroPage, 2, 3, 0, (*CPU).iSTZ)
	t[0x74] = ins("stz", ModeZeroPageX, 2, 4, 0, (*CPU).iSTZ)
	t[0x9C] = ins("stz", ModeAbsolute, 3, 4, 0, (*CPU).iSTZ)
	t[0x9E] = ins("stz", ModeAbsoluteX, 3, 5, 0, (*CPU).iSTZ)

	// Test and reset/set bits.
	t[0x14] = ins("trb", ModeZeroPage, 2, 5, 0, (*CPU).iTRB)
	t[0x1C] = ins("trb", ModeAbsolute, 3, 6, 0, (*CPU).iTRB)
	t[0x04] = ins("tsb", ModeZeroPage, 2, 5, 0, (*CPU).iTSB)
	t[0x0C] = ins("tsb", ModeAbsolute, 3, 6, 0, (*CPU).iTSB)

	// RMW absolute,X drops a cycle when the index stays in page.
	for _, op := range []uint8{0x1E, 0x3E, 0x5E, 0x7E, 0xDE, 0xFE} {
		fixed := *t[op]
		fixed.flags |= opNoPageBoundary
		t[op] = &fixed
	}

	// Rockwell bit instructions follow a regular opcode pattern:
	// BBRn = 0x0F + n*0x10, BBSn = 0x8F + n*0x10,
	// RMBn = 0x07 + n*0x10, SMBn = 0x87 + n*0x10.
	for n := uint8(0); n < 8; n++ {
		digit := string('0' + rune(n))
		t[0x0F+n*0x10] = rockwell("bbr"+digit, ModeZeroPage, 3, 5, opBranch, n, (*CPU).iBBR)
		t[0x8F+n*0x10] = rockwell("bbs"+digit, ModeZeroPage, 3, 5, opBranch, n, (*CPU).iBBS)
		t[0x07+n*0x10] = rockwell("rmb"+digit, ModeZeroPage, 2, 5, 0, n, (*CPU).iRMB)
		t[0x87+n*0x10] = rockwell("smb"+digit, ModeZeroPage, 2, 5, 0, n, (*CPU).iSMB)
	}

	// NOP fillers for the remaining unallocated opcodes, with the
	// lengths and timings the CMOS parts document.
	nop := func(op, length, cycles uint8) {
		t[op] = ins("nop", ModeImplied, length, cycles, 0, (*CPU).iNOP)
	}
	for _, op := range []uint8{0x02, 0x22, 0x42, 0x62, 0x82, 0xC2, 0xE2} {
		nop(op, 2, 2)
	}
	nop(0x44, 2, 3)
	for _, op := range []uint8{0x54, 0xD4, 0xF4} {
		nop(op, 2, 4)
	}
	nop(0x5C, 3, 8)
	nop(0xDC, 3, 4)
	nop(0xFC, 3, 4)
	for op := 0; op < 256; op++ {
		if t[op] == nil {
			nop(uint8(op), 1, 1)
		}
	}

	return t
}
