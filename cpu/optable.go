package cpu

// insFlags annotates cycle quirks on a table entry.
type insFlags uint8

const (
	// opBranch marks conditional branches: +1 cycle when taken, +1
	// more when the target sits on a different page.
	opBranch insFlags = 1 << iota
	// opPageBoundary marks indexed reads that cost +1 cycle when the
	// index crosses a page.
	opPageBoundary
	// opNoPageBoundary marks CMOS RMW absolute,X entries that drop a
	// cycle when the index does NOT cross a page.
	opNoPageBoundary
)

// instruction is one opcode's table entry: mnemonic, addressing mode,
// encoded length, base cycle cost, cycle quirk flags and the handler.
// bit carries the bit number for the Rockwell bit instructions.
type instruction struct {
	name   string
	mode   AddrMode
	length uint8
	cycles uint8
	flags  insFlags
	bit    uint8
	fn     func(*CPU, *instruction) error
}

// OpInfo describes a decoded opcode for tooling such as the disassembler.
type OpInfo struct {
	Name   string
	Mode   AddrMode
	Length int
}

// Lookup returns the decode information for op on the given CPU type.
// The second return is false for opcodes the variant doesn't define.
func Lookup(cpuType CPUType, op uint8) (OpInfo, bool) {
	var in *instruction
	switch cpuType {
	case CPU_NMOS:
		in = nmosTable[op]
	case CPU_CMOS:
		in = cmosTable[op]
	}
	if in == nil {
		return OpInfo{}, false
	}
	return OpInfo{Name: in.name, Mode: in.mode, Length: int(in.length)}, true
}

type opfn = func(*CPU, *instruction) error

func ins(name string, mode AddrMode, length, cycles uint8, flags insFlags, fn opfn) *instruction {
	return &instruction{name: name, mode: mode, length: length, cycles: cycles, flags: flags, fn: fn}
}

// nmosTable is the documented NMOS 6502 opcode set: 151 entries, dense
// indexed by opcode byte. Undefined opcodes stay nil and route to the
// invalid opcode fault. Timing per the MOS hardware manual.
var nmosTable = buildNMOSTable()

func buildNMOSTable() [256]*instruction {
	var t [256]*instruction

	// ADC
	t[0x69] = ins("adc", ModeImmediate, 2, 2, 0, (*CPU).iADC)
	t[0x65] = ins("adc", ModeZeroPage, 2, 3, 0, (*CPU).iADC)
	t[0x75] = ins("adc", ModeZeroPageX, 2, 4, 0, (*CPU).iADC)
	t[0x6D] = ins("adc", ModeAbsolute, 3, 4, 0, (*CPU).iADC)
	t[0x7D] = ins("adc", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iADC)
	t[0x79] = ins("adc", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iADC)
	t[0x61] = ins("adc", ModeIndirectX, 2, 6, 0, (*CPU).iADC)
	t[0x71] = ins("adc", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iADC)

	// AND
	t[0x29] = ins("and", ModeImmediate, 2, 2, 0, (*CPU).iAND)
	t[0x25] = ins("and", ModeZeroPage, 2, 3, 0, (*CPU).iAND)
	t[0x35] = ins("and", ModeZeroPageX, 2, 4, 0, (*CPU).iAND)
	t[0x2D] = ins("and", ModeAbsolute, 3, 4, 0, (*CPU).iAND)
	t[0x3D] = ins("and", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iAND)
	t[0x39] = ins("and", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iAND)
	t[0x21] = ins("and", ModeIndirectX, 2, 6, 0, (*CPU).iAND)
	t[0x31] = ins("and", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iAND)

	// ASL
	t[0x0A] = ins("asl", ModeAccumulator, 1, 2, 0, (*CPU).iASL)
	t[0x06] = ins("asl", ModeZeroPage, 2, 5, 0, (*CPU).iASL)
	t[0x16] = ins("asl", ModeZeroPageX, 2, 6, 0, (*CPU).iASL)
	t[0x0E] = ins("asl", ModeAbsolute, 3, 6, 0, (*CPU).iASL)
	t[0x1E] = ins("asl", ModeAbsoluteX, 3, 7, 0, (*CPU).iASL)

	// Branches
	t[0x90] = ins("bcc", ModeRelative, 2, 2, opBranch, (*CPU).iBCC)
	t[0xB0] = ins("bcs", ModeRelative, 2, 2, opBranch, (*CPU).iBCS)
	t[0xF0] = ins("beq", ModeRelative, 2, 2, opBranch, (*CPU).iBEQ)
	t[0x30] = ins("bmi", ModeRelative, 2, 2, opBranch, (*CPU).iBMI)
	t[0xD0] = ins("bne", ModeRelative, 2, 2, opBranch, (*CPU).iBNE)
	t[0x10] = ins("bpl", ModeRelative, 2, 2, opBranch, (*CPU).iBPL)
	t[0x50] = ins("bvc", ModeRelative, 2, 2, opBranch, (*CPU).iBVC)
	t[0x70] = ins("bvs", ModeRelative, 2, 2, opBranch, (*CPU).iBVS)

	// BIT
	t[0x24] = ins("bit", ModeZeroPage, 2, 3, 0, (*CPU).iBIT)
	t[0x2C] = ins("bit", ModeAbsolute, 3, 4, 0, (*CPU).iBIT)

	// BRK
	t[0x00] = ins("brk", ModeImplied, 1, 7, 0, (*CPU).iBRK)

	// Flag control
	t[0x18] = ins("clc", ModeImplied, 1, 2, 0, (*CPU).iCLC)
	t[0xD8] = ins("cld", ModeImplied, 1, 2, 0, (*CPU).iCLD)
	t[0x58] = ins("cli", ModeImplied, 1, 2, 0, (*CPU).iCLI)
	t[0xB8] = ins("clv", ModeImplied, 1, 2, 0, (*CPU).iCLV)
	t[0x38] = ins("sec", ModeImplied, 1, 2, 0, (*CPU).iSEC)
	t[0xF8] = ins("sed", ModeImplied, 1, 2, 0, (*CPU).iSED)
	t[0x78] = ins("sei", ModeImplied, 1, 2, 0, (*CPU).iSEI)

	// CMP
	t[0xC9] = ins("cmp", ModeImmediate, 2, 2, 0, (*CPU).iCMP)
	t[0xC5] = ins("cmp", ModeZeroPage, 2, 3, 0, (*CPU).iCMP)
	t[0xD5] = ins("cmp", ModeZeroPageX, 2, 4, 0, (*CPU).iCMP)
	t[0xCD] = ins("cmp", ModeAbsolute, 3, 4, 0, (*CPU).iCMP)
	t[0xDD] = ins("cmp", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iCMP)
	t[0xD9] = ins("cmp", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iCMP)
	t[0xC1] = ins("cmp", ModeIndirectX, 2, 6, 0, (*CPU).iCMP)
	t[0xD1] = ins("cmp", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iCMP)

	// CPX / CPY
	t[0xE0] = ins("cpx", ModeImmediate, 2, 2, 0, (*CPU).iCPX)
	t[0xE4] = ins("cpx", ModeZeroPage, 2, 3, 0, (*CPU).iCPX)
	t[0xEC] = ins("cpx", ModeAbsolute, 3, 4, 0, (*CPU).iCPX)
	t[0xC0] = ins("cpy", ModeImmediate, 2, 2, 0, (*CPU).iCPY)
	t[0xC4] = ins("cpy", ModeZeroPage, 2, 3, 0, (*CPU).iCPY)
	t[0xCC] = ins("cpy", ModeAbsolute, 3, 4, 0, (*CPU).iCPY)

	// DEC
	t[0xC6] = ins("dec", ModeZeroPage, 2, 5, 0, (*CPU).iDEC)
	t[0xD6] = ins("dec", ModeZeroPageX, 2, 6, 0, (*CPU).iDEC)
	t[0xCE] = ins("dec", ModeAbsolute, 3, 6, 0, (*CPU).iDEC)
	t[0xDE] = ins("dec", ModeAbsoluteX, 3, 7, 0, (*CPU).iDEC)
	t[0xCA] = ins("dex", ModeImplied, 1, 2, 0, (*CPU).iDEX)
	t[0x88] = ins("dey", ModeImplied, 1, 2, 0, (*CPU).iDEY)

	// EOR
	t[0x49] = ins("eor", ModeImmediate, 2, 2, 0, (*CPU).iEOR)
	t[0x45] = ins("eor", ModeZeroPage, 2, 3, 0, (*CPU).iEOR)
	t[0x55] = ins("eor", ModeZeroPageX, 2, 4, 0, (*CPU).iEOR)
	t[0x4D] = ins("eor", ModeAbsolute, 3, 4, 0, (*CPU).iEOR)
	t[0x5D] = ins("eor", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iEOR)
	t[0x59] = ins("eor", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iEOR)
	t[0x41] = ins("eor", ModeIndirectX, 2, 6, 0, (*CPU).iEOR)
	t[0x51] = ins("eor", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iEOR)

	// INC
	t[0xE6] = ins("inc", ModeZeroPage, 2, 5, 0, (*CPU).iINC)
	t[0xF6] = ins("inc", ModeZeroPageX, 2, 6, 0, (*CPU).iINC)
	t[0xEE] = ins("inc", ModeAbsolute, 3, 6, 0, (*CPU).iINC)
	t[0xFE] = ins("inc", ModeAbsoluteX, 3, 7, 0, (*CPU).iINC)
	t[0xE8] = ins("inx", ModeImplied, 1, 2, 0, (*CPU).iINX)
	t[0xC8] = ins("iny", ModeImplied, 1, 2, 0, (*CPU).iINY)

	// JMP / JSR / returns
	t[0x4C] = ins("jmp", ModeAbsolute, 3, 3, 0, (*CPU).iJMP)
	t[0x6C] = ins("jmp", ModeIndirect, 3, 5, 0, (*CPU).iJMP)
	t[0x20] = ins("jsr", ModeAbsolute, 3, 6, 0, (*CPU).iJSR)
	t[0x40] = ins("rti", ModeImplied, 1, 6, 0, (*CPU).iRTI)
	t[0x60] = ins("rts", ModeImplied, 1, 6, 0, (*CPU).iRTS)

	// LDA
	t[0xA9] = ins("lda", ModeImmediate, 2, 2, 0, (*CPU).iLDA)
	t[0xA5] = ins("lda", ModeZeroPage, 2, 3, 0, (*CPU).iLDA)
	t[0xB5] = ins("lda", ModeZeroPageX, 2, 4, 0, (*CPU).iLDA)
	t[0xAD] = ins("lda", ModeAbsolute, 3, 4, 0, (*CPU).iLDA)
	t[0xBD] = ins("lda", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iLDA)
	t[0xB9] = ins("lda", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iLDA)
	t[0xA1] = ins("lda", ModeIndirectX, 2, 6, 0, (*CPU).iLDA)
	t[0xB1] = ins("lda", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iLDA)

	// LDX
	t[0xA2] = ins("ldx", ModeImmediate, 2, 2, 0, (*CPU).iLDX)
	t[0xA6] = ins("ldx", ModeZeroPage, 2, 3, 0, (*CPU).iLDX)
	t[0xB6] = ins("ldx", ModeZeroPageY, 2, 4, 0, (*CPU).iLDX)
	t[0xAE] = ins("ldx", ModeAbsolute, 3, 4, 0, (*CPU).iLDX)
	t[0xBE] = ins("ldx", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iLDX)

	// LDY
	t[0xA0] = ins("ldy", ModeImmediate, 2, 2, 0, (*CPU).iLDY)
	t[0xA4] = ins("ldy", ModeZeroPage, 2, 3, 0, (*CPU).iLDY)
	t[0xB4] = ins("ldy", ModeZeroPageX, 2, 4, 0, (*CPU).iLDY)
	t[0xAC] = ins("ldy", ModeAbsolute, 3, 4, 0, (*CPU).iLDY)
	t[0xBC] = ins("ldy", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iLDY)

	// LSR
	t[0x4A] = ins("lsr", ModeAccumulator, 1, 2, 0, (*CPU).iLSR)
	t[0x46] = ins("lsr", ModeZeroPage, 2, 5, 0, (*CPU).iLSR)
	t[0x56] = ins("lsr", ModeZeroPageX, 2, 6, 0, (*CPU).iLSR)
	t[0x4E] = ins("lsr", ModeAbsolute, 3, 6, 0, (*CPU).iLSR)
	t[0x5E] = ins("lsr", ModeAbsoluteX, 3, 7, 0, (*CPU).iLSR)

	// NOP
	t[0xEA] = ins("nop", ModeImplied, 1, 2, 0, (*CPU).iNOP)

	// ORA
	t[0x09] = ins("ora", ModeImmediate, 2, 2, 0, (*CPU).iORA)
	t[0x05] = ins("ora", ModeZeroPage, 2, 3, 0, (*CPU).iORA)
	t[0x15] = ins("ora", ModeZeroPageX, 2, 4, 0, (*CPU).iORA)
	t[0x0D] = ins("ora", ModeAbsolute, 3, 4, 0, (*CPU).iORA)
	t[0x1D] = ins("ora", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iORA)
	t[0x19] = ins("ora", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iORA)
	t[0x01] = ins("ora", ModeIndirectX, 2, 6, 0, (*CPU).iORA)
	t[0x11] = ins("ora", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iORA)

	// Stack
	t[0x48] = ins("pha", ModeImplied, 1, 3, 0, (*CPU).iPHA)
	t[0x08] = ins("php", ModeImplied, 1, 3, 0, (*CPU).iPHP)
	t[0x68] = ins("pla", ModeImplied, 1, 4, 0, (*CPU).iPLA)
	t[0x28] = ins("plp", ModeImplied, 1, 4, 0, (*CPU).iPLP)

	// ROL
	t[0x2A] = ins("rol", ModeAccumulator, 1, 2, 0, (*CPU).iROL)
	t[0x26] = ins("rol", ModeZeroPage, 2, 5, 0, (*CPU).iROL)
	t[0x36] = ins("rol", ModeZeroPageX, 2, 6, 0, (*CPU).iROL)
	t[0x2E] = ins("rol", ModeAbsolute, 3, 6, 0, (*CPU).iROL)
	t[0x3E] = ins("rol", ModeAbsoluteX, 3, 7, 0, (*CPU).iROL)

	// ROR
	t[0x6A] = ins("ror", ModeAccumulator, 1, 2, 0, (*CPU).iROR)
	t[0x66] = ins("ror", ModeZeroPage, 2, 5, 0, (*CPU).iROR)
	t[0x76] = ins("ror", ModeZeroPageX, 2, 6, 0, (*CPU).iROR)
	t[0x6E] = ins("ror", ModeAbsolute, 3, 6, 0, (*CPU).iROR)
	t[0x7E] = ins("ror", ModeAbsoluteX, 3, 7, 0, (*CPU).iROR)

	// SBC
	t[0xE9] = ins("sbc", ModeImmediate, 2, 2, 0, (*CPU).iSBC)
	t[0xE5] = ins("sbc", ModeZeroPage, 2, 3, 0, (*CPU).iSBC)
	t[0xF5] = ins("sbc", ModeZeroPageX, 2, 4, 0, (*CPU).iSBC)
	t[0xED] = ins("sbc", ModeAbsolute, 3, 4, 0, (*CPU).iSBC)
	t[0xFD] = ins("sbc", ModeAbsoluteX, 3, 4, opPageBoundary, (*CPU).iSBC)
	t[0xF9] = ins("sbc", ModeAbsoluteY, 3, 4, opPageBoundary, (*CPU).iSBC)
	t[0xE1] = ins("sbc", ModeIndirectX, 2, 6, 0, (*CPU).iSBC)
	t[0xF1] = ins("sbc", ModeIndirectY, 2, 5, opPageBoundary, (*CPU).iSBC)

	// STA
	t[0x85] = ins("sta", ModeZeroPage, 2, 3, 0, (*CPU).iSTA)
	t[0x95] = ins("sta", ModeZeroPageX, 2, 4, 0, (*CPU).iSTA)
	t[0x8D] = ins("sta", ModeAbsolute, 3, 4, 0, (*CPU).iSTA)
	t[0x9D] = ins("sta", ModeAbsoluteX, 3, 5, 0, (*CPU).iSTA)
	t[0x99] = ins("sta", ModeAbsoluteY, 3, 5, 0, (*CPU).iSTA)
	t[0x81] = ins("sta", ModeIndirectX, 2, 6, 0, (*CPU).iSTA)
	t[0x91] = ins("sta", ModeIndirectY, 2, 6, 0, (*CPU).iSTA)

	// STX / STY
	t[0x86] = ins("stx", ModeZeroPage, 2, 3, 0, (*CPU).iSTX)
	t[0x96] = ins("stx", ModeZeroPageY, 2, 4, 0, (*CPU).iSTX)
	t[0x8E] = ins("stx", ModeAbsolute, 3, 4, 0, (*CPU).iSTX)
	t[0x84] = ins("sty", ModeZeroPage, 2, 3, 0, (*CPU).iSTY)
	t[0x94] = ins("sty", ModeZeroPageX, 2, 4, 0, (*CPU).iSTY)
	t[0x8C] = ins("sty", ModeAbsolute, 3, 4, 0, (*CPU).iSTY)

	// Transfers
	t[0xAA] = ins("tax", ModeImplied, 1, 2, 0, (*CPU).iTAX)
	t[0xA8] = ins("tay", ModeImplied, 1, 2, 0, (*CPU).iTAY)
	t[0xBA] = ins("tsx", ModeImplied, 1, 2, 0, (*CPU).iTSX)
	t[0x8A] = ins("txa", ModeImplied, 1, 2, 0, (*CPU).iTXA)
	t[0x9A] = ins("txs", ModeImplied, 1, 2, 0, (*CPU).iTXS)
	t[0x98] = ins("tya", ModeImplied, 1, 2, 0, (*CPU).iTYA)

	return t
}
