package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLDAImmediate(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0xFFFC, 0xA9, 0x0F)
	c.TestReset(0xFFFC, 0xFF)
	step(t, c)
	assert.Equal(t, uint8(0x0F), c.A)
	assert.False(t, c.FlagZ())
	assert.False(t, c.FlagN())
	assert.Equal(t, uint16(0xFFFE), c.PC)
	assert.Equal(t, uint64(2), c.CyclesUsed)
	assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
}

func TestLoadFlags(t *testing.T) {
	tests := []struct {
		name  string
		val   uint8
		wantZ bool
		wantN bool
	}{
		{"zero", 0x00, true, false},
		{"positive", 0x42, false, false},
		{"negative", 0x80, false, true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0200, 0xA9, test.val)
			c.TestReset(0x0200, 0xFF)
			step(t, c)
			assert.Equal(t, test.val, c.A)
			assert.Equal(t, test.wantZ, c.FlagZ())
			assert.Equal(t, test.wantN, c.FlagN())
		})
	}
}

func TestPHAPlacement(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0xFFFC, 0x48)
	c.TestReset(0xFFFC, 0xFF)
	c.A = 0x42
	step(t, c)
	assert.Equal(t, uint8(0xFE), c.SP)
	assert.Equal(t, uint8(0x42), r.addr[0x01FF])
	assert.Equal(t, uint64(3), c.CyclesUsed)
}

func TestPHPPLPSoftwareBits(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0x08, 0x28) // PHP, PLP
	c.TestReset(0x0200, 0xFF)
	c.P = P_CARRY | P_NEGATIVE
	step(t, c)
	assert.Equal(t, P_CARRY|P_NEGATIVE|P_S1|P_B, r.addr[0x01FF], "pushed copy forces U and B")
	c.P = 0
	step(t, c)
	assert.Equal(t, P_CARRY|P_NEGATIVE, c.P, "live register clears U and B")
}

func TestJMPIndirectBug(t *testing.T) {
	run := func(t *testing.T, cpuType CPUType, want uint16, wantCycles uint64) {
		c, r := setup(t, cpuType)
		r.load(0xFFFC, 0x6C, 0xFF, 0x10)
		r.addr[0x10FF] = 0x34
		r.addr[0x1000] = 0x12
		r.addr[0x1100] = 0x56
		c.TestReset(0xFFFC, 0xFF)
		step(t, c)
		assert.Equal(t, want, c.PC)
		assert.Equal(t, wantCycles, c.CyclesUsed)
		assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
	}
	t.Run("NMOS wraps in page", func(t *testing.T) {
		run(t, CPU_NMOS, 0x1234, 5)
	})
	t.Run("CMOS reads next page", func(t *testing.T) {
		run(t, CPU_CMOS, 0x5634, 6)
	})
}

func TestJSRRTS(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0x20, 0x00, 0x03) // JSR $0300
	r.load(0x0300, 0x60)             // RTS
	c.TestReset(0x0200, 0xFF)

	step(t, c)
	assert.Equal(t, uint16(0x0300), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	// JSR pushes the return address minus one.
	assert.Equal(t, uint8(0x02), r.addr[0x01FF])
	assert.Equal(t, uint8(0x02), r.addr[0x01FE])
	assert.Equal(t, uint64(6), c.CyclesUsed)

	step(t, c)
	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
	assert.Equal(t, uint64(6), c.CyclesUsed)
}

func TestBRK(t *testing.T) {
	for _, cpuType := range []CPUType{CPU_NMOS, CPU_CMOS} {
		c, r := setup(t, cpuType)
		r.load(0x0300, 0x00)
		r.word(IRQ_VECTOR, 0x8000)
		c.TestReset(0x0300, 0xFF)
		c.P = P_DECIMAL
		step(t, c)

		assert.Equal(t, uint16(0x8000), c.PC)
		// PC+2 is saved: room for the one byte argument.
		assert.Equal(t, uint8(0x03), r.addr[0x01FF])
		assert.Equal(t, uint8(0x02), r.addr[0x01FE])
		assert.Equal(t, P_DECIMAL|P_S1|P_B, r.addr[0x01FD])
		assert.True(t, c.FlagI())
		assert.NotZero(t, c.P&P_B)
		assert.Equal(t, uint64(7), c.CyclesUsed)
		assert.Equal(t, uint64(1), c.BRKCount)
		if cpuType == CPU_CMOS {
			assert.False(t, c.FlagD(), "CMOS BRK clears decimal")
		} else {
			assert.True(t, c.FlagD())
		}
	}
}

func TestBranchOffsets(t *testing.T) {
	tests := []struct {
		name       string
		pc         uint16
		offset     uint8
		zero       bool
		wantPC     uint16
		wantCycles uint64
	}{
		{"not taken", 0x2000, 0x10, true, 0x2002, 2},
		{"taken forward", 0x2000, 0x10, false, 0x2012, 3},
		{"taken backward cross", 0x2000, 0x80, false, 0x1F82, 4},
		{"taken cross forward", 0x20F0, 0x20, false, 0x2112, 4},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(test.pc, 0xD0, test.offset) // BNE
			c.TestReset(test.pc, 0xFF)
			if test.zero {
				c.P |= P_ZERO
			}
			step(t, c)
			assert.Equal(t, test.wantPC, c.PC)
			assert.Equal(t, test.wantCycles, c.CyclesUsed)
			assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
		})
	}
}

func TestZeroPageXWrap(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0xB5, 0xFF) // LDA $FF,X
	r.addr[0x0001] = 0x42
	r.addr[0x0101] = 0x99
	c.TestReset(0x0200, 0xFF)
	c.X = 0x02
	step(t, c)
	assert.Equal(t, uint8(0x42), c.A, "index wraps inside the zero page")
}

func TestIndirectXWrap(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0xA1, 0xFE) // LDA ($FE,X)
	r.addr[0x00FF] = 0x00
	r.addr[0x0000] = 0x04
	r.addr[0x0400] = 0x77
	c.TestReset(0x0200, 0xFF)
	c.X = 0x01
	step(t, c)
	assert.Equal(t, uint8(0x77), c.A, "pointer high byte wraps inside the zero page")
}

func TestPageBoundaryCycles(t *testing.T) {
	tests := []struct {
		name       string
		program    []uint8
		x, y       uint8
		wantCycles uint64
	}{
		{"abs,x in page", []uint8{0xBD, 0x00, 0x20}, 0x01, 0, 4},
		{"abs,x crossed", []uint8{0xBD, 0xFF, 0x20}, 0x01, 0, 5},
		{"abs,y in page", []uint8{0xB9, 0x00, 0x20}, 0, 0x01, 4},
		{"abs,y crossed", []uint8{0xB9, 0xFF, 0x20}, 0, 0x01, 5},
		{"(d),y in page", []uint8{0xB1, 0x80}, 0, 0x01, 5},
		{"(d),y crossed", []uint8{0xB1, 0x80}, 0, 0xFF, 6},
		{"sta abs,x always 5", []uint8{0x9D, 0x00, 0x20}, 0x01, 0, 5},
		{"sta abs,x crossed still 5", []uint8{0x9D, 0xFF, 0x20}, 0x01, 0, 5},
		{"sta (d),y always 6", []uint8{0x91, 0x80}, 0, 0x01, 6},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0600, test.program...)
			r.addr[0x0080] = 0x10 // (d) pointer -> 0x2010
			r.addr[0x0081] = 0x20
			c.TestReset(0x0600, 0xFF)
			c.X, c.Y = test.x, test.y
			step(t, c)
			assert.Equal(t, test.wantCycles, c.CyclesUsed)
			assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
		})
	}
}

func TestRMWAbsoluteXCycles(t *testing.T) {
	tests := []struct {
		name       string
		cpuType    CPUType
		base       uint8
		wantCycles uint64
	}{
		{"NMOS in page", CPU_NMOS, 0x00, 7},
		{"NMOS crossed", CPU_NMOS, 0xFF, 7},
		{"CMOS in page", CPU_CMOS, 0x00, 6},
		{"CMOS crossed", CPU_CMOS, 0xFF, 7},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, test.cpuType)
			r.load(0x0600, 0x1E, test.base, 0x20) // ASL abs,X
			c.TestReset(0x0600, 0xFF)
			c.X = 0x01
			step(t, c)
			assert.Equal(t, test.wantCycles, c.CyclesUsed)
			assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
		})
	}
}

func TestADCBinary(t *testing.T) {
	tests := []struct {
		name                   string
		a, op                  uint8
		carry                  bool
		want                   uint8
		wantC, wantZ, wantV, wantN bool
	}{
		{"simple", 0x01, 0x01, false, 0x02, false, false, false, false},
		{"with carry in", 0x01, 0x01, true, 0x03, false, false, false, false},
		{"carry out", 0xFF, 0x01, false, 0x00, true, true, false, false},
		{"overflow pos", 0x7F, 0x01, false, 0x80, false, false, true, true},
		{"overflow neg", 0x80, 0xFF, false, 0x7F, true, false, true, false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0200, 0x69, test.op)
			c.TestReset(0x0200, 0xFF)
			c.A = test.a
			if test.carry {
				c.P |= P_CARRY
			}
			step(t, c)
			assert.Equal(t, test.want, c.A)
			assert.Equal(t, test.wantC, c.FlagC(), "C")
			assert.Equal(t, test.wantZ, c.FlagZ(), "Z")
			assert.Equal(t, test.wantV, c.FlagV(), "V")
			assert.Equal(t, test.wantN, c.FlagN(), "N")
		})
	}
}

func TestADCSBCRoundTrip(t *testing.T) {
	// CLC ADC #n then SEC SBC #n recovers A for every operand pair.
	c, r := setup(t, CPU_NMOS)
	for a := 0; a < 256; a++ {
		for n := 0; n < 256; n += 5 {
			r.load(0x0200, 0x69, uint8(n), 0xE9, uint8(n))
			c.TestReset(0x0200, 0xFF)
			c.A = uint8(a)
			step(t, c)
			c.P |= P_CARRY
			step(t, c)
			require.Equal(t, uint8(a), c.A, "a=%#x n=%#x", a, n)
		}
	}
}

func TestBCD(t *testing.T) {
	tests := []struct {
		name         string
		program      []uint8
		a            uint8
		carry        bool
		want         uint8
		wantC, wantZ bool
	}{
		{"adc 01+99 wraps", []uint8{0x69, 0x99}, 0x01, false, 0x00, true, true},
		{"adc 12+34", []uint8{0x69, 0x34}, 0x12, false, 0x46, false, false},
		{"adc 58+46+c", []uint8{0x69, 0x46}, 0x58, true, 0x05, true, false},
		{"sbc 51-21", []uint8{0xE9, 0x21}, 0x51, true, 0x30, true, false},
		{"sbc 00-01 borrows", []uint8{0xE9, 0x01}, 0x00, true, 0x99, false, false},
		{"sbc 46-12", []uint8{0xE9, 0x12}, 0x46, true, 0x34, true, false},
	}
	for _, cpuType := range []CPUType{CPU_NMOS, CPU_CMOS} {
		for _, test := range tests {
			test := test
			t.Run(test.name, func(t *testing.T) {
				c, r := setup(t, cpuType)
				r.load(0x0200, test.program...)
				c.TestReset(0x0200, 0xFF)
				c.P |= P_DECIMAL
				if test.carry {
					c.P |= P_CARRY
				}
				c.A = test.a
				step(t, c)
				assert.Equal(t, test.want, c.A)
				assert.Equal(t, test.wantC, c.FlagC(), "C")
				assert.Equal(t, test.wantZ, c.FlagZ(), "Z")
				// CMOS parts spend an extra cycle in decimal mode.
				want := uint64(2)
				if cpuType == CPU_CMOS {
					want = 3
				}
				assert.Equal(t, want, c.CyclesUsed)
				assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
			})
		}
	}
}

func TestSBCDecimalFlags(t *testing.T) {
	// D=1 C=1 A=0x51, SBC #$21 must leave 0x30 with C set.
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0xE9, 0x21)
	c.TestReset(0x0200, 0xFF)
	c.P = P_DECIMAL | P_CARRY
	c.A = 0x51
	step(t, c)
	assert.Equal(t, uint8(0x30), c.A)
	assert.True(t, c.FlagC())
	assert.False(t, c.FlagZ())
	assert.False(t, c.FlagN())
	assert.False(t, c.FlagV())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name                string
		reg, op             uint8
		wantC, wantZ, wantN bool
	}{
		{"greater", 0x50, 0x20, true, false, false},
		{"equal", 0x42, 0x42, true, true, false},
		{"less", 0x20, 0x50, false, false, true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0200, 0xC9, test.op)
			c.TestReset(0x0200, 0xFF)
			c.A = test.reg
			step(t, c)
			assert.Equal(t, test.wantC, c.FlagC())
			assert.Equal(t, test.wantZ, c.FlagZ())
			assert.Equal(t, test.wantN, c.FlagN())
		})
	}
}

func TestShiftRoundTrip(t *testing.T) {
	// ASL then LSR restores the byte iff bit 7 was clear.
	for b := 0; b < 256; b++ {
		c, r := setup(t, CPU_NMOS)
		r.load(0x0200, 0x0A, 0x4A) // ASL A, LSR A
		c.TestReset(0x0200, 0xFF)
		c.A = uint8(b)
		step(t, c)
		step(t, c)
		if b&0x80 == 0 {
			require.Equal(t, uint8(b), c.A, "b=%#x", b)
		} else {
			require.NotEqual(t, uint8(b), c.A, "b=%#x", b)
		}
	}
}

func TestRotates(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0x2A, 0x6A) // ROL A, ROR A
	c.TestReset(0x0200, 0xFF)
	c.A = 0x81
	step(t, c)
	assert.Equal(t, uint8(0x02), c.A)
	assert.True(t, c.FlagC())
	step(t, c)
	assert.Equal(t, uint8(0x81), c.A)
	assert.False(t, c.FlagC())
}

func TestRMWMemory(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0xE6, 0x10) // INC $10
	r.addr[0x0010] = 0x7F
	c.TestReset(0x0200, 0xFF)
	step(t, c)
	assert.Equal(t, uint8(0x80), r.addr[0x0010])
	assert.True(t, c.FlagN())
	assert.False(t, c.FlagZ())
	assert.Equal(t, uint64(5), c.CyclesUsed)
}

func TestBIT(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0x24, 0x10) // BIT $10
	r.addr[0x0010] = 0xC0
	c.TestReset(0x0200, 0xFF)
	c.A = 0x3F
	step(t, c)
	assert.True(t, c.FlagZ(), "A & op is zero")
	assert.True(t, c.FlagN(), "N copies bit 7")
	assert.True(t, c.FlagV(), "V copies bit 6")
}

func TestBITImmediateCMOS(t *testing.T) {
	c, r := setup(t, CPU_CMOS)
	r.load(0x0200, 0x89, 0xC0) // BIT #$C0
	c.TestReset(0x0200, 0xFF)
	c.A = 0x3F
	c.P |= P_NEGATIVE | P_OVERFLOW
	step(t, c)
	assert.True(t, c.FlagZ())
	assert.True(t, c.FlagN(), "immediate BIT leaves N alone")
	assert.True(t, c.FlagV(), "immediate BIT leaves V alone")
}

func TestTransfers(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0200, 0xAA, 0x9A, 0xBA) // TAX, TXS, TSX
	c.TestReset(0x0200, 0xFF)
	c.A = 0x80
	step(t, c)
	assert.Equal(t, uint8(0x80), c.X)
	assert.True(t, c.FlagN())

	c.P = 0
	step(t, c)
	assert.Equal(t, uint8(0x80), c.SP)
	assert.Zero(t, c.P, "TXS touches no flags")

	c.SP = 0x00
	step(t, c)
	assert.Equal(t, uint8(0x00), c.X)
	assert.True(t, c.FlagZ())
}

func TestCMOSAdditions(t *testing.T) {
	t.Run("STZ", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x64, 0x10) // STZ $10
		r.addr[0x0010] = 0xFF
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Zero(t, r.addr[0x0010])
		assert.Equal(t, uint64(3), c.CyclesUsed)
	})

	t.Run("TSB TRB", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x04, 0x10, 0x14, 0x10) // TSB $10, TRB $10
		r.addr[0x0010] = 0x0F
		c.TestReset(0x0200, 0xFF)
		c.A = 0x83
		step(t, c)
		assert.Equal(t, uint8(0x8F), r.addr[0x0010])
		assert.False(t, c.FlagZ(), "A & old was non-zero")
		step(t, c)
		assert.Equal(t, uint8(0x0C), r.addr[0x0010])
		assert.False(t, c.FlagZ())
	})

	t.Run("BRA", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x80, 0x10)
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint16(0x0212), c.PC)
		assert.Equal(t, uint64(3), c.CyclesUsed, "counted like a taken branch")
	})

	t.Run("PHX PLY", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0xDA, 0x7A) // PHX, PLY
		c.TestReset(0x0200, 0xFF)
		c.X = 0x42
		step(t, c)
		assert.Equal(t, uint8(0x42), r.addr[0x01FF])
		step(t, c)
		assert.Equal(t, uint8(0x42), c.Y)
	})

	t.Run("INA DEA", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x1A, 0x3A, 0x3A)
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint8(0x01), c.A)
		step(t, c)
		step(t, c)
		assert.Equal(t, uint8(0xFF), c.A)
		assert.True(t, c.FlagN())
	})

	t.Run("LDA (zp)", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0xB2, 0x80)
		r.addr[0x0080] = 0x34
		r.addr[0x0081] = 0x12
		r.addr[0x1234] = 0x99
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint8(0x99), c.A)
		assert.Equal(t, uint64(5), c.CyclesUsed)
	})

	t.Run("JMP (abs,X)", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x7C, 0x00, 0x30)
		r.word(0x3004, 0x1234)
		c.TestReset(0x0200, 0xFF)
		c.X = 0x04
		step(t, c)
		assert.Equal(t, uint16(0x1234), c.PC)
		assert.Equal(t, uint64(6), c.CyclesUsed)
	})
}

func TestRockwellBits(t *testing.T) {
	t.Run("RMB SMB", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x07, 0x10, 0x87, 0x10) // RMB0 $10, SMB0 $10
		r.addr[0x0010] = 0xFF
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint8(0xFE), r.addr[0x0010])
		assert.Equal(t, uint64(5), c.CyclesUsed)
		step(t, c)
		assert.Equal(t, uint8(0xFF), r.addr[0x0010])
	})

	t.Run("RMB7", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x77, 0x10) // RMB7 $10
		r.addr[0x0010] = 0xFF
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint8(0x7F), r.addr[0x0010])
	})

	t.Run("BBR taken", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x0F, 0x10, 0x20) // BBR0 $10,+0x20
		r.addr[0x0010] = 0xFE
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint16(0x0223), c.PC)
		assert.Equal(t, uint64(6), c.CyclesUsed, "base plus taken branch")
	})

	t.Run("BBS not taken", func(t *testing.T) {
		c, r := setup(t, CPU_CMOS)
		r.load(0x0200, 0x8F, 0x10, 0x20) // BBS0 $10,+0x20
		r.addr[0x0010] = 0xFE
		c.TestReset(0x0200, 0xFF)
		step(t, c)
		assert.Equal(t, uint16(0x0203), c.PC)
		assert.Equal(t, uint64(5), c.CyclesUsed)
	})
}

func TestPCAdvancesByLength(t *testing.T) {
	// Every non-flow-control opcode advances PC by its encoded length.
	skip := map[string]bool{
		"jmp": true, "jsr": true, "rts": true, "rti": true, "brk": true,
		"bcc": true, "bcs": true, "beq": true, "bne": true,
		"bmi": true, "bpl": true, "bvc": true, "bvs": true, "bra": true,
	}
	for _, cpuType := range []CPUType{CPU_NMOS, CPU_CMOS} {
		for op := 0; op < 256; op++ {
			info, ok := Lookup(cpuType, uint8(op))
			if !ok || skip[info.Name] {
				continue
			}
			if len(info.Name) == 4 && (info.Name[:3] == "bbr" || info.Name[:3] == "bbs") {
				// Rockwell branches move PC on their own.
				continue
			}
			c, r := setup(t, cpuType)
			r.load(0x0400, uint8(op), 0x10, 0x04)
			c.TestReset(0x0400, 0xFF)
			step(t, c)
			require.Equal(t, uint16(0x0400)+uint16(info.Length), c.PC,
				"PC after opcode %#02x (%s) on type %d", op, info.Name, cpuType)
			require.GreaterOrEqual(t, c.CyclesUsed, uint64(1))
			require.Equal(t, c.ExpectedCycles, c.CyclesUsed,
				"cycles for opcode %#02x (%s) on type %d", op, info.Name, cpuType)
		}
	}
}
