package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLDAAllModes drives LDA through every addressing mode it encodes
// and checks value, PC advance and cycle cost together.
func TestLDAAllModes(t *testing.T) {
	tests := []struct {
		name       string
		cpuType    CPUType
		program    []uint8
		x, y       uint8
		wantPC     uint16
		wantCycles uint64
	}{
		{"immediate", CPU_NMOS, []uint8{0xA9, 0x55}, 0, 0, 0x0602, 2},
		{"zeropage", CPU_NMOS, []uint8{0xA5, 0x20}, 0, 0, 0x0602, 3},
		{"zeropage,x", CPU_NMOS, []uint8{0xB5, 0x1E}, 0x02, 0, 0x0602, 4},
		{"absolute", CPU_NMOS, []uint8{0xAD, 0x00, 0x30}, 0, 0, 0x0603, 4},
		{"absolute,x", CPU_NMOS, []uint8{0xBD, 0x00, 0x30}, 0x02, 0, 0x0603, 4},
		{"absolute,x crossed", CPU_NMOS, []uint8{0xBD, 0xFE, 0x2F}, 0x02, 0, 0x0603, 5},
		{"absolute,y", CPU_NMOS, []uint8{0xB9, 0x00, 0x30}, 0, 0x02, 0x0603, 4},
		{"(indirect,x)", CPU_NMOS, []uint8{0xA1, 0x3E}, 0x02, 0, 0x0602, 6},
		{"(indirect),y", CPU_NMOS, []uint8{0xB1, 0x40}, 0, 0x10, 0x0602, 5},
		{"(zeropage)", CPU_CMOS, []uint8{0xB2, 0x44}, 0, 0, 0x0602, 5},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, test.cpuType)
			r.load(0x0600, test.program...)
			r.addr[0x0020] = 0x55      // zero page operand
			r.addr[0x3000] = 0x55      // absolute operand
			r.addr[0x3002] = 0x55      // indexed absolute target
			r.load(0x0040, 0x00, 0x30) // (indirect,x) target ptr at 0x40
			r.load(0x0044, 0x00, 0x30) // (zp) ptr
			r.addr[0x3010] = 0x55      // (indirect),y target
			c.TestReset(0x0600, 0xFF)
			c.X, c.Y = test.x, test.y
			step(t, c)
			assert.Equal(t, uint8(0x55), c.A)
			assert.Equal(t, test.wantPC, c.PC)
			assert.Equal(t, test.wantCycles, c.CyclesUsed)
			assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
		})
	}
}

func TestSTAAllModes(t *testing.T) {
	tests := []struct {
		name       string
		cpuType    CPUType
		program    []uint8
		x, y       uint8
		wantAddr   uint16
		wantCycles uint64
	}{
		{"zeropage", CPU_NMOS, []uint8{0x85, 0x20}, 0, 0, 0x0020, 3},
		{"zeropage,x", CPU_NMOS, []uint8{0x95, 0x1E}, 0x02, 0, 0x0020, 4},
		{"absolute", CPU_NMOS, []uint8{0x8D, 0x00, 0x30}, 0, 0, 0x3000, 4},
		{"absolute,x", CPU_NMOS, []uint8{0x9D, 0x00, 0x30}, 0x08, 0, 0x3008, 5},
		{"absolute,y", CPU_NMOS, []uint8{0x99, 0x00, 0x30}, 0, 0x08, 0x3008, 5},
		{"(indirect,x)", CPU_NMOS, []uint8{0x81, 0x3E}, 0x02, 0, 0x3000, 6},
		{"(indirect),y", CPU_NMOS, []uint8{0x91, 0x40}, 0, 0x10, 0x3010, 6},
		{"(zeropage)", CPU_CMOS, []uint8{0x92, 0x44}, 0, 0, 0x3000, 5},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, test.cpuType)
			r.load(0x0600, test.program...)
			r.load(0x0040, 0x00, 0x30)
			r.load(0x0044, 0x00, 0x30)
			c.TestReset(0x0600, 0xFF)
			c.A = 0x77
			c.X, c.Y = test.x, test.y
			step(t, c)
			assert.Equal(t, uint8(0x77), r.addr[test.wantAddr])
			assert.Equal(t, test.wantCycles, c.CyclesUsed)
			assert.Equal(t, c.ExpectedCycles, c.CyclesUsed)
		})
	}
}

func TestLDXLDYModes(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0600, 0xB6, 0x20, 0xB4, 0x21) // LDX $20,Y / LDY $21,X
	r.addr[0x0022] = 0x11
	r.addr[0x0023] = 0x22
	c.TestReset(0x0600, 0xFF)
	c.X, c.Y = 0x02, 0x02
	step(t, c)
	assert.Equal(t, uint8(0x11), c.X)
	c.X = 0x02 // the LDX above replaced the index
	step(t, c)
	assert.Equal(t, uint8(0x22), c.Y)
}

func TestSTXSTYModes(t *testing.T) {
	c, r := setup(t, CPU_NMOS)
	r.load(0x0600, 0x96, 0x20, 0x94, 0x21) // STX $20,Y / STY $21,X
	c.TestReset(0x0600, 0xFF)
	c.X, c.Y = 0x11, 0x02
	step(t, c)
	assert.Equal(t, uint8(0x11), r.addr[0x0022])
	c.X, c.Y = 0x02, 0x22
	step(t, c)
	assert.Equal(t, uint8(0x22), r.addr[0x0023])
}

func TestLogicOps(t *testing.T) {
	tests := []struct {
		name    string
		op      uint8
		a, val  uint8
		want    uint8
		wantZ   bool
		wantN   bool
	}{
		{"and", 0x29, 0xF0, 0x0F, 0x00, true, false},
		{"and partial", 0x29, 0xCC, 0xAA, 0x88, false, true},
		{"ora", 0x09, 0xF0, 0x0F, 0xFF, false, true},
		{"eor", 0x49, 0xFF, 0x0F, 0xF0, false, true},
		{"eor self", 0x49, 0x42, 0x42, 0x00, true, false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0600, test.op, test.val)
			c.TestReset(0x0600, 0xFF)
			c.A = test.a
			step(t, c)
			assert.Equal(t, test.want, c.A)
			assert.Equal(t, test.wantZ, c.FlagZ())
			assert.Equal(t, test.wantN, c.FlagN())
		})
	}
}

func TestSTZModes(t *testing.T) {
	c, r := setup(t, CPU_CMOS)
	r.load(0x0600, 0x74, 0x1E, 0x9C, 0x00, 0x30, 0x9E, 0x00, 0x30)
	r.addr[0x0020] = 0xFF
	r.addr[0x3000] = 0xFF
	r.addr[0x3008] = 0xFF
	c.TestReset(0x0600, 0xFF)
	c.X = 0x02

	step(t, c) // STZ $1E,X
	assert.Zero(t, r.addr[0x0020])
	step(t, c) // STZ $3000
	assert.Zero(t, r.addr[0x3000])
	c.X = 0x08
	step(t, c) // STZ $3000,X
	assert.Zero(t, r.addr[0x3008])
	assert.Equal(t, uint64(5), c.CyclesUsed)
}

func TestIncDecMemory(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		initial uint8
		want    uint8
		wantZ   bool
		wantN   bool
	}{
		{"inc wraps", []uint8{0xE6, 0x10}, 0xFF, 0x00, true, false},
		{"dec wraps", []uint8{0xC6, 0x10}, 0x00, 0xFF, false, true},
		{"dec to zero", []uint8{0xC6, 0x10}, 0x01, 0x00, true, false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			c, r := setup(t, CPU_NMOS)
			r.load(0x0600, test.program...)
			r.addr[0x0010] = test.initial
			c.TestReset(0x0600, 0xFF)
			step(t, c)
			assert.Equal(t, test.want, r.addr[0x0010])
			assert.Equal(t, test.wantZ, c.FlagZ())
			assert.Equal(t, test.wantN, c.FlagN())
		})
	}
}
