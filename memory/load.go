package memory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads a raw binary image and writes it through the current
// mapping starting at start.
func (m *Map) LoadFile(path string, start uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return m.LoadData(start, data)
}

// LoadROMFile reads a raw binary image and maps it as ROM at start.
func (m *Map) LoadROMFile(path string, start uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return m.MapROM(start, data)
}

// LoadHexFile reads the text record format
//
//	AAAA: BB BB BB ...
//
// one record per line where AAAA is a four hex digit load address and
// each BB a byte stored consecutively from there. Blank lines and lines
// starting with '#' or ';' are skipped. Bytes are written through the
// current mapping. Returns the lowest and highest addresses written.
func (m *Map) LoadHexFile(path string) (uint16, uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	low, high := uint16(0xFFFF), uint16(0x0000)
	wrote := false
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}
		colon := strings.Index(text, ":")
		if colon < 0 {
			return 0, 0, fmt.Errorf("load %s: line %d: missing address separator", path, line)
		}
		addr64, err := strconv.ParseUint(strings.TrimSpace(text[:colon]), 16, 16)
		if err != nil {
			return 0, 0, fmt.Errorf("load %s: line %d: bad address: %w", path, line, err)
		}
		addr := uint16(addr64)
		for _, field := range strings.Fields(text[colon+1:]) {
			val, err := strconv.ParseUint(field, 16, 8)
			if err != nil {
				return 0, 0, fmt.Errorf("load %s: line %d: bad byte %q: %w", path, line, field, err)
			}
			m.Write(addr, uint8(val))
			if addr < low {
				low = addr
			}
			if addr > high {
				high = addr
			}
			wrote = true
			if addr == LastAddress {
				break
			}
			addr++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("load %s: %w", path, err)
	}
	if !wrote {
		return 0, 0, fmt.Errorf("load %s: no records", path)
	}
	return low, high, nil
}

// SaveHexFile writes [start, end] in the record format LoadHexFile
// accepts, 16 bytes per record.
func (m *Map) SaveHexFile(path string, start, end uint16) error {
	if start > end {
		return OutOfRange{start, end}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for a := uint32(start); a <= uint32(end); a += 16 {
		fmt.Fprintf(w, "%04X:", a)
		for i := uint32(0); i < 16 && a+i <= uint32(end); i++ {
			fmt.Fprintf(w, " %02X", m.Read(uint16(a+i)))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
