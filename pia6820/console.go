package pia6820

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Console adapts the process terminal to the PIA's keyboard and
// display ports. A reader goroutine drains stdin into a channel so
// Input never blocks the emulation loop; output goes straight to
// stdout with CR expanded for the host terminal.
type Console struct {
	in    chan uint8
	state *term.State
}

// NewConsole starts the stdin reader and returns the console. Call Raw
// before running the machine and Restore when handing the terminal
// back (debugger entry, exit).
func NewConsole() *Console {
	t := &Console{in: make(chan uint8, 64)}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(t.in)
				return
			}
			if n == 1 {
				t.in <- buf[0]
			}
		}
	}()
	return t
}

// Raw switches the terminal to raw (unbuffered, no echo) mode.
func (t *Console) Raw() error {
	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("console raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore returns the terminal to its original (line buffered) mode so
// line oriented readers work again.
func (t *Console) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(os.Stdin.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("console restore: %w", err)
	}
	return nil
}

// Input implements io.PortIn8 without blocking: the bool return is
// false when no keystroke is waiting.
func (t *Console) Input() (uint8, bool) {
	select {
	case key, ok := <-t.in:
		if !ok {
			return 0, false
		}
		return key, true
	default:
		return 0, false
	}
}

// Output implements io.PortOut8, expanding CR into the CRLF raw mode
// terminals want.
func (t *Console) Output(val uint8) {
	if val == '\r' {
		os.Stdout.Write([]byte{'\r', '\n'})
		return
	}
	os.Stdout.Write([]byte{val})
}
