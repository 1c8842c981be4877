// Package irq defines the basic interfaces for working
// with a 6502 family interrupt. A receiver of interrupts (IRQ/NMI)
// polls these at instruction boundaries which allows other components
// that generate them to raise state without cross coupling component logic.
// NOTE: Even though chips make a distinction between level and edge type interrupts
//       the interfaces here don't care and assume implementors simply account for
//       this when polling.
package irq

import "sync/atomic"

// Sender defines the interface for an IRQ source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a concrete interrupt line. Raise may be called from any
// goroutine (a device's housekeeping, a signal handler, etc) while the
// CPU polls and acknowledges it at instruction boundaries. Multiple
// raises before an acknowledge coalesce into one which is exactly the
// semantics interrupt handlers expect.
type Line struct {
	raised atomic.Bool
}

// Raise holds the line high until the next Ack.
func (l *Line) Raise() {
	l.raised.Store(true)
}

// Ack releases the line.
func (l *Line) Ack() {
	l.raised.Store(false)
}

// Raised implements Sender.
func (l *Line) Raised() bool {
	return l.raised.Load()
}
