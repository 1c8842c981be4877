// Package io defines the basic interfaces for working
// with an 8 bit I/O port. It's intended that implementors of
// memory mapped peripherals poll the input port during housekeeping
// and push display traffic through the output port so register
// logic never touches the host platform directly.
package io

// PortIn8 defines an 8 bit input port.
type PortIn8 interface {
	// Input returns the value currently presented on the port and
	// whether that value is new since the last poll.
	Input() (uint8, bool)
}

// PortOut8 defines an 8 bit output port.
type PortOut8 interface {
	// Output latches a new value onto the port.
	Output(val uint8)
}
