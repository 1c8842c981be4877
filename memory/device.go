package memory

// Signal is an asynchronous control line a device can assert back at
// the host during housekeeping. Values are ordered by precedence so
// when several fire in one pass the strongest wins:
// Exit > Reset > Debug > None.
type Signal int

const (
	SignalNone Signal = iota
	SignalDebug
	SignalReset
	SignalExit
)

func (s Signal) String() string {
	switch s {
	case SignalDebug:
		return "Debug"
	case SignalReset:
		return "Reset"
	case SignalExit:
		return "Exit"
	}
	return "None"
}

// Strongest reduces a set of signals to the single one the host should
// act on.
func Strongest(signals []Signal) Signal {
	top := SignalNone
	for _, s := range signals {
		if s > top {
			top = s
		}
	}
	return top
}

// Device is the interface a memory mapped peripheral implements. A
// single device instance may own several bus addresses; Read and Write
// receive the full original address so the device can decode sub ports.
// Housekeeping runs once per host step, outside instruction execution,
// and returns any control signals the device wants to surface.
type Device interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	// Kind returns a short label for diagnostics ("PIA6820" etc).
	Kind() string
	// Housekeeping lets the device do per step work (polling input,
	// flushing output) and report asynchronous signals.
	Housekeeping() []Signal
}

// Housekeeping runs one housekeeping pass over every distinct mapped
// device and returns the strongest signal raised. The CPU never calls
// this; it belongs to the host's step loop.
func (m *Map) Housekeeping() Signal {
	var signals []Signal
	for _, d := range m.devices {
		signals = append(signals, d.Housekeeping()...)
	}
	return Strongest(signals)
}
