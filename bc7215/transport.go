package bc7215

// Transport is the byte-stream side of the chip wiring. The driver never
// opens hardware itself; callers inject whatever carries the UART bytes
// (a serial port, a loopback pair, a test script).
//
// Reads are non-blocking: Available reports how many bytes can be read
// without waiting and ReadByte must only be called while Available is
// positive. WriteByte blocks until the byte is accepted and Flush blocks
// until buffered output has left the host.
type Transport interface {
	// Available returns the number of bytes ready to read.
	Available() int

	// ReadByte reads one received byte.
	ReadByte() (byte, error)

	// WriteByte writes one byte toward the chip.
	WriteByte(b byte) error

	// Flush blocks until all written bytes are on the wire.
	Flush() error
}

// Pin is a level-readable signal line. True is the electrical high level.
type Pin interface {
	Read() (bool, error)
}

// ModePin is a host-driven signal line: the host sets the level and can read
// back what it last drove.
type ModePin interface {
	Pin
	Set(high bool) error
}
