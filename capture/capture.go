package capture

import "github.com/moffa90/go-bc7215/protocol"

// Capture represents a complete parsed .bcc capture file.
type Capture struct {
	// Version is the file format version
	Version byte

	// Entries contains all captured IR signals in file order
	Entries []*Entry
}

// Entry is one captured IR signal: the demodulated data packet plus,
// when the capture included one, the format packet describing its carrier
// and timing.
type Entry struct {
	// Format is the signal's format packet, nil when the capture was made
	// without format reception
	Format *protocol.FormatPacket

	// Data is the demodulated signal
	Data *protocol.DataPacket
}
