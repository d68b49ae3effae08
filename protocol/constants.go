package protocol

// Framing bytes. Any payload byte that collides with one of these is
// byte-stuffed on the wire (see AppendStuffed).
const (
	// Marker is the packet delimiter (0x7A). A single marker terminates a
	// data packet; two consecutive markers terminate a format packet.
	Marker = 0x7A

	// Escape is the byte-stuffing escape (0x7B). It precedes any payload
	// byte equal to Marker or Escape, transmitted with bit 7 set.
	Escape = 0x7B

	// EscapedBit is the bit set on the byte following an Escape.
	EscapedBit = 0x80

	// DestuffMask clears EscapedBit when reversing the stuffing.
	DestuffMask = 0x7F
)

// Command opcodes. Every host command starts with a two-byte opcode pair
// followed by the stuffed payload (if any).
const (
	// CmdShutdown puts the chip into shutdown mode (pair: 0xF7 0x00)
	CmdShutdown = 0xF7

	// CmdLoadFormat loads transmit timing parameters (pair: 0xF6 0x01)
	CmdLoadFormat = 0xF6

	// CmdSendData transmits an IR data packet (pair: 0xF5 0x02)
	CmdSendData = 0xF5
)

// Second bytes of the opcode pairs.
const (
	SubShutdown   = 0x00
	SubLoadFormat = 0x01
	SubSendData   = 0x02
)

// Packet geometry.
const (
	// FormatPacketSize is the wire and in-memory size of a format packet:
	// one signature byte plus FormatParamSize timing bytes.
	FormatPacketSize = 33

	// FormatParamSize is the number of timing parameter bytes.
	FormatParamSize = 32

	// DataPacketOverhead is the number of non-payload bytes the chip appends
	// to a received data packet: a status byte and two bit-length bytes.
	DataPacketOverhead = 3

	// DataPacketHeaderSize is the size of the bit-length field in the
	// transmit command payload.
	DataPacketHeaderSize = 2
)

// Protocol limits.
const (
	// MaxBitLen is the largest representable data packet length in bits.
	MaxBitLen = 4095

	// MinTxBitLen is the smallest bit length the chip will transmit.
	MinTxBitLen = 8

	// MaxRawLen is the exclusive upper bound, in bytes, for raw sends.
	MaxRawLen = 0x200

	// MaxDataBytes is the payload capacity of a DataPacket, enough for
	// MaxBitLen bits.
	MaxDataBytes = 512

	// DefaultMaxRxData is the default receive payload limit in bytes.
	// Most remote controllers send well under 32 bytes.
	DefaultMaxRxData = 48
)

// StatusErrorBit is the chip-error flag in the trailing status byte of a
// received data packet. Packets carrying it are discarded.
const StatusErrorBit = 0x80
