// Package protocol implements the BC7215 serial wire protocol.
//
// The BC7215 is a universal IR encoder/decoder chip driven over a half-duplex
// UART. This package provides the wire-level pieces with no device state:
// framing constants, packet types, the signature byte codec, byte stuffing,
// command frame builders and packet comparison.
//
// # Framing
//
// Packets travel as byte runs delimited by the marker byte 0x7A:
//
//	data packet:   [payload...][status][len_l][len_h] 0x7A
//	format packet: [signature][params(32)] 0x7A 0x7A
//
// A payload byte equal to 0x7A or 0x7B is stuffed as the pair 0x7B, byte|0x80;
// the receiver drops the 0x7B and clears bit 7 of the following byte. A
// de-stuffed 0x7A therefore never appears inside a payload.
//
// # Commands
//
// Host commands start with a two-byte opcode pair followed by the stuffed
// payload. Use the Append* builders to produce complete command frames:
//
//	frame := protocol.AppendShutdownCmd(nil)
//	frame, err := protocol.AppendDataCmd(nil, &pkt)
//	frame = protocol.AppendLoadFormatCmd(nil, &fmtPkt)
//
// The builders append rather than allocate so a driver can reuse one scratch
// buffer across sends.
//
// # Packets
//
// DataPacket is a value type: an explicit bit length plus a fixed-capacity
// backing array, with bounds-checked views over the occupied prefix. Bits
// beyond the bit length in the final byte are unspecified; EqualPackets
// compares two packets while ignoring them, honoring the bit direction the
// protocol signature selects.
package protocol
