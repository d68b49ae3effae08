package protocol

// DataPacket holds the payload of one decoded (or to-be-transmitted) IR
// signal: a bit length in [0, MaxBitLen] and ceil(bitLen/8) occupied payload
// bytes. The backing array is fixed-capacity so packets are plain values that
// can live on the stack and be copied by assignment; only the occupied prefix
// is meaningful.
//
// Bits beyond the bit length inside the last occupied byte are not guaranteed
// to be zero. Use EqualPackets for comparisons that must ignore them.
type DataPacket struct {
	bitLen uint16
	data   [MaxDataBytes]byte
}

// NewDataPacket builds a packet from a bit length and the payload bytes
// carrying it. The payload must hold at least ceil(bitLen/8) bytes; extra
// bytes are ignored.
func NewDataPacket(bitLen uint16, payload []byte) (DataPacket, error) {
	var p DataPacket
	err := p.Set(bitLen, payload)
	return p, err
}

// Set replaces the packet contents. Same validation as NewDataPacket.
func (p *DataPacket) Set(bitLen uint16, payload []byte) error {
	if bitLen > MaxBitLen {
		return ErrBitLenRange
	}
	n := byteLen(bitLen)
	if len(payload) < n {
		return ErrPayloadShort
	}
	p.bitLen = bitLen
	copy(p.data[:n], payload[:n])
	return nil
}

// BitLen returns the payload length in bits.
func (p *DataPacket) BitLen() uint16 { return p.bitLen }

// ByteLen returns the number of occupied payload bytes, ceil(BitLen/8).
func (p *DataPacket) ByteLen() int { return byteLen(p.bitLen) }

// Payload returns a view of the occupied payload bytes. The slice aliases the
// packet's backing array and is invalidated by the next Set.
func (p *DataPacket) Payload() []byte { return p.data[:p.ByteLen()] }

// WireSize returns the size of the packet as carried in a transmit command:
// the two bit-length bytes plus the occupied payload bytes.
func (p *DataPacket) WireSize() int { return DataPacketHeaderSize + p.ByteLen() }

func byteLen(bits uint16) int { return (int(bits) + 7) / 8 }

// FormatPacket carries the timing parameters describing one IR protocol:
// a signature byte followed by exactly FormatParamSize timing bytes.
// Always FormatPacketSize bytes on the wire.
type FormatPacket struct {
	Signature Signature
	Params    [FormatParamSize]byte
}

// Bytes returns the FormatPacketSize-byte wire image of the packet.
func (f *FormatPacket) Bytes() [FormatPacketSize]byte {
	var b [FormatPacketSize]byte
	b[0] = f.Signature.Byte()
	copy(b[1:], f.Params[:])
	return b
}

// SetBytes fills the packet from a wire image. The input must hold at least
// FormatPacketSize bytes; extra bytes are ignored.
func (f *FormatPacket) SetBytes(b []byte) error {
	if len(b) < FormatPacketSize {
		return ErrPayloadShort
	}
	f.Signature = SignatureFromByte(b[0])
	copy(f.Params[:], b[1:FormatPacketSize])
	return nil
}

// CombinedMessage is the envelope exchanged with higher-level command-lookup
// libraries (for example air-conditioner remote databases). It pairs a stored
// format packet with a stored data packet; its serialized form sentinels the
// bit-length field to zero to distinguish it from inline data. The driver
// never inspects it.
type CombinedMessage struct {
	Format *FormatPacket
	Data   *DataPacket
}
