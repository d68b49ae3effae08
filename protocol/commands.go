package protocol

// AppendShutdownCmd appends the shutdown command to dst.
//
// Wire form:
//
//	[0xF7][0x00]
func AppendShutdownCmd(dst []byte) []byte {
	return append(dst, CmdShutdown, SubShutdown)
}

// AppendLoadFormatCmd appends a load-format command to dst: the opcode pair
// followed by the stuffed 33-byte format packet.
//
// Wire form:
//
//	[0xF6][0x01][stuffed signature][stuffed params(32)]
func AppendLoadFormatCmd(dst []byte, f *FormatPacket) []byte {
	dst = append(dst, CmdLoadFormat, SubLoadFormat)
	raw := f.Bytes()
	return AppendStuffedBytes(dst, raw[:])
}

// AppendDataCmd appends a send-data command to dst: the opcode pair, the
// stuffed two-byte bit length (low byte first), then the stuffed payload.
// The packet bit length must lie in [MinTxBitLen, MaxBitLen].
//
// Wire form:
//
//	[0xF5][0x02][stuffed len_l][stuffed len_h][stuffed payload...]
func AppendDataCmd(dst []byte, p *DataPacket) ([]byte, error) {
	bits := p.BitLen()
	if bits < MinTxBitLen || bits > MaxBitLen {
		return nil, ErrBitLenRange
	}
	dst = append(dst, CmdSendData, SubSendData)
	dst = AppendStuffed(dst, byte(bits))
	dst = AppendStuffed(dst, byte(bits>>8))
	return AppendStuffedBytes(dst, p.Payload()), nil
}

// AppendRawCmd appends a send-data command carrying raw bytes with no packet
// structure; the bit length is derived as len(payload)*8. The payload must be
// shorter than MaxRawLen bytes.
//
// Wire form:
//
//	[0xF5][0x02][stuffed len_l][stuffed len_h][stuffed payload...]
func AppendRawCmd(dst, payload []byte) ([]byte, error) {
	if len(payload) >= MaxRawLen {
		return nil, ErrPayloadTooLarge
	}
	bits := len(payload) * 8
	dst = append(dst, CmdSendData, SubSendData)
	dst = AppendStuffed(dst, byte(bits))
	dst = AppendStuffed(dst, byte(bits>>8))
	return AppendStuffedBytes(dst, payload), nil
}
