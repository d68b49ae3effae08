package protocol

// AppendStuffed appends one payload byte to dst in wire form: bytes colliding
// with Marker or Escape become the pair [Escape, b|EscapedBit], all others
// pass through unchanged.
func AppendStuffed(dst []byte, b byte) []byte {
	if b == Marker || b == Escape {
		return append(dst, Escape, b|EscapedBit)
	}
	return append(dst, b)
}

// AppendStuffedBytes appends every byte of src to dst in wire form.
func AppendStuffedBytes(dst, src []byte) []byte {
	for _, b := range src {
		dst = AppendStuffed(dst, b)
	}
	return dst
}

// Destuff reverses the stuffing on a raw byte run: each Escape is dropped and
// bit 7 of the byte following it is cleared. A trailing Escape with no
// following byte is dropped as well.
func Destuff(src []byte) []byte {
	out := make([]byte, 0, len(src))
	escaped := false
	for _, b := range src {
		if !escaped && b == Escape {
			escaped = true
			continue
		}
		if escaped {
			b &= DestuffMask
			escaped = false
		}
		out = append(out, b)
	}
	return out
}
