package protocol

// EqualPackets compares two data packets for equality under the encoding
// convention named by sig. Packets of different bit lengths are never equal;
// fully occupied bytes must match exactly. When the bit length is not a
// multiple of eight the trailing byte is only partially occupied and the chip
// does not zero the unused bits, so only the occupied region is compared:
// the low-order bits for MSB-first (PWM) protocols, the high-order bits
// otherwise (PPM).
func EqualPackets(sig Signature, a, b *DataPacket) bool {
	if a.BitLen() != b.BitLen() {
		return false
	}
	full := int(a.BitLen() / 8)
	bits := uint(a.BitLen() & 0x07)
	pa, pb := a.Payload(), b.Payload()
	for i := 0; i < full; i++ {
		if pa[i] != pb[i] {
			return false
		}
	}
	if bits == 0 {
		return true
	}
	ta, tb := pa[full], pb[full]
	if ta == tb {
		return true
	}
	if sig.MSBFirst() {
		for i := uint(0); i < bits; i++ {
			if ta&0x01 != tb&0x01 {
				return false
			}
			ta >>= 1
			tb >>= 1
		}
		return true
	}
	for i := uint(0); i < bits; i++ {
		if ta&0x80 != tb&0x80 {
			return false
		}
		ta <<= 1
		tb <<= 1
	}
	return true
}
