package protocol

// Signature bit layout within the one-byte wire field.
const (
	// SignatureProtoMask selects the 6-bit protocol signature.
	SignatureProtoMask = 0x3F

	// SignatureC56KBit enables the 56kHz carrier (bit 6).
	SignatureC56KBit = 0x40

	// SignatureNoCarrierBit disables the carrier entirely (bit 7).
	SignatureNoCarrierBit = 0x80

	// signatureMSBBits marks MSB-first (PWM) encoded protocols when both
	// bits are set inside the protocol signature field.
	signatureMSBBits = 0x30
)

// Signature is the decoded form of a format packet's signature byte:
// a 6-bit protocol signature plus two carrier control flags.
type Signature struct {
	// Proto identifies the IR protocol (0-63).
	Proto uint8

	// Carrier56K selects the 56kHz carrier instead of the standard 38kHz.
	Carrier56K bool

	// NoCarrier disables the carrier for baseband transmission.
	NoCarrier bool
}

// SignatureFromByte unpacks a wire signature byte.
func SignatureFromByte(b byte) Signature {
	return Signature{
		Proto:      b & SignatureProtoMask,
		Carrier56K: b&SignatureC56KBit != 0,
		NoCarrier:  b&SignatureNoCarrierBit != 0,
	}
}

// Byte packs the signature into its wire form.
func (s Signature) Byte() byte {
	b := s.Proto & SignatureProtoMask
	if s.Carrier56K {
		b |= SignatureC56KBit
	}
	if s.NoCarrier {
		b |= SignatureNoCarrierBit
	}
	return b
}

// MSBFirst reports whether the signature identifies an MSB-first (PWM)
// protocol. It selects which end of a partial trailing byte holds the
// occupied bits, see EqualPackets.
func (s Signature) MSBFirst() bool {
	return s.Proto&signatureMSBBits == signatureMSBBits
}
