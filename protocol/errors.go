package protocol

import "errors"

var (
	// ErrBitLenRange indicates a bit length outside the representable or
	// transmittable range.
	ErrBitLenRange = errors.New("bit length out of range")

	// ErrPayloadShort indicates a payload buffer smaller than the declared
	// bit length requires.
	ErrPayloadShort = errors.New("payload shorter than bit length")

	// ErrPayloadTooLarge indicates a payload exceeding a protocol ceiling.
	ErrPayloadTooLarge = errors.New("payload exceeds protocol limit")
)
