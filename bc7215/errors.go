package bc7215

import "errors"

var (
	// ErrNoData indicates no complete data packet is available to pop.
	ErrNoData = errors.New("no data packet available")

	// ErrNoFormat indicates no complete format packet is available to pop.
	ErrNoFormat = errors.New("no format packet available")

	// ErrNotTransmitMode indicates a send was attempted while the chip is
	// not confirmed in transmit mode. Nothing was written.
	ErrNotTransmitMode = errors.New("chip is not in transmit mode")

	// ErrNotReceiveMode indicates a receive-mode configuration byte was
	// attempted while the chip is not confirmed in receive mode.
	ErrNotReceiveMode = errors.New("chip is not in receive mode")
)
