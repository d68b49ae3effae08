package bc7215

import (
	"context"

	"github.com/moffa90/go-bc7215/protocol"
)

// statusFlags tracks the chip state inferred from the byte stream and from
// locally issued commands. Flags are mutated only by the framer (receive
// side) and the transmit operations, and individually cleared by pops.
type statusFlags struct {
	formatReady bool
	dataReady   bool
	inProgress  bool
	overlap     bool
	cmdComplete bool
}

// Device drives one BC7215 chip over an injected Transport and signal pins.
//
// The driver is strictly caller-paced: all receive processing happens inside
// whichever status query or pop the caller makes, and sends return only after
// every byte is written. Device is not safe for concurrent use; callers must
// serialize access externally.
type Device struct {
	transport Transport
	cfg       Config

	status statusFlags
	bitLen uint16

	// prevRaw is the last raw stream byte, kept to recognize the
	// double-marker terminator and the byte following an escape.
	prevRaw byte

	buf       ring
	startPos  int
	writePos  int
	byteCount int

	// extent of the previously completed data packet, kept live across a
	// trailing format packet so both can be popped together
	dataStart int
	dataEnd   int
	dataCount int

	scratch []byte
}

// New creates a Device over the given transport.
//
// The default wiring is MOD tied high (receive-only) with the BUSY line
// unconnected; use WithModePin, WithModeTiedLow and WithBusyPin to match the
// actual board. When the MOD line is host-driven it is driven high (receive)
// at construction.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0", 19200)
//	dev, err := bc7215.New(port,
//	    bc7215.WithModePin(port.RTSPin()),
//	    bc7215.WithBusyPin(port.CTSPin()),
//	)
func New(t Transport, opts ...Option) (*Device, error) {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity := cfg.MaxDataSize + protocol.DataPacketOverhead
	if cfg.FormatPackets {
		capacity += protocol.FormatPacketSize
	}

	d := &Device{
		transport: t,
		cfg:       cfg,
		buf:       newRing(capacity),
	}

	if cfg.wiring == modeHostDriven {
		if err := cfg.modePin.Set(true); err != nil {
			return nil, err
		}
	}

	d.logDebug("device created",
		"buffer_capacity", capacity,
		"format_packets", cfg.FormatPackets,
	)
	return d, nil
}

// inTransmitMode resolves whether the chip currently is in transmit mode:
// MOD tied low means always, tied high means never, host-driven means the
// pin's present level decides (low = transmit).
func (d *Device) inTransmitMode() (bool, error) {
	switch d.cfg.wiring {
	case modeTiedLow:
		return true, nil
	case modeTiedHigh:
		return false, nil
	default:
		high, err := d.cfg.modePin.Read()
		if err != nil {
			return false, err
		}
		return !high, nil
	}
}

// inReceiveMode is the complement of inTransmitMode for the wirings that
// accept receive-mode configuration bytes.
func (d *Device) inReceiveMode() (bool, error) {
	tx, err := d.inTransmitMode()
	return !tx, err
}

// SetTransmit drives the MOD line low, putting the chip in transmit mode.
// Any unread receive state is abandoned and the command-complete flag is
// raised so the first send is not blocked on a phantom prior command.
func (d *Device) SetTransmit() error {
	if d.cfg.modePin != nil {
		if err := d.cfg.modePin.Set(false); err != nil {
			return err
		}
	}
	d.status.dataReady = false
	d.status.formatReady = false
	d.status.inProgress = false
	d.status.cmdComplete = true
	d.logDebug("mode set to transmit")
	return nil
}

// SetReceive drives the MOD line high, putting the chip in receive mode.
func (d *Device) SetReceive() error {
	if d.cfg.modePin != nil {
		if err := d.cfg.modePin.Set(true); err != nil {
			return err
		}
	}
	d.logDebug("mode set to receive")
	return nil
}

// SetReceiveMode sends a receive-mode configuration byte. The byte travels
// unstuffed. Returns ErrNotReceiveMode (and sends nothing) when the chip is
// not confirmed in receive mode.
func (d *Device) SetReceiveMode(ctx context.Context, mode byte) error {
	rx, err := d.inReceiveMode()
	if err != nil {
		return err
	}
	if !rx {
		return ErrNotReceiveMode
	}
	if err := d.writeByte(ctx, mode); err != nil {
		return err
	}
	d.logDebug("receive mode configured", "mode", mode)
	return nil
}

// Shutdown sends the shutdown command, minimizing chip power consumption.
// The command is only accepted in transmit mode; in any other mode nothing
// is written and ErrNotTransmitMode is returned. The command-complete flag
// is lowered either way, matching the chip's bring-up contract: completion
// is signaled by a marker byte on the stream.
func (d *Device) Shutdown(ctx context.Context) error {
	tx, err := d.inTransmitMode()
	if err != nil {
		return err
	}
	d.status.cmdComplete = false
	if !tx {
		return ErrNotTransmitMode
	}
	if err := d.writeFrame(ctx, protocol.AppendShutdownCmd(d.scratch[:0])); err != nil {
		return err
	}
	d.logInfo("chip shut down")
	return nil
}

// Busy reports whether the link is occupied: in transmit mode a send is
// still unacknowledged, in receive mode a packet has started but has not
// reached its terminator yet. Pending bytes are drained first.
func (d *Device) Busy() (bool, error) {
	if err := d.pump(); err != nil {
		return false, err
	}
	tx, err := d.inTransmitMode()
	if err != nil {
		return false, err
	}
	if tx {
		return !d.status.cmdComplete, nil
	}
	return d.status.inProgress, nil
}

// CommandCompleted reports whether the last issued command has finished
// executing. Pending bytes are drained first.
func (d *Device) CommandCompleted() (bool, error) {
	if err := d.pump(); err != nil {
		return false, err
	}
	return d.status.cmdComplete, nil
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Info(msg, keysAndValues...)
	}
}

func (d *Device) logError(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Error(msg, keysAndValues...)
	}
}
