package bc7215

import (
	"context"

	"github.com/moffa90/go-bc7215/protocol"
)

// LoadFormat sends a format packet to the chip, defining the carrier and
// timing parameters for subsequent transmissions. Only valid in transmit
// mode; otherwise nothing is written and ErrNotTransmitMode is returned.
func (d *Device) LoadFormat(ctx context.Context, pkt *protocol.FormatPacket) error {
	tx, err := d.inTransmitMode()
	if err != nil {
		return err
	}
	if !tx {
		return ErrNotTransmitMode
	}
	d.scratch = protocol.AppendLoadFormatCmd(d.scratch[:0], pkt)
	if err := d.writeFrame(ctx, d.scratch); err != nil {
		return err
	}
	d.logDebug("format loaded", "signature", pkt.Signature.Byte())
	return nil
}

// Transmit sends a data packet for the chip to modulate and emit. Only
// valid in transmit mode. The command-complete flag is lowered before the
// first byte goes out; the chip raises it again, via a marker on the
// stream, once the IR burst has finished.
func (d *Device) Transmit(ctx context.Context, pkt *protocol.DataPacket) error {
	tx, err := d.inTransmitMode()
	if err != nil {
		return err
	}
	if !tx {
		return ErrNotTransmitMode
	}
	frame, err := protocol.AppendDataCmd(d.scratch[:0], pkt)
	if err != nil {
		return err
	}
	d.scratch = frame
	d.status.cmdComplete = false
	if err := d.writeFrame(ctx, frame); err != nil {
		return err
	}
	d.logDebug("data packet sent", "bit_len", pkt.BitLen())
	return nil
}

// SendRaw transmits an arbitrary byte sequence as IR data, len(data)*8 bits.
// Only valid in transmit mode; data must be shorter than protocol.MaxRawLen
// bytes.
func (d *Device) SendRaw(ctx context.Context, data []byte) error {
	tx, err := d.inTransmitMode()
	if err != nil {
		return err
	}
	if !tx {
		return ErrNotTransmitMode
	}
	frame, err := protocol.AppendRawCmd(d.scratch[:0], data)
	if err != nil {
		return err
	}
	d.scratch = frame
	d.status.cmdComplete = false
	if err := d.writeFrame(ctx, frame); err != nil {
		return err
	}
	d.logDebug("raw data sent", "bytes", len(data))
	return nil
}

// writeFrame pushes a built command frame out one byte at a time, honoring
// the chip's per-byte flow control.
func (d *Device) writeFrame(ctx context.Context, frame []byte) error {
	for _, b := range frame {
		if err := d.writeByte(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// writeByte waits for the BUSY line to drop, then writes and flushes a
// single byte. The chip deasserts BUSY only when its one-byte UART buffer is
// free, so this wait is the entire flow-control story. With no BUSY pin
// configured the write goes out immediately. The wait has no internal
// timeout; cancel ctx to abandon a wedged chip.
func (d *Device) writeByte(ctx context.Context, b byte) error {
	if d.cfg.busyPin != nil {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			busy, err := d.cfg.busyPin.Read()
			if err != nil {
				return err
			}
			if !busy {
				break
			}
		}
	}
	if err := d.transport.WriteByte(b); err != nil {
		return err
	}
	return d.transport.Flush()
}
