package bc7215

import "github.com/moffa90/go-bc7215/protocol"

// pump drains every byte the transport has buffered through the receive
// state machine. It runs at the start of every public query, pop and status
// operation; this is the single synchronization point between asynchronous
// byte arrival and the caller's view of the flags.
func (d *Device) pump() error {
	for d.transport.Available() > 0 {
		b, err := d.transport.ReadByte()
		if err != nil {
			d.logError("transport read failed", "error", err)
			return err
		}
		if err := d.processByte(b); err != nil {
			return err
		}
	}
	return nil
}

// processByte advances the receive state machine by one raw stream byte.
//
// In transmit mode the stream carries no packets; a marker there is the
// chip's completion acknowledgement for the previous command. In receive
// mode a marker terminates the current packet run and anything else is
// payload to de-stuff and buffer.
func (d *Device) processByte(raw byte) error {
	tx, err := d.inTransmitMode()
	if err != nil {
		return err
	}
	if tx {
		if raw == protocol.Marker {
			d.status.cmdComplete = true
		}
		return nil
	}

	if raw == protocol.Marker {
		d.endPacket()
		return nil
	}
	d.acceptByte(raw)
	return nil
}

// endPacket handles a marker byte: classify and publish the run that just
// ended, unless the overlap flag already condemned it. One byte of history
// distinguishes the single-marker data terminator from the double-marker
// format terminator.
func (d *Device) endPacket() {
	if !d.status.overlap {
		if d.prevRaw == protocol.Marker {
			d.endFormatPacket()
		} else {
			d.endDataPacket()
		}
	}
	d.prevRaw = protocol.Marker
	d.status.inProgress = false
}

// endFormatPacket handles the second marker of a double-marker terminator:
// the run that just ended was a format packet. The data packet completed
// before it lost its ready flag when this run started, so it is revalidated
// here: still fitting in the buffer alongside the format bytes, and its
// status byte free of the chip error bit.
func (d *Device) endFormatPacket() {
	d.status.dataReady = false
	if d.cfg.FormatPackets && d.byteCount == protocol.FormatPacketSize {
		d.status.formatReady = true
		d.logDebug("format packet ready")
	}
	if d.byteCount+d.dataCount <= d.buf.cap() &&
		d.buf.backRead(d.dataEnd, 2)&protocol.StatusErrorBit == 0 {
		d.bitLen = uint16(d.buf.backRead(d.dataEnd, 0))<<8 |
			uint16(d.buf.backRead(d.dataEnd, 1))
		d.status.dataReady = true
		d.logDebug("data packet republished", "bit_len", d.bitLen)
	}
}

// endDataPacket handles a lone marker: the run that just ended should be a
// data packet. The declared bit length (the two bytes just behind the
// marker, high byte last on the wire) must account for the de-stuffed byte
// count exactly; mismatches and chip-reported errors are dropped silently.
func (d *Device) endDataPacket() {
	if d.buf.backRead(d.writePos, 2)&protocol.StatusErrorBit != 0 {
		return
	}
	bits := uint16(d.buf.backRead(d.writePos, 0))<<8 |
		uint16(d.buf.backRead(d.writePos, 1))
	if (int(bits)+7)/8+protocol.DataPacketOverhead != d.byteCount {
		return
	}
	d.bitLen = bits
	d.status.dataReady = true
	d.dataStart = d.startPos
	d.dataEnd = d.writePos
	d.dataCount = d.byteCount
	d.logDebug("data packet ready", "bit_len", bits, "bytes", d.byteCount)
}

// acceptByte stores one non-marker byte, de-stuffing as it goes. The first
// byte after a terminator opens a new packet run: counters reset, both ready
// flags drop (a new packet supersedes any unread one) and the run's start is
// pinned one slot past the previous write.
func (d *Device) acceptByte(raw byte) {
	if !d.status.inProgress {
		d.status.inProgress = true
		d.status.overlap = false
		d.byteCount = 0
		d.bitLen = 0
		d.status.dataReady = false
		d.status.formatReady = false
		d.startPos = d.writePos + 1
		if d.startPos >= d.buf.cap() {
			d.startPos = 0
		}
	}

	if raw == protocol.Escape {
		d.prevRaw = raw
		return
	}
	b := raw
	if d.prevRaw == protocol.Escape {
		b &= protocol.DestuffMask
	}
	d.prevRaw = raw

	d.writePos++
	if d.writePos >= d.buf.cap() {
		d.writePos = 0
	}
	d.buf.data[d.writePos] = b
	d.byteCount++
	if d.byteCount > d.buf.cap() {
		d.status.overlap = true
	}
}
