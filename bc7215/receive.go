package bc7215

import "github.com/moffa90/go-bc7215/protocol"

// DataReady reports whether a complete, validated data packet is waiting to
// be read. Pending stream bytes are processed first.
func (d *Device) DataReady() (bool, error) {
	if err := d.pump(); err != nil {
		return false, err
	}
	return d.status.dataReady, nil
}

// ClearData discards the pending data packet, if any.
func (d *Device) ClearData() error {
	if err := d.pump(); err != nil {
		return err
	}
	d.status.dataReady = false
	return nil
}

// BitLength returns the bit count of the pending data packet, or 0 when no
// packet is ready.
func (d *Device) BitLength() (uint16, error) {
	if err := d.pump(); err != nil {
		return 0, err
	}
	if !d.status.dataReady {
		return 0, nil
	}
	return d.bitLen, nil
}

// DataPacketSize returns the in-memory size of the pending data packet: its
// payload bytes plus the two-byte length header. It returns 0 when no packet
// is ready.
func (d *Device) DataPacketSize() (int, error) {
	if err := d.pump(); err != nil {
		return 0, err
	}
	if !d.status.dataReady {
		return 0, nil
	}
	return (int(d.bitLen)+7)/8 + protocol.DataPacketHeaderSize, nil
}

// ReadData pops the pending data packet into pkt and returns the packet's
// status byte as reported by the chip. The ready flag is consumed; a second
// call without a new packet returns ErrNoData.
func (d *Device) ReadData(pkt *protocol.DataPacket) (byte, error) {
	if err := d.pump(); err != nil {
		return 0, err
	}
	if !d.status.dataReady {
		return 0, ErrNoData
	}
	status := d.buf.backRead(d.dataEnd, 2)
	n := d.dataCount - protocol.DataPacketOverhead
	if n < 0 {
		n = 0
	}
	payload := d.payloadScratch(n)
	for i := 0; i < n; i++ {
		payload[i] = d.buf.read(d.dataStart, i)
	}
	if err := pkt.Set(d.bitLen, payload); err != nil {
		return 0, err
	}
	d.status.dataReady = false
	d.logDebug("data packet read", "bit_len", d.bitLen, "status", status)
	return status, nil
}

// ReadRaw pops the pending data packet's payload bytes into dst, truncating
// when dst is shorter than the payload. It returns the number of bytes
// copied and consumes the ready flag.
func (d *Device) ReadRaw(dst []byte) (int, error) {
	if err := d.pump(); err != nil {
		return 0, err
	}
	if !d.status.dataReady {
		return 0, ErrNoData
	}
	n := d.dataCount - protocol.DataPacketOverhead
	if n < 0 {
		n = 0
	}
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = d.buf.read(d.dataStart, i)
	}
	d.status.dataReady = false
	return n, nil
}

// FormatReady reports whether a format packet is waiting to be read.
func (d *Device) FormatReady() (bool, error) {
	if err := d.pump(); err != nil {
		return false, err
	}
	return d.status.formatReady, nil
}

// ClearFormat discards the pending format packet, if any.
func (d *Device) ClearFormat() error {
	if err := d.pump(); err != nil {
		return err
	}
	d.status.formatReady = false
	return nil
}

// ReadFormat pops the pending format packet into pkt and returns its
// signature byte. The ready flag is consumed; a second call without a new
// packet returns ErrNoFormat.
func (d *Device) ReadFormat(pkt *protocol.FormatPacket) (byte, error) {
	if err := d.pump(); err != nil {
		return 0, err
	}
	if !d.status.formatReady {
		return 0, ErrNoFormat
	}
	var raw [protocol.FormatPacketSize]byte
	for i := range raw {
		raw[i] = d.buf.read(d.startPos, i)
	}
	if err := pkt.SetBytes(raw[:]); err != nil {
		return 0, err
	}
	d.status.formatReady = false
	d.logDebug("format packet read", "signature", raw[0])
	return raw[0], nil
}

// payloadScratch returns a reusable n-byte staging slice for payload copies.
func (d *Device) payloadScratch(n int) []byte {
	if cap(d.scratch) < n {
		d.scratch = make([]byte, n)
	}
	return d.scratch[:n]
}
