// Package serialport adapts a host serial port to the driver's Transport
// interface, with the RTS and CTS modem lines available as the chip's MOD
// and BUSY pins.
package serialport

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/moffa90/go-bc7215/bc7215"
)

// DefaultBaudRate is the chip's power-on UART rate.
const DefaultBaudRate = 19200

// Config holds the port configuration.
type Config struct {
	// PollTimeout bounds how long a single receive poll may block. Zero
	// polls without blocking.
	PollTimeout time.Duration
}

// Option is a functional option for configuring the port.
type Option func(*Config)

// WithPollTimeout makes receive polls block up to d instead of returning
// immediately. Useful on hosts where zero-timeout reads spin too hot.
func WithPollTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.PollTimeout = d
	}
}

// Port is a serial connection to a BC7215 chip. It implements
// bc7215.Transport; RTSPin and CTSPin expose the modem lines for boards
// that route MOD and BUSY through them.
//
// Port is not safe for concurrent use, matching the driver it feeds.
type Port struct {
	inner serial.Port
	cfg   Config

	// received bytes not yet consumed by ReadByte
	buf []byte
	pos int

	// poll staging area
	readChunk [64]byte

	lastRTS bool
}

// Open opens a serial port at the given baud rate, 8N1.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0", serialport.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(name string, baud int, opts ...Option) (*Port, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	inner, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	if err := inner.SetReadTimeout(cfg.PollTimeout); err != nil {
		_ = inner.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	return &Port{inner: inner, cfg: cfg}, nil
}

// poll moves whatever the OS has buffered into the internal queue.
func (p *Port) poll() {
	for {
		n, err := p.inner.Read(p.readChunk[:])
		if n > 0 {
			p.buf = append(p.buf, p.readChunk[:n]...)
		}
		if err != nil || n == 0 {
			return
		}
	}
}

// compact drops consumed bytes once the queue has fully drained.
func (p *Port) compact() {
	if p.pos == len(p.buf) {
		p.buf = p.buf[:0]
		p.pos = 0
	}
}

// Available returns the number of received bytes ready to read.
func (p *Port) Available() int {
	p.poll()
	return len(p.buf) - p.pos
}

// ReadByte reads one received byte. It returns io.EOF when nothing is
// queued; callers are expected to gate on Available.
func (p *Port) ReadByte() (byte, error) {
	if p.pos >= len(p.buf) {
		p.poll()
		if p.pos >= len(p.buf) {
			return 0, io.EOF
		}
	}
	b := p.buf[p.pos]
	p.pos++
	p.compact()
	return b, nil
}

// WriteByte writes one byte toward the chip.
func (p *Port) WriteByte(b byte) error {
	var one [1]byte
	one[0] = b
	n, err := p.inner.Write(one[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Flush blocks until buffered output has left the host UART.
func (p *Port) Flush() error {
	return p.inner.Drain()
}

// Close closes the underlying serial port.
func (p *Port) Close() error {
	return p.inner.Close()
}

// RTSPin returns the port's RTS line as a host-driven pin, suitable for
// bc7215.WithModePin on boards that route MOD through RTS. Read returns the
// last driven level; the host side of RTS is not physically readable.
func (p *Port) RTSPin() bc7215.ModePin {
	return (*rtsPin)(p)
}

// CTSPin returns the port's CTS line as a readable pin, suitable for
// bc7215.WithBusyPin on boards that route BUSY through CTS.
func (p *Port) CTSPin() bc7215.Pin {
	return (*ctsPin)(p)
}

type rtsPin Port

func (r *rtsPin) Set(high bool) error {
	if err := r.inner.SetRTS(high); err != nil {
		return err
	}
	r.lastRTS = high
	return nil
}

func (r *rtsPin) Read() (bool, error) {
	return r.lastRTS, nil
}

type ctsPin Port

func (c *ctsPin) Read() (bool, error) {
	bits, err := c.inner.GetModemStatusBits()
	if err != nil {
		return false, err
	}
	return bits.CTS, nil
}
