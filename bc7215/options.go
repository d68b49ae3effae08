package bc7215

import "github.com/moffa90/go-bc7215/protocol"

// modeWiring describes how the chip's MOD pin is wired.
type modeWiring int

const (
	// modeTiedHigh: MOD tied to VCC, chip permanently in receive mode.
	modeTiedHigh modeWiring = iota

	// modeTiedLow: MOD tied to GND, chip permanently in transmit mode.
	modeTiedLow

	// modeHostDriven: MOD driven by a host pin.
	modeHostDriven
)

// Config holds the driver configuration.
type Config struct {
	// MaxDataSize is the receive payload limit in bytes. The circular
	// buffer is sized from it.
	MaxDataSize int

	// FormatPackets enables reception of format packets. When disabled the
	// buffer only accommodates data packets and double-marker terminators
	// never publish a format packet.
	FormatPackets bool

	// Logger is used for logging operations (optional)
	Logger Logger

	wiring  modeWiring
	modePin ModePin
	busyPin Pin
}

// defaultConfig returns the default configuration: MOD tied high
// (receive-only), BUSY unconnected, format packets enabled.
func defaultConfig() Config {
	return Config{
		MaxDataSize:   protocol.DefaultMaxRxData,
		FormatPackets: true,
		wiring:        modeTiedHigh,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithModePin wires the MOD line to a host-driven pin, enabling switching
// between transmit and receive mode at runtime.
//
// Example:
//
//	dev, err := bc7215.New(port, bc7215.WithModePin(rtsPin))
func WithModePin(pin ModePin) Option {
	return func(c *Config) {
		c.wiring = modeHostDriven
		c.modePin = pin
	}
}

// WithModeTiedHigh declares the MOD line tied to VCC: the chip is permanently
// in receive mode and transmit operations are rejected. This is the default.
func WithModeTiedHigh() Option {
	return func(c *Config) {
		c.wiring = modeTiedHigh
		c.modePin = nil
	}
}

// WithModeTiedLow declares the MOD line tied to GND: the chip is permanently
// in transmit mode and never produces receive packets.
func WithModeTiedLow() Option {
	return func(c *Config) {
		c.wiring = modeTiedLow
		c.modePin = nil
	}
}

// WithBusyPin wires the BUSY line to a readable pin. Every transmitted byte
// then waits for the line to go low first. Without it writes are not gated.
func WithBusyPin(pin Pin) Option {
	return func(c *Config) {
		c.busyPin = pin
	}
}

// WithMaxDataSize sets the receive payload limit in bytes, between 1 and
// protocol.MaxDataBytes. Default is protocol.DefaultMaxRxData.
//
// Example:
//
//	dev, err := bc7215.New(port, bc7215.WithMaxDataSize(128))
func WithMaxDataSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.MaxDataBytes {
			c.MaxDataSize = size
		}
	}
}

// WithFormatPackets enables or disables format packet reception.
// Default is true.
func WithFormatPackets(enabled bool) Option {
	return func(c *Config) {
		c.FormatPackets = enabled
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev, err := bc7215.New(port, bc7215.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
