package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/moffa90/go-bc7215/serialport"
)

// Config is the bc7215ctl configuration file, TOML-encoded.
//
// Example:
//
//	port = "/dev/ttyUSB0"
//	baud = 19200
//	wiring = "host"
//	busy_over_cts = true
//	max_data_size = 48
//	format_packets = true
//	log_level = "info"
type Config struct {
	// Port is the serial device path
	Port string `toml:"port"`

	// Baud is the UART rate; the chip powers up at 19200
	Baud int `toml:"baud"`

	// Wiring describes the MOD line: "host" (driven over RTS),
	// "tied-high" (receive only) or "tied-low" (transmit only)
	Wiring string `toml:"wiring"`

	// BusyOverCTS gates transmitted bytes on the CTS line
	BusyOverCTS bool `toml:"busy_over_cts"`

	// MaxDataSize is the receive payload limit in bytes
	MaxDataSize int `toml:"max_data_size"`

	// FormatPackets enables format packet reception
	FormatPackets bool `toml:"format_packets"`

	// LogLevel is a zerolog level name
	LogLevel string `toml:"log_level"`
}

func defaultCLIConfig() *Config {
	return &Config{
		Port:          "/dev/ttyUSB0",
		Baud:          serialport.DefaultBaudRate,
		Wiring:        "host",
		BusyOverCTS:   false,
		MaxDataSize:   48,
		FormatPackets: true,
		LogLevel:      "info",
	}
}

// loadConfig reads a TOML configuration file over the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (*Config, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Wiring {
	case "host", "tied-high", "tied-low":
	default:
		return fmt.Errorf("invalid wiring %q: must be host, tied-high or tied-low", c.Wiring)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	return nil
}
