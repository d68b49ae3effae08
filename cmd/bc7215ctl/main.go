// bc7215ctl captures, replays and sends infrared signals through a
// serial-attached BC7215 chip.
//
// Usage:
//
//	bc7215ctl capture  -config ctl.toml -out remote.bcc -count 3
//	bc7215ctl replay   -config ctl.toml -in remote.bcc -index 0
//	bc7215ctl send     -config ctl.toml -hex 20df10ef -bits 32
//	bc7215ctl shutdown -config ctl.toml
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/moffa90/go-bc7215/bc7215"
	"github.com/moffa90/go-bc7215/capture"
	"github.com/moffa90/go-bc7215/logging"
	"github.com/moffa90/go-bc7215/protocol"
	"github.com/moffa90/go-bc7215/serialport"
)

const pollInterval = 10 * time.Millisecond

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "capture":
		err = runCapture(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	case "send":
		err = runSend(os.Args[2:])
	case "shutdown":
		err = runShutdown(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bc7215ctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bc7215ctl <capture|replay|send|shutdown> [flags]")
}

// openDevice opens the configured serial port and builds a driver on it.
func openDevice(cfg *Config) (*bc7215.Device, *serialport.Port, error) {
	port, err := serialport.Open(cfg.Port, cfg.Baud)
	if err != nil {
		return nil, nil, err
	}

	opts := []bc7215.Option{
		bc7215.WithMaxDataSize(cfg.MaxDataSize),
		bc7215.WithFormatPackets(cfg.FormatPackets),
		bc7215.WithLogger(logging.NewConsole(logging.ParseLevel(cfg.LogLevel))),
	}
	switch cfg.Wiring {
	case "host":
		opts = append(opts, bc7215.WithModePin(port.RTSPin()))
	case "tied-high":
		opts = append(opts, bc7215.WithModeTiedHigh())
	case "tied-low":
		opts = append(opts, bc7215.WithModeTiedLow())
	}
	if cfg.BusyOverCTS {
		opts = append(opts, bc7215.WithBusyPin(port.CTSPin()))
	}

	dev, err := bc7215.New(port, opts...)
	if err != nil {
		_ = port.Close()
		return nil, nil, err
	}
	return dev, port, nil
}

func runCapture(args []string) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	out := fs.String("out", "capture.bcc", "output capture file")
	count := fs.Int("count", 1, "number of signals to capture")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	dev, port, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = port.Close() }()

	if err := dev.SetReceive(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &capture.Capture{Version: capture.Version}
	fmt.Printf("waiting for %d signal(s), press the remote...\n", *count)

	for len(c.Entries) < *count {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}

		ready, err := dev.DataReady()
		if err != nil {
			return err
		}
		if !ready {
			continue
		}

		entry := &capture.Entry{Data: &protocol.DataPacket{}}
		status, err := dev.ReadData(entry.Data)
		if err != nil {
			return err
		}

		fmtReady, err := dev.FormatReady()
		if err != nil {
			return err
		}
		if fmtReady {
			entry.Format = &protocol.FormatPacket{}
			if _, err := dev.ReadFormat(entry.Format); err != nil {
				return err
			}
		}

		c.Entries = append(c.Entries, entry)
		fmt.Printf("captured signal %d: %d bits, status %#02x\n",
			len(c.Entries), entry.Data.BitLen(), status)
	}

	if err := capture.Save(*out, c); err != nil {
		return err
	}
	fmt.Printf("saved %d signal(s) to %s\n", len(c.Entries), *out)
	return nil
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	in := fs.String("in", "capture.bcc", "input capture file")
	index := fs.Int("index", 0, "entry to replay")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	c, err := capture.Parse(*in)
	if err != nil {
		return err
	}
	if *index < 0 || *index >= len(c.Entries) {
		return fmt.Errorf("entry %d out of range: file holds %d", *index, len(c.Entries))
	}
	entry := c.Entries[*index]

	dev, port, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = port.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := dev.SetTransmit(); err != nil {
		return err
	}
	if entry.Format != nil {
		if err := dev.LoadFormat(ctx, entry.Format); err != nil {
			return err
		}
	}
	if err := dev.Transmit(ctx, entry.Data); err != nil {
		return err
	}
	if err := waitIdle(ctx, dev); err != nil {
		return err
	}

	fmt.Printf("replayed entry %d: %d bits\n", *index, entry.Data.BitLen())
	return nil
}

func runSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	hexData := fs.String("hex", "", "payload bytes, hex-encoded")
	bits := fs.Int("bits", 0, "bit count; defaults to 8 per payload byte")
	_ = fs.Parse(args)

	payload, err := hex.DecodeString(*hexData)
	if err != nil {
		return fmt.Errorf("invalid -hex value: %w", err)
	}
	if len(payload) == 0 {
		return fmt.Errorf("-hex is required")
	}
	if *bits == 0 {
		*bits = len(payload) * 8
	}
	if *bits < 0 || *bits > protocol.MaxBitLen {
		return fmt.Errorf("bit count %d out of range", *bits)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	dev, port, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = port.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := dev.SetTransmit(); err != nil {
		return err
	}
	pkt, err := protocol.NewDataPacket(uint16(*bits), payload)
	if err != nil {
		return err
	}
	if err := dev.Transmit(ctx, &pkt); err != nil {
		return err
	}
	if err := waitIdle(ctx, dev); err != nil {
		return err
	}

	fmt.Printf("sent %d bits\n", *bits)
	return nil
}

func runShutdown(args []string) error {
	fs := flag.NewFlagSet("shutdown", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	dev, port, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = port.Close() }()

	if err := dev.SetTransmit(); err != nil {
		return err
	}
	if err := dev.Shutdown(context.Background()); err != nil {
		return err
	}

	fmt.Println("chip shut down")
	return nil
}

// waitIdle polls until the chip acknowledges the last command.
func waitIdle(ctx context.Context, dev *bc7215.Device) error {
	for {
		done, err := dev.CommandCompleted()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
