package capture

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/moffa90/go-bc7215/protocol"
)

// Save writes a capture file to the given path, creating or truncating it.
//
// Example:
//
//	c := &capture.Capture{Version: capture.Version}
//	c.Entries = append(c.Entries, &capture.Entry{Data: &pkt})
//	if err := capture.Save("remote.bcc", c); err != nil {
//	    log.Fatal(err)
//	}
func Save(path string, c *Capture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write serializes a capture to any io.Writer in .bcc line format.
func Write(w io.Writer, c *Capture) error {
	if len(c.Entries) > 0xFFFF {
		return fmt.Errorf("too many entries: %d", len(c.Entries))
	}
	for i, e := range c.Entries {
		if e.Data == nil {
			return fmt.Errorf("entry %d: missing data packet", i)
		}
	}

	n := len(c.Entries)
	if _, err := fmt.Fprintf(w, "%s%02X%04X\n", Magic, Version, n); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range c.Entries {
		if e.Format != nil {
			raw := e.Format.Bytes()
			if err := writeRow(w, RecordFormat, raw[:]); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}
		bits := e.Data.BitLen()
		payload := make([]byte, 0, e.Data.WireSize())
		payload = append(payload, byte(bits>>8), byte(bits))
		payload = append(payload, e.Data.Payload()...)
		if err := writeRow(w, RecordData, payload); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// writeRow emits one hex row: type, payload, then the CRC over both.
func writeRow(w io.Writer, kind byte, payload []byte) error {
	body := make([]byte, 0, len(payload)+2)
	body = append(body, kind)
	body = append(body, payload...)
	body = append(body, protocol.CRC8(body))

	if _, err := fmt.Fprintln(w, hex.EncodeToString(body)); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}
