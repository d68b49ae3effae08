package capture

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/moffa90/go-bc7215/protocol"
)

// Constants for .bcc file format parsing.
const (
	// Magic is the fixed prefix of the header line
	Magic = "BCC1"

	// Version is the current file format version
	Version = 0x01

	// HeaderLength is the expected length of the header line in characters
	HeaderLength = 10

	// RecordFormat marks a row carrying a 33-byte format packet
	RecordFormat = 0x01

	// RecordData marks a row carrying a data packet
	RecordData = 0x02

	// MinimumRowLength is the minimum length for a row line in hex characters
	// (type + one payload byte + checksum)
	MinimumRowLength = 6

	// DefaultEntryCapacity is the default initial capacity for the entries slice
	DefaultEntryCapacity = 16
)

// Parse parses a .bcc capture file from the given file path.
//
// Example:
//
//	c, err := capture.Parse("remote.bcc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d signals\n", len(c.Entries))
func Parse(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a .bcc capture file from any io.Reader.
// This is useful for testing and reading from non-file sources.
func ParseReader(r io.Reader) (*Capture, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("empty file")
	}

	c, declared, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	// A format row describes the data row that follows it, so it is held
	// pending until that row arrives.
	var pending *protocol.FormatPacket

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		kind, payload, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		switch kind {
		case RecordFormat:
			if pending != nil {
				return nil, fmt.Errorf("line %d: format row without a following data row", lineNum)
			}
			pkt := &protocol.FormatPacket{}
			if err := pkt.SetBytes(payload); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			pending = pkt

		case RecordData:
			pkt, err := parseDataRow(payload)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			c.Entries = append(c.Entries, &Entry{Format: pending, Data: pkt})
			pending = nil

		default:
			return nil, fmt.Errorf("line %d: unknown record type 0x%02X", lineNum, kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if pending != nil {
		return nil, fmt.Errorf("trailing format row without a data row")
	}
	if len(c.Entries) != declared {
		return nil, fmt.Errorf("entry count mismatch: got %d entries, header declares %d",
			len(c.Entries), declared)
	}

	return c, nil
}

// parseHeader parses the .bcc file header.
//
// Header format (10 characters):
//
//	BCC1[Version(2)][EntryCount(4)]
//
// Example: "BCC1010002" = version 0x01, 2 entries.
func parseHeader(line string) (*Capture, int, error) {
	if len(line) != HeaderLength {
		return nil, 0, fmt.Errorf("invalid header length: got %d characters, expected %d",
			len(line), HeaderLength)
	}
	if line[:len(Magic)] != Magic {
		return nil, 0, fmt.Errorf("invalid magic: %q", line[:len(Magic)])
	}

	data, err := hex.DecodeString(line[len(Magic):])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid hex data: %w", err)
	}

	version := data[0]
	if version != Version {
		return nil, 0, fmt.Errorf("unsupported version: 0x%02X", version)
	}
	count := int(data[1])<<8 | int(data[2])

	c := &Capture{
		Version: version,
		Entries: make([]*Entry, 0, DefaultEntryCapacity),
	}
	return c, count, nil
}

// parseRow decodes one hex row, verifies its trailing CRC and returns the
// record type and payload.
//
// Row format:
//
//	[Type(1 byte)][Payload(N bytes)][CRC8(1 byte)]
//
// The CRC covers the type and payload bytes.
func parseRow(line string) (byte, []byte, error) {
	if len(line) < MinimumRowLength {
		return 0, nil, fmt.Errorf("row too short: got %d characters, minimum is %d",
			len(line), MinimumRowLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid hex data: %w", err)
	}

	body := data[:len(data)-1]
	crc := data[len(data)-1]
	if calculated := protocol.CRC8(body); crc != calculated {
		return 0, nil, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X",
			crc, calculated)
	}

	return body[0], body[1:], nil
}

// parseDataRow decodes a data record payload.
//
// Payload format:
//
//	[BitLen(2 bytes, big-endian)][Data(N bytes)]
func parseDataRow(payload []byte) (*protocol.DataPacket, error) {
	if len(payload) < 3 {
		return nil, fmt.Errorf("data record too short: got %d bytes, minimum is 3", len(payload))
	}
	bits := uint16(payload[0])<<8 | uint16(payload[1])
	pkt, err := protocol.NewDataPacket(bits, payload[2:])
	if err != nil {
		return nil, err
	}
	return &pkt, nil
}
