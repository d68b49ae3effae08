// Package capture reads and writes .bcc capture files: hex-encoded,
// line-oriented recordings of IR signals received through a BC7215.
//
// # BCC File Format
//
// The file consists of a header line followed by record lines, all
// hex-encoded.
//
// Header Format (10 characters):
//
//	BCC1[Version(2)][EntryCount(4)]
//
// Example header:
//
//	BCC1010002
//	  BCC1 = magic
//	  01 = format version
//	  0002 = 2 entries
//
// Record Format (variable length):
//
//	[Type(2)][Payload(variable)][CRC8(2)]
//
// Type 01 carries a 33-byte format packet; type 02 carries a data packet as
// a big-endian bit count followed by the payload bytes. A format record
// describes the data record on the line after it. The CRC8 (polynomial 0x07)
// covers the type and payload bytes.
//
// # Usage
//
// Parse a capture file from disk:
//
//	c, err := capture.Parse("remote.bcc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range c.Entries {
//	    fmt.Printf("%d bits\n", e.Data.BitLen())
//	}
package capture
