package protocol

import "github.com/sigurn/crc8"

// crcTable implements CRC-8 with polynomial 0x07 and zero initial value,
// the parameters the chip documentation prescribes for payload checksums.
var crcTable = crc8.MakeTable(crc8.CRC8)

// CRC8 computes the CRC-8 checksum of data. It is a companion utility for
// callers that store or exchange captured packets; the wire protocol itself
// carries no checksum.
func CRC8(data []byte) byte {
	return crc8.Checksum(data, crcTable)
}
