// Package bc7215 drives the BC7215 infrared encoder/decoder chip over a
// byte-oriented serial transport.
//
// The chip speaks a marker-delimited, byte-stuffed stream: received IR
// signals arrive as data packets (the demodulated bits plus a status byte
// and bit count), optionally followed by a format packet describing the
// carrier and pulse timing. Device reassembles that stream into packets and
// exposes them through status queries and pops; on the transmit side it
// builds command frames and paces them against the chip's BUSY line.
//
// The driver never starts goroutines. Stream bytes are consumed inside the
// caller's own status or pop calls, so a caller that polls DataReady is
// also the one advancing the framer. All blocking operations take a
// context.Context for cancellation.
//
// Typical receive loop:
//
//	dev, err := bc7215.New(transport, bc7215.WithFormatPackets(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    ready, err := dev.DataReady()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if ready {
//	        var pkt protocol.DataPacket
//	        status, err := dev.ReadData(&pkt)
//	        ...
//	    }
//	    time.Sleep(10 * time.Millisecond)
//	}
package bc7215
