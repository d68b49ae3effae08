package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestDataPacket(t *testing.T) {
	tests := []struct {
		name        string
		bitLen      uint16
		payload     []byte
		wantErr     error
		wantByteLen int
		wantWire    int
	}{
		{
			name:        "exact byte boundary",
			bitLen:      16,
			payload:     []byte{0x01, 0x02},
			wantByteLen: 2,
			wantWire:    4,
		},
		{
			name:        "partial final byte",
			bitLen:      13,
			payload:     []byte{0x01, 0x02},
			wantByteLen: 2,
			wantWire:    4,
		},
		{
			name:        "zero length",
			bitLen:      0,
			payload:     nil,
			wantByteLen: 0,
			wantWire:    2,
		},
		{
			name:        "maximum length",
			bitLen:      MaxBitLen,
			payload:     make([]byte, MaxDataBytes),
			wantByteLen: MaxDataBytes,
			wantWire:    MaxDataBytes + 2,
		},
		{
			name:    "bit length too large",
			bitLen:  MaxBitLen + 1,
			payload: make([]byte, MaxDataBytes),
			wantErr: ErrBitLenRange,
		},
		{
			name:    "payload shorter than bit length",
			bitLen:  24,
			payload: []byte{0x01, 0x02},
			wantErr: ErrPayloadShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDataPacket(tt.bitLen, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.BitLen() != tt.bitLen {
				t.Errorf("BitLen = %d, want %d", p.BitLen(), tt.bitLen)
			}
			if p.ByteLen() != tt.wantByteLen {
				t.Errorf("ByteLen = %d, want %d", p.ByteLen(), tt.wantByteLen)
			}
			if p.WireSize() != tt.wantWire {
				t.Errorf("WireSize = %d, want %d", p.WireSize(), tt.wantWire)
			}
			if !bytes.Equal(p.Payload(), tt.payload[:tt.wantByteLen]) {
				t.Errorf("Payload = % x, want % x", p.Payload(), tt.payload[:tt.wantByteLen])
			}
		})
	}
}

func TestDataPacketValueSemantics(t *testing.T) {
	a, err := NewDataPacket(16, []byte{0xAA, 0xBB})
	if err != nil {
		t.Fatal(err)
	}
	b := a // plain assignment copies the whole packet
	if err := b.Set(8, []byte{0xCC}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Payload(), []byte{0xAA, 0xBB}) {
		t.Errorf("copy mutated the source: % x", a.Payload())
	}
}

func TestFormatPacketBytes(t *testing.T) {
	var f FormatPacket
	f.Signature = Signature{Proto: 0x12, NoCarrier: true}
	for i := range f.Params {
		f.Params[i] = byte(i)
	}

	wire := f.Bytes()
	if wire[0] != 0x92 {
		t.Errorf("signature byte = %#02x, want 0x92", wire[0])
	}
	if wire[32] != 31 {
		t.Errorf("last param = %d, want 31", wire[32])
	}

	var g FormatPacket
	if err := g.SetBytes(wire[:]); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if g != f {
		t.Errorf("round trip mismatch: %+v != %+v", g, f)
	}

	if err := g.SetBytes(make([]byte, FormatPacketSize-1)); !errors.Is(err, ErrPayloadShort) {
		t.Errorf("short input: err = %v, want %v", err, ErrPayloadShort)
	}
}
