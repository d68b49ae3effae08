package protocol

import (
	"bytes"
	"testing"
)

func TestAppendStuffed(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want []byte
	}{
		{
			name: "plain byte passes through",
			in:   0x42,
			want: []byte{0x42},
		},
		{
			name: "marker is escaped",
			in:   Marker,
			want: []byte{Escape, Marker | EscapedBit},
		},
		{
			name: "escape is escaped",
			in:   Escape,
			want: []byte{Escape, Escape | EscapedBit},
		},
		{
			name: "byte with bit 7 set passes through",
			in:   0xFA,
			want: []byte{0xFA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendStuffed(nil, tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("AppendStuffed(%#02x) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestStuffingRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "empty", in: []byte{}},
		{name: "no special bytes", in: []byte{0x00, 0x01, 0xFE, 0xFF}},
		{name: "marker at start", in: []byte{Marker, 0x01, 0x02}},
		{name: "marker at end", in: []byte{0x01, 0x02, Marker}},
		{name: "escape in middle", in: []byte{0x01, Escape, 0x02}},
		{name: "consecutive specials", in: []byte{Marker, Marker, Escape, Escape}},
		{name: "alternating", in: []byte{Marker, 0x10, Escape, 0x20, Marker}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := AppendStuffedBytes(nil, tt.in)
			for _, b := range wire[:] {
				if b == Marker {
					t.Fatalf("stuffed stream contains bare marker: %x", wire)
				}
			}
			got := Destuff(wire)
			if !bytes.Equal(got, tt.in) {
				t.Errorf("round trip = %x, want %x (wire %x)", got, tt.in, wire)
			}
		})
	}
}

func TestDestuffClearsBit7(t *testing.T) {
	got := Destuff([]byte{Escape, Marker | EscapedBit, Escape, Escape | EscapedBit})
	want := []byte{Marker, Escape}
	if !bytes.Equal(got, want) {
		t.Errorf("Destuff = %x, want %x", got, want)
	}
}
