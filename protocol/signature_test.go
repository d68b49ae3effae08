package protocol

import "testing"

func TestSignatureRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want Signature
	}{
		{
			name: "zero",
			in:   0x00,
			want: Signature{},
		},
		{
			name: "proto only",
			in:   0x2A,
			want: Signature{Proto: 0x2A},
		},
		{
			name: "56k flag",
			in:   0x40,
			want: Signature{Carrier56K: true},
		},
		{
			name: "no-carrier flag",
			in:   0x80,
			want: Signature{NoCarrier: true},
		},
		{
			name: "all fields",
			in:   0xFF,
			want: Signature{Proto: 0x3F, Carrier56K: true, NoCarrier: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignatureFromByte(tt.in)
			if got != tt.want {
				t.Fatalf("SignatureFromByte(%#02x) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.Byte() != tt.in {
				t.Errorf("Byte() = %#02x, want %#02x", got.Byte(), tt.in)
			}
		})
	}
}

func TestSignatureMSBFirst(t *testing.T) {
	tests := []struct {
		in   byte
		want bool
	}{
		{0x30, true},  // both direction bits set
		{0x3F, true},  // set alongside other proto bits
		{0x70, true},  // carrier flag does not interfere
		{0x20, false}, // only one bit
		{0x10, false},
		{0x0F, false},
	}

	for _, tt := range tests {
		if got := SignatureFromByte(tt.in).MSBFirst(); got != tt.want {
			t.Errorf("MSBFirst(%#02x) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
