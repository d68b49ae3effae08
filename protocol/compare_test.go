package protocol

import "testing"

func TestEqualPackets(t *testing.T) {
	msb := SignatureFromByte(0x30) // PWM, MSB-first
	lsb := SignatureFromByte(0x00) // PPM, LSB-first

	mk := func(bits uint16, payload ...byte) DataPacket {
		p, err := NewDataPacket(bits, payload)
		if err != nil {
			t.Fatalf("NewDataPacket(%d): %v", bits, err)
		}
		return p
	}

	tests := []struct {
		name string
		sig  Signature
		a, b DataPacket
		want bool
	}{
		{
			name: "different bit lengths",
			sig:  msb,
			a:    mk(16, 0x01, 0x02),
			b:    mk(24, 0x01, 0x02, 0x03),
			want: false,
		},
		{
			name: "identical full bytes",
			sig:  lsb,
			a:    mk(16, 0x01, 0x02),
			b:    mk(16, 0x01, 0x02),
			want: true,
		},
		{
			name: "full byte mismatch",
			sig:  msb,
			a:    mk(16, 0x01, 0x02),
			b:    mk(16, 0x01, 0x03),
			want: false,
		},
		{
			// 13 bits: one full byte + 5 occupied bits in the tail.
			// MSB-first protocols occupy the low bits, so a difference
			// confined to the high 3 bits is invisible.
			name: "msb-first ignores unused high bits",
			sig:  msb,
			a:    mk(13, 0xFF, 0b000_10110),
			b:    mk(13, 0xFF, 0b111_10110),
			want: true,
		},
		{
			name: "msb-first sees occupied low bits",
			sig:  msb,
			a:    mk(13, 0xFF, 0b101_00000),
			b:    mk(13, 0xFF, 0b101_11111),
			want: false,
		},
		{
			// LSB-first protocols occupy the high bits of the tail.
			name: "lsb-first ignores unused low bits",
			sig:  lsb,
			a:    mk(13, 0xFF, 0b10110_000),
			b:    mk(13, 0xFF, 0b10110_111),
			want: true,
		},
		{
			name: "lsb-first sees occupied high bits",
			sig:  lsb,
			a:    mk(13, 0xFF, 0b10100_000),
			b:    mk(13, 0xFF, 0b10111_000),
			want: false,
		},
		{
			name: "identical partial tail short-circuits",
			sig:  lsb,
			a:    mk(9, 0xAB, 0x80),
			b:    mk(9, 0xAB, 0x80),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualPackets(tt.sig, &tt.a, &tt.b); got != tt.want {
				t.Errorf("EqualPackets = %v, want %v", got, tt.want)
			}
		})
	}
}
