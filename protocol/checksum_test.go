package protocol

import "testing"

func TestCRC8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want byte
	}{
		{
			name: "empty",
			in:   nil,
			want: 0x00,
		},
		{
			name: "check string",
			in:   []byte("123456789"),
			want: 0xF4, // CRC-8 poly 0x07 check value
		},
		{
			name: "single zero byte",
			in:   []byte{0x00},
			want: 0x00,
		},
		{
			name: "single byte",
			in:   []byte{0x01},
			want: 0x07,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CRC8(tt.in); got != tt.want {
				t.Errorf("CRC8(% x) = %#02x, want %#02x", tt.in, got, tt.want)
			}
		})
	}
}
