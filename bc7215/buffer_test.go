package bc7215

import "testing"

func TestRingRead(t *testing.T) {
	r := newRing(5)
	for i := range r.data {
		r.data[i] = byte(i)
	}

	tests := []struct {
		name string
		pos  int
		n    int
		want byte
	}{
		{"no offset", 1, 0, 1},
		{"within bounds", 1, 3, 4},
		{"wraps at capacity", 3, 2, 0},
		{"wraps past capacity", 4, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.read(tt.pos, tt.n); got != tt.want {
				t.Errorf("read(%d, %d) = %d, want %d", tt.pos, tt.n, got, tt.want)
			}
		})
	}
}

func TestRingBackRead(t *testing.T) {
	r := newRing(5)
	for i := range r.data {
		r.data[i] = byte(i)
	}

	tests := []struct {
		name string
		pos  int
		n    int
		want byte
	}{
		{"no offset", 3, 0, 3},
		{"within bounds", 3, 2, 1},
		{"wraps at zero", 0, 1, 4},
		{"wraps past zero", 1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.backRead(tt.pos, tt.n); got != tt.want {
				t.Errorf("backRead(%d, %d) = %d, want %d", tt.pos, tt.n, got, tt.want)
			}
		})
	}
}
