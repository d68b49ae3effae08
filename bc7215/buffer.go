package bc7215

// ring is the fixed-capacity byte store for in-flight receive packets. It is
// sized at construction for one complete data packet plus, when enabled, one
// complete format packet. Positions are plain indices; the two read helpers
// perform the modular arithmetic with explicit wrap branches in both
// directions (an unguarded subtraction would produce a negative index at the
// seam).
type ring struct {
	data []byte
}

func newRing(capacity int) ring {
	return ring{data: make([]byte, capacity)}
}

func (r ring) cap() int { return len(r.data) }

// read returns the byte n slots after pos, wrapping forward at capacity.
// Used to copy a packet out in arrival order from its recorded start.
func (r ring) read(pos, n int) byte {
	if pos+n >= len(r.data) {
		return r.data[pos+n-len(r.data)]
	}
	return r.data[pos+n]
}

// backRead returns the byte n slots before pos, wrapping backward at
// capacity. Used to read the status and length bytes that sit just behind a
// detected marker.
func (r ring) backRead(pos, n int) byte {
	if pos >= n {
		return r.data[pos-n]
	}
	return r.data[len(r.data)+pos-n]
}
