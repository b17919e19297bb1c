// Package storage holds the raw bytes of one encoded multihash, inline for
// small payloads and on the heap for everything else.
package storage

// MaxInline is the largest payload stored without a heap allocation.
//
// The common 256-bit hash families encode to 34 bytes (one byte of code, one
// of length, 32 of digest); 38 leaves room for multi-byte codes while keeping
// the struct compact. Payloads of any other length up to 38 are inline too,
// so the choice of representation is a pure function of the payload length.
const MaxInline = 38

// Storage is a write-once byte buffer. The zero value is an empty payload.
//
// The heap slice is set only when the payload exceeds MaxInline, which keeps
// the representation canonical: equal payloads always pick the same variant.
// Once constructed a Storage is never mutated, so plain struct copies share
// the heap slice safely across goroutines.
type Storage struct {
	size   uint8
	inline [MaxInline]byte
	heap   []byte
}

// FromSlice copies b into a new Storage.
func FromSlice(b []byte) Storage {
	var s Storage
	if len(b) <= MaxInline {
		s.size = uint8(len(b))
		copy(s.inline[:], b)
		return s
	}
	s.heap = append([]byte(nil), b...)
	return s
}

// FromSlices concatenates parts into a new Storage. On the inline path the
// parts are copied directly into place, with no intermediate buffer.
func FromSlices(parts ...[]byte) Storage {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	var s Storage
	if n <= MaxInline {
		s.size = uint8(n)
		off := 0
		for _, p := range parts {
			off += copy(s.inline[off:], p)
		}
		return s
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	s.heap = buf
	return s
}

// Bytes returns the logical payload, exactly as it was given.
//
// The returned slice aliases the Storage and must not be modified.
func (s *Storage) Bytes() []byte {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.size]
}

// Inline reports whether the payload is stored inline.
func (s *Storage) Inline() bool {
	return s.heap == nil
}
