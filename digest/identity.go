package digest

import "hash"

// NewIdentity returns the identity pseudo-hash: a hash.Hash whose sum is
// the verbatim input. It is used to inline small payloads into a multihash
// instead of hashing them. Callers must distinguish this from a truncation
// policy: the payload is user data, not a digest.
//
// Length limits are not enforced here; wrapping the sum into a container
// applies the capacity bound and surfaces a KindSize error for oversized
// payloads.
func NewIdentity() hash.Hash {
	return &identityHasher{}
}

type identityHasher struct {
	buf []byte
}

func (h *identityHasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

func (h *identityHasher) Sum(b []byte) []byte {
	return append(b, h.buf...)
}

func (h *identityHasher) Reset() {
	h.buf = h.buf[:0]
}

// Size reports the current payload length; it grows with Write.
func (h *identityHasher) Size() int {
	return len(h.buf)
}

func (h *identityHasher) BlockSize() int {
	return 1
}
