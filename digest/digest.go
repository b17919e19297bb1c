// Package digest provides a fixed-capacity buffer for raw hash output.
//
// A Digest holds up to MaxSize bytes inline, with a per-value capacity
// bound chosen at construction and an actual size that may be smaller: the
// identity pseudo-hash and truncated digests legitimately carry fewer bytes
// than their algorithm's capacity. Bytes returns exactly the actual size.
//
// Hash algorithm implementations are expressed as the standard library's
// hash.Hash; the codetable package ties codes to constructors.
package digest

import (
	"io"

	"xdao.co/mhash"
	"xdao.co/mhash/varint"
)

// MaxSize is the largest digest a Digest can hold. It matches the
// allocation size of the default code table: every registered algorithm
// produces at most 64 bytes.
const MaxSize = 64

// Digest is an immutable fixed-capacity digest buffer. The zero value is an
// empty digest with zero capacity.
type Digest struct {
	capacity uint8
	size     uint8
	buf      [MaxSize]byte
}

// Wrap copies b into a Digest with the given capacity bound. It fails with
// a KindSize error if b is longer than capacity, or if capacity itself
// exceeds MaxSize.
func Wrap(b []byte, capacity int) (Digest, error) {
	if capacity < 0 || capacity > MaxSize {
		return Digest{}, mhash.NewSizeError(uint64(capacity))
	}
	if len(b) > capacity {
		return Digest{}, mhash.NewSizeError(uint64(len(b)))
	}
	d := Digest{capacity: uint8(capacity), size: uint8(len(b))}
	copy(d.buf[:], b)
	return d, nil
}

// FromReader reads a length-prefixed digest from r: a varint length
// followed by exactly that many bytes. Declared lengths above capacity are
// rejected with a KindSize error before any digest byte is read.
func FromReader(r io.Reader, capacity int) (Digest, error) {
	if capacity < 0 || capacity > MaxSize {
		return Digest{}, mhash.NewSizeError(uint64(capacity))
	}
	length, err := varint.ReadUvarint(r)
	switch err {
	case nil:
	case varint.ErrInsufficient, varint.ErrOverflow:
		return Digest{}, &mhash.Error{Kind: mhash.KindVarint, Message: "mhash: bad digest length varint", Cause: err}
	default:
		return Digest{}, &mhash.Error{Kind: mhash.KindIO, Message: "mhash: read digest length", Cause: err}
	}
	if length > uint64(capacity) {
		return Digest{}, mhash.NewSizeError(length)
	}
	d := Digest{capacity: uint8(capacity), size: uint8(length)}
	if _, err := io.ReadFull(r, d.buf[:length]); err != nil {
		return Digest{}, &mhash.Error{Kind: mhash.KindIO, Message: "mhash: short digest read", Cause: err}
	}
	return d, nil
}

// Bytes returns exactly the actual digest bytes, not the full capacity.
// The returned slice aliases the receiver's buffer and must not be modified.
func (d *Digest) Bytes() []byte {
	return d.buf[:d.size]
}

// Size returns the actual digest length in bytes.
func (d Digest) Size() uint8 {
	return d.size
}

// Capacity returns the capacity bound the Digest was constructed with.
func (d Digest) Capacity() uint8 {
	return d.capacity
}

// Truncate returns a digest clamped to at most size bytes, keeping the
// capacity bound. Truncation never fails.
func (d Digest) Truncate(size int) Digest {
	if size < 0 {
		size = 0
	}
	if size >= int(d.size) {
		return d
	}
	out := d
	out.size = uint8(size)
	for i := size; i < int(d.size); i++ {
		out.buf[i] = 0
	}
	return out
}
