package mhash

import (
	"bytes"
	"encoding/hex"

	"xdao.co/mhash/internal/storage"
	"xdao.co/mhash/varint"
)

const (
	// DefaultCapacity is the digest capacity bound used by Wrap, Read and
	// UnmarshalBinary. It is the allocation size of the default code table:
	// large enough for every 512-bit hash family and for inlined identity
	// payloads of the same size.
	DefaultCapacity = 64

	// MaxDigestSize is the absolute ceiling on a digest length. The wire
	// format encodes the length as a varint, but lengths above one byte's
	// worth are rejected everywhere for interoperability.
	MaxDigestSize = 255
)

// Multihash is a validated, immutable multihash that owns its bytes.
//
// The capacity bound is enforced when a Multihash is constructed, not
// carried in the value: Go offers no compile-time array-size parameter, so
// the check the original design performed at the type level happens once at
// Wrap/Read time instead. Resize re-validates an existing value against a
// different bound.
type Multihash struct {
	storage storage.Storage
}

// Wrap packages a raw digest with its algorithm code, using DefaultCapacity
// as the digest capacity bound.
func Wrap(code uint64, digest []byte) (Multihash, error) {
	return WrapWithCapacity(code, digest, DefaultCapacity)
}

// WrapWithCapacity packages a raw digest with its algorithm code. It fails
// with a KindSize error if the digest is longer than capacity or than
// MaxDigestSize. The digest bytes are copied.
func WrapWithCapacity(code uint64, digest []byte, capacity int) (Multihash, error) {
	if capacity > MaxDigestSize {
		capacity = MaxDigestSize
	}
	if len(digest) > capacity {
		return Multihash{}, NewSizeError(uint64(len(digest)))
	}
	var codeBuf, sizeBuf [varint.MaxLen64]byte
	cn := varint.PutUvarint(codeBuf[:], code)
	sn := varint.PutUvarint(sizeBuf[:], uint64(len(digest)))
	return Multihash{storage: storage.FromSlices(codeBuf[:cn], sizeBuf[:sn], digest)}, nil
}

// FromBytes parses an encoded multihash, copying it into an owned value.
// The input must contain exactly one multihash: both varints must parse and
// the remaining byte count must equal the declared length.
func FromBytes(b []byte) (Multihash, error) {
	ref, err := FromSlice(b)
	if err != nil {
		return Multihash{}, err
	}
	return ref.ToOwned(), nil
}

// Bytes returns the canonical encoding. The returned slice must not be
// modified.
func (m Multihash) Bytes() []byte {
	return m.storage.Bytes()
}

// Ref returns a borrowed view of this multihash without allocating.
// The view shares m's immutable bytes.
func (m Multihash) Ref() Ref {
	return Ref{bytes: m.storage.Bytes()}
}

// Code returns the algorithm code from the leading varint.
func (m Multihash) Code() uint64 {
	return m.Ref().Code()
}

// Size returns the digest length in bytes.
func (m Multihash) Size() uint8 {
	return m.Ref().Size()
}

// Digest returns the raw digest bytes, without copying. The returned slice
// must not be modified.
func (m Multihash) Digest() []byte {
	return m.Ref().Digest()
}

// EncodedLen returns the length of the canonical encoding in bytes.
func (m Multihash) EncodedLen() int {
	return len(m.storage.Bytes())
}

// Truncate returns a multihash whose digest is clamped to at most size
// bytes. The code is preserved. Truncating to the current size or larger
// returns m unchanged; truncation never fails.
func (m Multihash) Truncate(size int) Multihash {
	if size < 0 {
		size = 0
	}
	digest := m.Digest()
	if size >= len(digest) {
		return m
	}
	var codeBuf, sizeBuf [varint.MaxLen64]byte
	cn := varint.PutUvarint(codeBuf[:], m.Code())
	sn := varint.PutUvarint(sizeBuf[:], uint64(size))
	return Multihash{storage: storage.FromSlices(codeBuf[:cn], sizeBuf[:sn], digest[:size])}
}

// Resize re-validates m against a different capacity bound. It fails with a
// KindSize error if the current digest is larger than capacity. Resizing
// never re-hashes and never changes the encoding.
func (m Multihash) Resize(capacity int) (Multihash, error) {
	size := uint64(m.Size())
	if capacity < 0 || size > uint64(capacity) {
		return Multihash{}, NewSizeError(size)
	}
	return m, nil
}

// Equal reports whether two multihashes have identical canonical encodings.
func (m Multihash) Equal(other Multihash) bool {
	return bytes.Equal(m.storage.Bytes(), other.storage.Bytes())
}

// Compare orders multihashes by their canonical encodings.
func (m Multihash) Compare(other Multihash) int {
	return bytes.Compare(m.storage.Bytes(), other.storage.Bytes())
}

// String returns the hexadecimal form of the canonical encoding.
func (m Multihash) String() string {
	return hex.EncodeToString(m.storage.Bytes())
}

// MarshalBinary returns a copy of the canonical encoding.
func (m Multihash) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), m.storage.Bytes()...), nil
}

// UnmarshalBinary parses and validates an encoded multihash, rejecting
// digests above DefaultCapacity.
func (m *Multihash) UnmarshalBinary(b []byte) error {
	ref, err := FromSlice(b)
	if err != nil {
		return err
	}
	if size := uint64(ref.Size()); size > DefaultCapacity {
		return NewSizeError(size)
	}
	m.storage = storage.FromSlice(b)
	return nil
}
