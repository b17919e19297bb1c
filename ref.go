package mhash

import (
	"bytes"
	"encoding/hex"

	"xdao.co/mhash/internal/storage"
	"xdao.co/mhash/varint"
)

// Ref is a borrowed, non-owning view of an encoded multihash held in
// foreign memory. It offers the same accessors as Multihash but shares the
// underlying bytes instead of owning them; ToOwned promotes it to an owned
// value by copying.
//
// Validity is established on construction, so accessors never fail.
type Ref struct {
	bytes []byte
}

// FromSlice validates b as an encoded multihash and returns a view over it.
// The input must be non-empty, both varints must parse, and the byte count
// after the length field must equal the declared length exactly. Any
// violation yields a KindWire error.
//
// No capacity bound applies here beyond the absolute MaxDigestSize
// ceiling: the view accepts any well-formed encoding, and algorithm
// capacity is enforced when the digest is put to use.
func FromSlice(b []byte) (Ref, error) {
	if len(b) == 0 {
		return Ref{}, newWireError("empty input")
	}
	_, rest, err := varint.Uvarint(b)
	if err != nil {
		return Ref{}, wrapError(KindWire, "bad code varint", err)
	}
	length, rest, err := varint.Uvarint(rest)
	if err != nil {
		return Ref{}, wrapError(KindWire, "bad length varint", err)
	}
	if length > MaxDigestSize {
		return Ref{}, NewSizeError(length)
	}
	if uint64(len(rest)) != length {
		return Ref{}, newWireError("digest length does not match declared length")
	}
	return Ref{bytes: b}, nil
}

// Bytes returns the full encoding the view was created over.
func (r Ref) Bytes() []byte {
	return r.bytes
}

// Code returns the algorithm code from the leading varint.
func (r Ref) Code() uint64 {
	code, _, _ := varint.Uvarint(r.bytes)
	return code
}

// Size returns the digest length in bytes.
func (r Ref) Size() uint8 {
	_, rest, _ := varint.Uvarint(r.bytes)
	size, _, _ := varint.Uvarint(rest)
	return uint8(size)
}

// Digest returns the digest bytes following both varints, without copying.
func (r Ref) Digest() []byte {
	_, rest, _ := varint.Uvarint(r.bytes)
	_, rest, _ = varint.Uvarint(rest)
	return rest
}

// ToOwned copies the viewed bytes into an owned Multihash. This is the one
// Ref operation that allocates (for encodings past the inline bound).
func (r Ref) ToOwned() Multihash {
	return Multihash{storage: storage.FromSlice(r.bytes)}
}

// Equal reports whether two views see identical encodings.
func (r Ref) Equal(other Ref) bool {
	return bytes.Equal(r.bytes, other.bytes)
}

// Compare orders views by their encodings.
func (r Ref) Compare(other Ref) int {
	return bytes.Compare(r.bytes, other.bytes)
}

// String returns the hexadecimal form of the encoding.
func (r Ref) String() string {
	return hex.EncodeToString(r.bytes)
}
