// Package varint implements the unsigned LEB128 variable-length integer
// encoding used by the multihash wire format: 7 data bits per byte, least
// significant group first, high bit set on every byte except the last.
package varint

import (
	"errors"
	"io"
)

// MaxLen64 is the maximum number of bytes a 64-bit value occupies.
const MaxLen64 = 10

var (
	// ErrInsufficient reports input that ends in the middle of a varint.
	ErrInsufficient = errors.New("varint: insufficient bytes")

	// ErrOverflow reports a varint that does not fit in 64 bits.
	ErrOverflow = errors.New("varint: value overflows 64 bits")
)

// Len returns the encoded length of x in bytes.
func Len(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// PutUvarint encodes x into buf and returns the number of bytes written.
// It panics if buf is too small; callers size buf with Len or MaxLen64.
func PutUvarint(buf []byte, x uint64) int {
	i := 0
	for x >= 0x80 {
		buf[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	buf[i] = byte(x)
	return i + 1
}

// AppendUvarint appends the encoding of x to dst and returns the extended slice.
func AppendUvarint(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// Uvarint decodes a varint from the front of buf. It returns the value and
// the unconsumed remainder of buf.
func Uvarint(buf []byte) (uint64, []byte, error) {
	var x uint64
	var s uint
	for i, b := range buf {
		if i == MaxLen64 {
			return 0, nil, ErrOverflow
		}
		if b < 0x80 {
			if i == MaxLen64-1 && b > 1 {
				return 0, nil, ErrOverflow
			}
			return x | uint64(b)<<s, buf[i+1:], nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, nil, ErrInsufficient
}

// ReadUvarint decodes a varint from r, reading one byte at a time.
// A stream that ends mid-varint yields ErrInsufficient; a stream that ends
// before the first byte yields io.EOF unchanged so callers can detect a
// clean end of input.
func ReadUvarint(r io.Reader) (uint64, error) {
	var x uint64
	var s uint
	var one [1]byte
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, one[:]); err != nil {
			if i > 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
				return 0, ErrInsufficient
			}
			return 0, err
		}
		b := one[0]
		if i == MaxLen64 {
			return 0, ErrOverflow
		}
		if b < 0x80 {
			if i == MaxLen64-1 && b > 1 {
				return 0, ErrOverflow
			}
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
}
