package mhash

import (
	"io"

	"xdao.co/mhash/internal/storage"
	"xdao.co/mhash/varint"
)

// Read decodes one multihash from a byte stream, using DefaultCapacity as
// the digest capacity bound. It consumes exactly the encoded bytes, so a
// multihash can be embedded in a larger framed protocol.
func Read(r io.Reader) (Multihash, error) {
	return ReadWithCapacity(r, DefaultCapacity)
}

// ReadWithCapacity decodes one multihash from a byte stream. Declared
// digest lengths above capacity or MaxDigestSize fail with a KindSize
// error before any digest byte is read; malformed varints fail with
// KindVarint and stream failures with KindIO.
func ReadWithCapacity(r io.Reader, capacity int) (Multihash, error) {
	code, err := readUvarint(r, "code")
	if err != nil {
		return Multihash{}, err
	}
	size, err := readUvarint(r, "length")
	if err != nil {
		return Multihash{}, err
	}
	if capacity > MaxDigestSize {
		capacity = MaxDigestSize
	}
	if capacity < 0 || size > uint64(capacity) {
		return Multihash{}, NewSizeError(size)
	}
	digest := make([]byte, size)
	if _, err := io.ReadFull(r, digest); err != nil {
		return Multihash{}, wrapError(KindIO, "short digest read", err)
	}
	var codeBuf, sizeBuf [varint.MaxLen64]byte
	cn := varint.PutUvarint(codeBuf[:], code)
	sn := varint.PutUvarint(sizeBuf[:], size)
	return Multihash{storage: storage.FromSlices(codeBuf[:cn], sizeBuf[:sn], digest)}, nil
}

func readUvarint(r io.Reader, field string) (uint64, error) {
	v, err := varint.ReadUvarint(r)
	switch err {
	case nil:
		return v, nil
	case varint.ErrInsufficient, varint.ErrOverflow:
		return 0, wrapError(KindVarint, "bad "+field+" varint", err)
	default:
		return 0, wrapError(KindIO, "read "+field+" varint", err)
	}
}

// WriteTo writes the canonical encoding to w. It implements io.WriterTo;
// the output is always varint(code) || varint(size) || digest with no
// padding.
func (m Multihash) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.storage.Bytes())
	if err != nil {
		return int64(n), wrapError(KindIO, "write multihash", err)
	}
	return int64(n), nil
}
