package codetable

import (
	"io"

	"xdao.co/mhash"
)

// Digest hashes input with the algorithm and wraps the result into a
// multihash. For the identity pseudo-hash the "digest" is the verbatim
// input, and payloads above the table capacity fail with a KindSize error
// instead of being stored.
func (c Code) Digest(input []byte) (mhash.Multihash, error) {
	e, ok := Lookup(c)
	if !ok {
		return mhash.Multihash{}, mhash.NewCodeError(uint64(c))
	}
	h := e.New()
	h.Write(input)
	return wrapSum(e, h.Sum(nil))
}

// Wrap packages an already computed digest under the algorithm's code,
// validating its length against the table capacity. Truncated digests are
// accepted; the caller is responsible for having truncated them.
func (c Code) Wrap(digestBytes []byte) (mhash.Multihash, error) {
	e, ok := Lookup(c)
	if !ok {
		return mhash.Multihash{}, mhash.NewCodeError(uint64(c))
	}
	return mhash.WrapWithCapacity(uint64(c), digestBytes, int(e.Size))
}

// Sum hashes input with the algorithm identified by c.
func Sum(c Code, input []byte) (mhash.Multihash, error) {
	return c.Digest(input)
}

// SumReader hashes everything read from r with the algorithm identified by
// c. Stream failures surface as KindIO errors.
func SumReader(c Code, r io.Reader) (mhash.Multihash, error) {
	e, ok := Lookup(c)
	if !ok {
		return mhash.Multihash{}, mhash.NewCodeError(uint64(c))
	}
	h := e.New()
	if _, err := io.Copy(h, r); err != nil {
		return mhash.Multihash{}, &mhash.Error{Kind: mhash.KindIO, Message: "mhash: hash stream", Cause: err}
	}
	return wrapSum(e, h.Sum(nil))
}

func wrapSum(e Entry, sum []byte) (mhash.Multihash, error) {
	// Identity payloads can exceed the capacity; fixed hashers cannot.
	if len(sum) > int(e.Size) {
		return mhash.Multihash{}, mhash.NewSizeError(uint64(len(sum)))
	}
	return mhash.WrapWithCapacity(uint64(e.Code), sum, int(e.Size))
}
