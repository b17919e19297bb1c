// Package mhash implements the multihash container: a self-describing hash
// that tags a digest with the numeric code of the algorithm that produced it
// and the digest's length in bytes.
//
// The wire format is
//
//	varint(code) || varint(length) || digest
//
// with both integers in unsigned LEB128 form and the digest carried verbatim,
// unpadded and unterminated. The length field is a full varint on the wire,
// but this implementation rejects decoded lengths above 255 bytes, matching
// the practical one-byte ceiling used across multihash deployments.
//
// Multihash values are immutable once constructed and safe to share across
// goroutines. Encodings up to 38 bytes, which covers every 256-bit hash
// family, are stored inline without heap allocation. Equality, ordering and
// hashing are defined over the canonical encoded bytes: use Equal, Compare
// and string(m.Bytes()) (for example as a map key) rather than ==, which is
// not meaningful for heap-backed values.
//
// Hash algorithms themselves live outside this package; the codetable
// package maps numeric codes to implementations and produces containers
// from input data.
package mhash
