// Package codetable maps multihash algorithm codes to hash implementations.
//
// The table is a closed dispatch surface: entries register at package init
// from a generated table (see internal/tools/codetable_gen), and lookups on
// unknown codes fail with a KindCode error rather than guessing. Callers
// that only need structural access to a multihash can stay at the mhash
// level and never consult the table.
package codetable

import (
	"fmt"
	"hash"
	"sort"
	"sync"

	"xdao.co/mhash"
	"xdao.co/mhash/digest"
)

// Code is a multihash algorithm code registered in the table.
type Code uint64

// Codes declared for interoperability but not registered: the pack's
// ecosystem offers no unkeyed implementation for them. Lookup fails with
// KindCode.
const (
	KECCAK_224  Code = 0x1a
	KECCAK_384  Code = 0x1c
	BLAKE2S_128 Code = 0xb250
)

// Entry describes one algorithm in the table.
//
// Size is the maximum digest size the algorithm can produce, in bytes. For
// fixed-output hashes it is the exact output size; for the identity
// pseudo-hash it is the payload capacity.
type Entry struct {
	Code Code
	Name string
	Size uint8

	// New constructs a fresh hasher instance. Instances are not safe for
	// concurrent use, but distinct instances are independent.
	New func() hash.Hash
}

var (
	mu      sync.RWMutex
	entries = map[Code]Entry{}
)

// Register adds an algorithm to the table.
func Register(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("codetable: entry %#x missing name", uint64(e.Code))
	}
	if e.New == nil {
		return fmt.Errorf("codetable: entry %q missing constructor", e.Name)
	}
	if e.Size == 0 || int(e.Size) > digest.MaxSize {
		return fmt.Errorf("codetable: entry %q size %d out of range", e.Name, e.Size)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[e.Code]; exists {
		return fmt.Errorf("codetable: code %#x already registered", uint64(e.Code))
	}
	entries[e.Code] = e
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the entry for a code.
func Lookup(c Code) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[c]
	return e, ok
}

// List returns all registered entries, sorted by code.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// FromUint64 validates a numeric code against the table. Unknown codes
// fail with a KindCode error carrying the offending value.
func FromUint64(u uint64) (Code, error) {
	if _, ok := Lookup(Code(u)); !ok {
		return 0, mhash.NewCodeError(u)
	}
	return Code(u), nil
}

// FromMultihash returns the validated algorithm code of m, or a KindCode
// error if m's code is not in the table.
func FromMultihash(m mhash.Multihash) (Code, error) {
	return FromUint64(m.Code())
}

// Uint64 returns the numeric value of the code.
func (c Code) Uint64() uint64 {
	return uint64(c)
}

// String returns the canonical algorithm name, or a hex form for codes not
// in the table.
func (c Code) String() string {
	if e, ok := Lookup(c); ok {
		return e.Name
	}
	return fmt.Sprintf("code-%#x", uint64(c))
}

// Size returns the maximum digest size of the algorithm, or zero if the
// code is not registered.
func (c Code) Size() uint8 {
	e, ok := Lookup(c)
	if !ok {
		return 0
	}
	return e.Size
}

// Hasher returns a fresh hasher instance for the algorithm.
func (c Code) Hasher() (hash.Hash, error) {
	e, ok := Lookup(c)
	if !ok {
		return nil, mhash.NewCodeError(uint64(c))
	}
	return e.New(), nil
}
