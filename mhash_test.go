package mhash_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"xdao.co/mhash"
)

// sha2-256("hello world"), encoded: code 0x12, length 0x20, 32 digest bytes.
const helloWorldHex = "1220b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

func helloWorldBytes(t *testing.T) []byte {
	t.Helper()
	b, err := hex.DecodeString(helloWorldHex)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestFromBytesFixture(t *testing.T) {
	raw := helloWorldBytes(t)
	m, err := mhash.FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if m.Code() != 0x12 {
		t.Errorf("Code() = %#x, want 0x12", m.Code())
	}
	if m.Size() != 32 {
		t.Errorf("Size() = %d, want 32", m.Size())
	}
	if !bytes.Equal(m.Digest(), raw[2:]) {
		t.Errorf("Digest() = %x, want %x", m.Digest(), raw[2:])
	}
	if !bytes.Equal(m.Bytes(), raw) {
		t.Errorf("Bytes() = %x, want %x", m.Bytes(), raw)
	}
	if m.EncodedLen() != len(raw) {
		t.Errorf("EncodedLen() = %d, want %d", m.EncodedLen(), len(raw))
	}
	if m.String() != helloWorldHex {
		t.Errorf("String() = %s", m.String())
	}
}

func TestWrapIdentityFixture(t *testing.T) {
	m, err := mhash.Wrap(0x00, []byte("foobar"))
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if !bytes.Equal(m.Digest(), []byte("foobar")) {
		t.Fatalf("Digest() = %q", m.Digest())
	}
	if m.Code() != 0 || m.Size() != 6 {
		t.Fatalf("code=%d size=%d", m.Code(), m.Size())
	}

	_, err = mhash.WrapWithCapacity(0x00, []byte("foobar"), 2)
	if err == nil {
		t.Fatal("expected error for capacity 2")
	}
	if n, ok := mhash.InvalidSize(err); !ok || n != 6 {
		t.Fatalf("InvalidSize = (%d, %v), want (6, true)", n, ok)
	}
}

func TestWrapCapacityBoundary(t *testing.T) {
	digest := bytes.Repeat([]byte{0xab}, 64)
	if _, err := mhash.Wrap(0x13, digest); err != nil {
		t.Fatalf("64 bytes at DefaultCapacity: %v", err)
	}
	if _, err := mhash.Wrap(0x13, append(digest, 0xab)); err == nil {
		t.Fatal("65 bytes at DefaultCapacity: expected error")
	}
	// Capacity requests above MaxDigestSize clamp to it.
	if _, err := mhash.WrapWithCapacity(0x13, bytes.Repeat([]byte{1}, 300), 1000); err == nil {
		t.Fatal("300-byte digest: expected error")
	} else if n, ok := mhash.InvalidSize(err); !ok || n != 300 {
		t.Fatalf("InvalidSize = (%d, %v), want (300, true)", n, ok)
	}
	if _, err := mhash.WrapWithCapacity(0x13, bytes.Repeat([]byte{1}, 255), 255); err != nil {
		t.Fatalf("255-byte digest at capacity 255: %v", err)
	}
}

func TestRoundTripBytes(t *testing.T) {
	tests := []struct {
		code   uint64
		digest []byte
	}{
		{0x00, nil},
		{0x00, []byte("foobar")},
		{0x11, bytes.Repeat([]byte{0x5a}, 20)},
		{0x12, bytes.Repeat([]byte{0x01}, 32)},
		{0x13, bytes.Repeat([]byte{0x02}, 64)}, // past the inline bound
		{0xb240, bytes.Repeat([]byte{0x03}, 64)},
	}
	for _, tt := range tests {
		m, err := mhash.Wrap(tt.code, tt.digest)
		if err != nil {
			t.Fatalf("Wrap(%#x): %v", tt.code, err)
		}
		back, err := mhash.FromBytes(m.Bytes())
		if err != nil {
			t.Fatalf("FromBytes(%#x): %v", tt.code, err)
		}
		if !m.Equal(back) {
			t.Fatalf("round trip changed value for code %#x", tt.code)
		}
		if back.Code() != tt.code || !bytes.Equal(back.Digest(), tt.digest) {
			t.Fatalf("decoded code=%#x digest=%x", back.Code(), back.Digest())
		}
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		kind mhash.Kind
	}{
		{"empty", nil, mhash.KindWire},
		{"lone continuation byte", []byte{0x80}, mhash.KindWire},
		{"code only", []byte{0x12}, mhash.KindWire},
		{"truncated length varint", []byte{0x12, 0x80}, mhash.KindWire},
		{"missing digest bytes", []byte{0x12, 0x20, 0x01}, mhash.KindWire},
		{"trailing bytes", append([]byte{0x00, 0x01, 0xaa}, 0xbb), mhash.KindWire},
		{"declared length above ceiling", append([]byte{0x12, 0x80, 0x02}, make([]byte, 256)...), mhash.KindSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mhash.FromBytes(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *mhash.Error
			if !errors.As(err, &e) {
				t.Fatalf("expected structured *mhash.Error, got %T", err)
			}
			if e.Kind != tt.kind {
				t.Fatalf("Kind = %s, want %s", e.Kind, tt.kind)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	m, err := mhash.FromBytes(helloWorldBytes(t))
	if err != nil {
		t.Fatal(err)
	}

	short := m.Truncate(20)
	if short.Size() != 20 {
		t.Fatalf("Size() = %d, want 20", short.Size())
	}
	if short.Code() != m.Code() {
		t.Fatalf("truncate changed code to %#x", short.Code())
	}
	if !bytes.Equal(short.Digest(), m.Digest()[:20]) {
		t.Fatal("truncated digest is not a prefix")
	}

	// Truncating up is a no-op.
	if up := m.Truncate(100); !up.Equal(m) {
		t.Fatal("truncate above size changed the value")
	}
	// Truncating twice equals truncating once with the smaller bound.
	if !short.Truncate(20).Equal(short) || !m.Truncate(25).Truncate(20).Equal(short) {
		t.Fatal("truncation is not idempotent")
	}
	if zero := m.Truncate(0); zero.Size() != 0 || zero.Code() != m.Code() {
		t.Fatal("truncate to zero")
	}
	// The original is unchanged.
	if m.Size() != 32 {
		t.Fatal("truncate mutated its receiver")
	}
}

func TestResize(t *testing.T) {
	m, err := mhash.FromBytes(helloWorldBytes(t))
	if err != nil {
		t.Fatal(err)
	}
	if got, err := m.Resize(32); err != nil || !got.Equal(m) {
		t.Fatalf("Resize(32) = %v, %v", got, err)
	}
	if got, err := m.Resize(100); err != nil || !got.Equal(m) {
		t.Fatalf("Resize(100) = %v, %v", got, err)
	}
	if _, err := m.Resize(20); err == nil {
		t.Fatal("Resize(20) should fail for a 32-byte digest")
	} else if n, ok := mhash.InvalidSize(err); !ok || n != 32 {
		t.Fatalf("InvalidSize = (%d, %v), want (32, true)", n, ok)
	}
}

func TestEqualCompareOverEncoding(t *testing.T) {
	a, _ := mhash.Wrap(0x12, bytes.Repeat([]byte{0x01}, 32))
	b, _ := mhash.Wrap(0x12, bytes.Repeat([]byte{0x02}, 32))
	a2, _ := mhash.Wrap(0x12, bytes.Repeat([]byte{0x01}, 32))

	if !a.Equal(a2) || a.Compare(a2) != 0 {
		t.Fatal("equal values compare unequal")
	}
	if a.Equal(b) {
		t.Fatal("distinct digests compare equal")
	}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 {
		t.Fatal("ordering does not follow encoded bytes")
	}

	// Heap-backed values have the same semantics.
	big1, _ := mhash.Wrap(0x13, bytes.Repeat([]byte{0x01}, 64))
	big2, _ := mhash.Wrap(0x13, bytes.Repeat([]byte{0x01}, 64))
	if !big1.Equal(big2) || big1.Compare(big2) != 0 {
		t.Fatal("heap-backed equal values compare unequal")
	}
}

func TestRef(t *testing.T) {
	raw := helloWorldBytes(t)
	ref, err := mhash.FromSlice(raw)
	if err != nil {
		t.Fatal(err)
	}
	if ref.Code() != 0x12 || ref.Size() != 32 || !bytes.Equal(ref.Digest(), raw[2:]) {
		t.Fatal("ref accessors disagree with fixture")
	}
	owned := ref.ToOwned()
	if !bytes.Equal(owned.Bytes(), raw) {
		t.Fatal("ToOwned changed the encoding")
	}
	if !owned.Ref().Equal(ref) {
		t.Fatal("Ref round trip")
	}
}

func TestBinaryMarshaler(t *testing.T) {
	m, err := mhash.Wrap(0xb220, bytes.Repeat([]byte{0x07}, 32))
	if err != nil {
		t.Fatal(err)
	}
	enc, err := m.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back mhash.Multihash
	if err := back.UnmarshalBinary(enc); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(m) {
		t.Fatal("binary round trip changed value")
	}
	if err := back.UnmarshalBinary([]byte{0x80}); err == nil {
		t.Fatal("UnmarshalBinary accepted garbage")
	}
}

func TestConcurrentSharing(t *testing.T) {
	m, err := mhash.Wrap(0x13, bytes.Repeat([]byte{0x09}, 64))
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				copied := m
				if copied.Code() != 0x13 || copied.Size() != 64 {
					t.Error("concurrent read saw a torn value")
					return
				}
				_ = copied.Digest()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
