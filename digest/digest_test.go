package digest

import (
	"bytes"
	"testing"

	"xdao.co/mhash"
	"xdao.co/mhash/varint"
)

func TestWrap(t *testing.T) {
	b := bytes.Repeat([]byte{0xaa}, 32)
	d, err := Wrap(b, 32)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if d.Size() != 32 || d.Capacity() != 32 {
		t.Fatalf("size=%d capacity=%d", d.Size(), d.Capacity())
	}
	if !bytes.Equal(d.Bytes(), b) {
		t.Fatalf("Bytes() = %x", d.Bytes())
	}
}

func TestWrapShorterThanCapacity(t *testing.T) {
	d, err := Wrap([]byte("foobar"), MaxSize)
	if err != nil {
		t.Fatal(err)
	}
	// Bytes returns the actual size, not the padded capacity.
	if got := d.Bytes(); string(got) != "foobar" {
		t.Fatalf("Bytes() = %q", got)
	}
	if d.Size() != 6 || d.Capacity() != MaxSize {
		t.Fatalf("size=%d capacity=%d", d.Size(), d.Capacity())
	}
}

func TestWrapRejections(t *testing.T) {
	if _, err := Wrap(bytes.Repeat([]byte{1}, 33), 32); err == nil {
		t.Fatal("expected error for 33 bytes at capacity 32")
	} else if n, ok := mhash.InvalidSize(err); !ok || n != 33 {
		t.Fatalf("InvalidSize = (%d, %v)", n, ok)
	}
	if _, err := Wrap(nil, MaxSize+1); !mhash.IsKind(err, mhash.KindSize) {
		t.Fatalf("capacity above MaxSize: err = %v", err)
	}
	if _, err := Wrap(nil, -1); !mhash.IsKind(err, mhash.KindSize) {
		t.Fatalf("negative capacity: err = %v", err)
	}
}

func TestZeroValue(t *testing.T) {
	var d Digest
	if d.Size() != 0 || d.Capacity() != 0 || len(d.Bytes()) != 0 {
		t.Fatal("zero value is not the empty digest")
	}
}

func TestFromReader(t *testing.T) {
	payload := bytes.Repeat([]byte{0x5c}, 20)
	in := append(varint.AppendUvarint(nil, 20), payload...)
	d, err := FromReader(bytes.NewReader(in), 32)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if !bytes.Equal(d.Bytes(), payload) {
		t.Fatalf("Bytes() = %x", d.Bytes())
	}
}

func TestFromReaderRejections(t *testing.T) {
	t.Run("length above capacity", func(t *testing.T) {
		in := append(varint.AppendUvarint(nil, 33), bytes.Repeat([]byte{1}, 33)...)
		_, err := FromReader(bytes.NewReader(in), 32)
		if n, ok := mhash.InvalidSize(err); !ok || n != 33 {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("truncated varint", func(t *testing.T) {
		_, err := FromReader(bytes.NewReader([]byte{0x80}), 32)
		if !mhash.IsKind(err, mhash.KindVarint) {
			t.Fatalf("err = %v, want KindVarint", err)
		}
	})
	t.Run("short payload", func(t *testing.T) {
		in := varint.AppendUvarint(nil, 10)
		in = append(in, 0x01, 0x02)
		_, err := FromReader(bytes.NewReader(in), 32)
		if !mhash.IsKind(err, mhash.KindIO) {
			t.Fatalf("err = %v, want KindIO", err)
		}
	})
}

func TestTruncate(t *testing.T) {
	d, err := Wrap(bytes.Repeat([]byte{0x11}, 32), 32)
	if err != nil {
		t.Fatal(err)
	}
	short := d.Truncate(20)
	if short.Size() != 20 || short.Capacity() != 32 {
		t.Fatalf("size=%d capacity=%d", short.Size(), short.Capacity())
	}
	if !bytes.Equal(short.Bytes(), d.Bytes()[:20]) {
		t.Fatal("truncated bytes are not a prefix")
	}
	if up := d.Truncate(100); up.Size() != 32 {
		t.Fatal("truncate above size changed the digest")
	}
	// Dropped bytes are zeroed so equal digests stay comparable.
	if short != d.Truncate(25).Truncate(20) {
		t.Fatal("truncation is not canonical")
	}
}
