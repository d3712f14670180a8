package frame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	var data [DataSize]byte
	copy(data[:], []byte("abcdefghij"))
	f := New(3, 6, 0x1234, data)

	wire := f.Serialize()
	if wire[Size-1] != 0x00 {
		t.Fatalf("reserved byte 15 = 0x%02x, want 0x00", wire[Size-1])
	}

	got, err := Deserialize(wire[:])
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReservedByteRoundTrip(t *testing.T) {
	var data [DataSize]byte
	f := New(0, 9, 0xABCD, data)
	f.Reserved = 7

	wire := f.Serialize()
	if wire[Size-1] != 7 {
		t.Fatalf("reserved byte 15 = 0x%02x, want 0x07", wire[Size-1])
	}
	got, err := Deserialize(wire[:])
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.Reserved != 7 {
		t.Fatalf("Reserved = %d, want 7", got.Reserved)
	}
}

func TestDeserializeShortBuffer(t *testing.T) {
	if _, err := Deserialize(make([]byte, Size-1)); err != ErrShortBuffer {
		t.Fatalf("got %v, want ErrShortBuffer", err)
	}
}

func TestValidChecksumAndIndex(t *testing.T) {
	var data [DataSize]byte
	f := New(0, 5, 1, data)
	if !f.Valid() {
		t.Fatal("freshly constructed frame should be valid")
	}
	f.Checksum ^= 0xFF
	if f.Valid() {
		t.Fatal("corrupted checksum should be invalid")
	}
	f.Checksum = New(0, 5, 1, data).Checksum
	f.FrameIndex = f.TotalFrames
	if f.Valid() {
		t.Fatal("frameIndex == totalFrames should be invalid")
	}
}
