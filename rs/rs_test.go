package rs

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRoundTripNoErasures(t *testing.T) {
	data := []byte("Hello Aurora!")
	for _, nsym := range []int{4, 8, 16} {
		enc := Encode(data, nsym)
		got, err := Decode(enc, len(data), nsym, nil)
		if err != nil {
			t.Fatalf("nsym=%d: Decode: %v", nsym, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("nsym=%d: got %q, want %q", nsym, got, data)
		}
	}
}

func TestErasureCorrection(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	nsym := 10
	enc := Encode(data, nsym)
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := len(enc)
		perm := r.Perm(n)
		erasures := perm[:nsym]
		corrupted := append([]byte(nil), enc...)
		for _, p := range erasures {
			corrupted[p] = 0
		}
		got, err := Decode(corrupted, len(data), nsym, erasures)
		if err != nil {
			t.Fatalf("trial %d: Decode: %v", trial, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("trial %d: got %q, want %q", trial, got, data)
		}
	}
}

func TestTooManyErasures(t *testing.T) {
	data := []byte("abc")
	nsym := 4
	enc := Encode(data, nsym)
	erasures := []int{0, 1, 2, 3, 4}
	if _, err := Decode(enc, len(data), nsym, erasures); err != ErrTooManyErasures {
		t.Fatalf("got %v, want ErrTooManyErasures", err)
	}
}

func TestEncodeSystematicPrefix(t *testing.T) {
	data := []byte{0x41, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	enc := Encode(data, 4)
	if !bytes.Equal(enc[:len(data)], data) {
		t.Fatalf("systematic prefix mismatch: got %v", enc[:len(data)])
	}
	if len(enc) != len(data)+4 {
		t.Fatalf("unexpected encoded length %d", len(enc))
	}
}
