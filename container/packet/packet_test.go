package packet

import (
	"testing"

	"github.com/novasignal/aurora/config"
)

func TestEncodeLayoutSingleByte(t *testing.T) {
	cfg := config.DefaultPacket()
	p, err := encodeWithSequenceID("A", cfg, 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if p.DataFrames != 1 {
		t.Fatalf("DataFrames = %d, want 1", p.DataFrames)
	}
	if p.ParityFrames != cfg.MinParity {
		t.Fatalf("ParityFrames = %d, want %d", p.ParityFrames, cfg.MinParity)
	}
	if p.TotalFrames() != 5 {
		t.Fatalf("TotalFrames = %d, want 5", p.TotalFrames())
	}
	if len(p.Frames) != 5 {
		t.Fatalf("len(Frames) = %d, want 5", len(p.Frames))
	}
	if p.Frames[0].DataChunk[0] != 'A' {
		t.Fatalf("data frame payload[0] = %q, want 'A'", p.Frames[0].DataChunk[0])
	}
	for i, f := range p.Frames {
		if !f.Valid() {
			t.Fatalf("frame %d invalid", i)
		}
		if f.SequenceID != 42 {
			t.Fatalf("frame %d sequenceId = %d, want 42", i, f.SequenceID)
		}
		if int(f.TotalFrames) != 5 {
			t.Fatalf("frame %d totalFrames = %d, want 5", i, f.TotalFrames)
		}
	}
}

func TestEncodeLayoutMultiFrame(t *testing.T) {
	cfg := config.DefaultPacket()
	p, err := encodeWithSequenceID("Hello Aurora!", cfg, 7)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if p.DataFrames != 2 {
		t.Fatalf("DataFrames = %d, want 2", p.DataFrames)
	}
	if p.ParityFrames != cfg.MinParity {
		t.Fatalf("ParityFrames = %d, want %d", p.ParityFrames, cfg.MinParity)
	}
	if p.TotalFrames() != 6 {
		t.Fatalf("TotalFrames = %d, want 6", p.TotalFrames())
	}
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode("", config.DefaultPacket())
	if err != ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestRoundTripLossless(t *testing.T) {
	cfg := config.DefaultPacket()
	want := "The aurora carries a message across the sky tonight."
	p, err := encodeWithSequenceID(want, cfg, 1234)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder(nil)
	for _, f := range p.Frames {
		if !d.AddFrame(f) {
			t.Fatalf("AddFrame rejected frame %d", f.FrameIndex)
		}
	}
	if !d.CanDecode() {
		t.Fatalf("CanDecode() = false with all frames present")
	}
	got, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
}

func TestRoundTripDropsFrames(t *testing.T) {
	cfg := config.DefaultPacket()
	want := "Hello Aurora!"
	p, err := encodeWithSequenceID(want, cfg, 99)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder(nil)
	dropped := map[int]bool{1: true, 3: true}
	for i, f := range p.Frames {
		if dropped[i] {
			continue
		}
		d.AddFrame(f)
	}

	got, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode after dropping frames 1,3: %v", err)
	}
	if got != want {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
}

func TestRoundTripDropsSyncFrame(t *testing.T) {
	cfg := config.DefaultPacket()
	want := "Hello Aurora!"
	p, err := encodeWithSequenceID(want, cfg, 17)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder(nil)
	for i, f := range p.Frames {
		if i == 0 {
			continue
		}
		d.AddFrame(f)
	}

	got, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode after dropping the sync frame: %v", err)
	}
	if got != want {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
}

func TestTooManyDropsFails(t *testing.T) {
	cfg := config.DefaultPacket()
	p, err := encodeWithSequenceID("Hello Aurora!", cfg, 99)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder(nil)
	// Keep only dataFrames-1 frames: fewer than required, regardless of
	// which ones, so decode must fail.
	for i := 0; i < p.DataFrames-1; i++ {
		d.AddFrame(p.Frames[i])
	}

	_, err = d.Decode()
	if err == nil {
		t.Fatalf("Decode succeeded with insufficient frames")
	}
	if _, ok := err.(*ErrInsufficientFrames); !ok {
		t.Fatalf("err = %v (%T), want *ErrInsufficientFrames", err, err)
	}
}

func TestSequenceIDIsolation(t *testing.T) {
	cfg := config.DefaultPacket()
	p1, _ := encodeWithSequenceID("first message", cfg, 1)
	p2, _ := encodeWithSequenceID("second message", cfg, 2)

	d := NewDecoder(nil)
	// Feed a couple of frames from sequence 1, then switch entirely to
	// sequence 2: the decoder must discard sequence 1's partial state.
	d.AddFrame(p1.Frames[0])
	d.AddFrame(p1.Frames[1])
	for _, f := range p2.Frames {
		d.AddFrame(f)
	}

	got, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "second message" {
		t.Fatalf("Decode() = %q, want %q (sequence 1 frames should have been discarded)", got, "second message")
	}
}

func TestInvalidFrameRejected(t *testing.T) {
	cfg := config.DefaultPacket()
	p, _ := encodeWithSequenceID("Hello Aurora!", cfg, 1)

	corrupt := p.Frames[0]
	corrupt.Checksum ^= 0xFF

	d := NewDecoder(nil)
	if d.AddFrame(corrupt) {
		t.Fatalf("AddFrame accepted a frame with a bad checksum")
	}
}
