/*
NAME
  encoder.go

DESCRIPTION
  encoder builds a packet from UTF-8 text: pad into a D-row, 10-column byte
  matrix, Reed-Solomon encode each column, and wrap each row into a frame.
  Grounded on container/flv and container/mts's Encoder types, which wrap a
  destination and a bit of per-instance state behind a constructor.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package packet implements the aurora packet encoder (text to frames) and
// the multi-frame decoder (frames to text), including the column-wise
// Reed-Solomon layout that spreads erasure-correction across the packet's
// frames.
package packet

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/frame"
	"github.com/novasignal/aurora/rs"
)

// ErrEmptyInput is returned by Encode when given an empty string; spec.md
// §4.5 permits an implementation to reject this rather than define D=0
// behavior.
var ErrEmptyInput = errors.New("packet: empty input")

// ErrTooLarge is returned by Encode when the input would require more than
// cfg.MaxTotalFrames frames.
var ErrTooLarge = errors.New("packet: input too large for a single packet")

// ErrChunkSizeMismatch is returned by Encode when cfg.ChunkSize does not
// match the wire frame's fixed data chunk size.
var ErrChunkSizeMismatch = errors.New("packet: cfg.ChunkSize must equal frame.DataSize")

// Packet is the ephemeral, sender-side record of one encoded message: its
// sequence id, the frame counts, and the ordered frames that carry it.
// It is never transmitted as a unit; only its Frames are.
type Packet struct {
	SequenceID   uint16
	DataFrames   int
	ParityFrames int
	Frames       []frame.Frame
	RawLength    int
}

// TotalFrames returns DataFrames+ParityFrames.
func (p Packet) TotalFrames() int { return p.DataFrames + p.ParityFrames }

// Encode builds a Packet carrying s. The sequence id is drawn uniformly at
// random via math/rand/v2, which spec.md §9 explicitly allows ("cryptographic
// quality is not required").
func Encode(s string, cfg config.Packet) (Packet, error) {
	raw := []byte(s)
	return encodeBytes(raw, cfg, uint16(rand.IntN(1<<16)))
}

// encodeWithSequenceID is Encode with an explicit sequence id, used by tests
// that need deterministic packets.
func encodeWithSequenceID(s string, cfg config.Packet, seq uint16) (Packet, error) {
	return encodeBytes([]byte(s), cfg, seq)
}

func encodeBytes(raw []byte, cfg config.Packet, seq uint16) (Packet, error) {
	if cfg.ChunkSize != frame.DataSize {
		return Packet{}, ErrChunkSizeMismatch
	}
	l := len(raw)
	if l == 0 {
		return Packet{}, ErrEmptyInput
	}

	d := int(math.Ceil(float64(l) / float64(cfg.ChunkSize)))
	p := int(math.Ceil(float64(d) * (1 - cfg.Redundancy) / cfg.Redundancy))
	if p < cfg.MinParity {
		p = cfg.MinParity
	}
	total := d + p
	if total > cfg.MaxTotalFrames {
		return Packet{}, ErrTooLarge
	}

	padded := make([]byte, d*cfg.ChunkSize)
	copy(padded, raw)

	// matrix[r][c] is row r (data frame r), column c (one of ChunkSize
	// byte positions within a frame's data chunk).
	matrix := make([][]byte, total)
	for r := range matrix {
		matrix[r] = make([]byte, cfg.ChunkSize)
	}
	for r := 0; r < d; r++ {
		copy(matrix[r], padded[r*cfg.ChunkSize:(r+1)*cfg.ChunkSize])
	}

	for c := 0; c < cfg.ChunkSize; c++ {
		col := make([]byte, d)
		for r := 0; r < d; r++ {
			col[r] = matrix[r][c]
		}
		encoded := rs.Encode(col, p)
		for r := 0; r < total; r++ {
			matrix[r][c] = encoded[r]
		}
	}

	frames := make([]frame.Frame, total)
	for r := 0; r < total; r++ {
		var chunk [frame.DataSize]byte
		copy(chunk[:], matrix[r])
		frames[r] = frame.New(byte(r), byte(total), seq, chunk)
		// Every frame carries the data/parity split in its reserved byte, so
		// a receiver need not guess D from totalFrames alone and the hint
		// survives the loss of any single frame, including frame 0; see
		// container/packet.deriveCounts.
		frames[r].Reserved = byte(d)
	}

	return Packet{
		SequenceID:   seq,
		DataFrames:   d,
		ParityFrames: p,
		Frames:       frames,
		RawLength:    l,
	}, nil
}
