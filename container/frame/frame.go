/*
NAME
  frame.go

DESCRIPTION
  frame defines the 16-byte wire layout of a single aurora frame and its
  (de)serialization, in the same spirit as container/flv and container/mts's
  small binary-layout encoders: a fixed header plus a payload plus a trailing
  integrity field.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package frame implements the 16-byte aurora frame format: a sequence
// header, a 10-byte data chunk, and a CRC-8 checksum.
package frame

import (
	"github.com/pkg/errors"

	"github.com/novasignal/aurora/crc8"
)

// Size is the fixed binary length of a serialized frame.
const Size = 16

// DataSize is the number of payload bytes a frame carries.
const DataSize = 10

// ErrShortBuffer is returned by Deserialize when given fewer than Size bytes.
var ErrShortBuffer = errors.New("frame: buffer shorter than frame.Size")

// Frame is the logical record carried by one display tick: a position
// within its packet (FrameIndex of TotalFrames), the packet's SequenceID,
// ten bytes of payload, a checksum over that payload, and the wire format's
// reserved trailing byte.
//
// Reserved carries no meaning at this layer and is never covered by
// Checksum; container/packet sets it identically on every frame of a
// packet, as a redundant hint of the packet's data/parity split.
type Frame struct {
	FrameIndex  byte
	TotalFrames byte
	SequenceID  uint16
	DataChunk   [DataSize]byte
	Checksum    byte
	Reserved    byte
}

// New builds a Frame with Checksum computed from data and Reserved set to
// zero, matching the invariant that a freshly constructed frame is always
// valid.
func New(frameIndex, totalFrames byte, sequenceID uint16, data [DataSize]byte) Frame {
	return Frame{
		FrameIndex:  frameIndex,
		TotalFrames: totalFrames,
		SequenceID:  sequenceID,
		DataChunk:   data,
		Checksum:    crc8.Checksum(data[:]),
	}
}

// Valid reports whether f's checksum matches its data chunk and its index
// falls within its declared total.
func (f Frame) Valid() bool {
	return f.VerifyChecksum() && f.FrameIndex < f.TotalFrames
}

// VerifyChecksum reports whether f.Checksum matches CRC8(f.DataChunk).
func (f Frame) VerifyChecksum() bool {
	return crc8.Checksum(f.DataChunk[:]) == f.Checksum
}

// Serialize renders f into its 16-byte wire form. Byte 15 carries Reserved,
// which is 0x00 unless a caller (container/packet, on every frame it
// encodes) has set it.
func (f Frame) Serialize() [Size]byte {
	var out [Size]byte
	out[0] = f.FrameIndex
	out[1] = f.TotalFrames
	out[2] = byte(f.SequenceID >> 8)
	out[3] = byte(f.SequenceID)
	copy(out[4:14], f.DataChunk[:])
	out[14] = f.Checksum
	out[15] = f.Reserved
	return out
}

// Deserialize parses a 16-byte buffer into a Frame. It is total and
// non-validating: callers must call VerifyChecksum or Valid to check
// integrity.
func Deserialize(b []byte) (Frame, error) {
	if len(b) < Size {
		return Frame{}, ErrShortBuffer
	}
	var f Frame
	f.FrameIndex = b[0]
	f.TotalFrames = b[1]
	f.SequenceID = uint16(b[2])<<8 | uint16(b[3])
	copy(f.DataChunk[:], b[4:14])
	f.Checksum = b[14]
	f.Reserved = b[15]
	return f, nil
}
