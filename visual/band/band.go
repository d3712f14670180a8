/*
NAME
  band.go

DESCRIPTION
  band converts between a frame's 16 serialized bytes and the 32 palette
  indices rendered as bands on the aurora strip: high nibble then low
  nibble, byte by byte.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package band implements the symbol-order mapping between a frame's raw
// bytes and the 32 band indices used to render it.
package band

import (
	"github.com/pkg/errors"

	"github.com/novasignal/aurora/container/frame"
	"github.com/novasignal/aurora/visual/palette"
)

// Count is the number of bands a frame expands to: two nibbles per byte
// across frame.Size bytes.
const Count = frame.Size * 2

// ErrWrongLength is returned by BytesToIndices and IndicesToBytes when the
// input is not exactly frame.Size bytes or Count indices.
var ErrWrongLength = errors.New("band: wrong input length")

// BytesToIndices expands frame.Size serialized bytes into Count palette
// indices, emitting each byte's high nibble then its low nibble in order.
func BytesToIndices(b []byte) ([Count]int, error) {
	var out [Count]int
	if len(b) != frame.Size {
		return out, ErrWrongLength
	}
	for i, v := range b {
		hi, lo := palette.ByteToIndices(v)
		out[2*i] = hi
		out[2*i+1] = lo
	}
	return out, nil
}

// IndicesToBytes reassembles Count palette indices into frame.Size bytes,
// the inverse of BytesToIndices.
func IndicesToBytes(idx []int) ([frame.Size]byte, error) {
	var out [frame.Size]byte
	if len(idx) != Count {
		return out, ErrWrongLength
	}
	for i := range out {
		out[i] = palette.IndicesToByte(idx[2*i], idx[2*i+1])
	}
	return out, nil
}

// IsSyncFrame reports whether frameIndex identifies the visual sync marker
// (frameIndex == 0). This is a renderer hint only; it has no effect on
// decoding.
func IsSyncFrame(frameIndex byte) bool {
	return frameIndex == 0
}
