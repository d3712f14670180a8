/*
NAME
  decoder.go

DESCRIPTION
  decoder implements the receiver-side multi-frame state machine: accept
  frames in any order, track progress against a sequence id, and reconstruct
  text once enough frames have arrived to satisfy the Reed-Solomon erasure
  bound. Grounded on protocol/rtp's Decoder, which likewise accumulates
  packets keyed by sequence number before handing off a reassembled payload.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

package packet

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/novasignal/aurora/container/frame"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/rs"
)

// ErrInvalidUTF8 is returned by Decode when the reassembled byte stream,
// after NUL-trimming, is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("packet: reassembled data is not valid UTF-8")

// ErrInsufficientFrames is returned by Decode when fewer frames have been
// collected than the packet's parity budget can cover.
type ErrInsufficientFrames struct {
	Collected, Required int
	Missing              []int
}

func (e *ErrInsufficientFrames) Error() string {
	return fmt.Sprintf("packet: insufficient frames: have %d of %d required, missing %v",
		e.Collected, e.Required, e.Missing)
}

// state is the decoder's tagged lifecycle: uninitialized until the first
// frame arrives, active once a sequence id has been adopted.
type state int

const (
	uninitialized state = iota
	active
)

// Decoder accumulates frames belonging to one in-flight sequence id and
// reconstructs the original text once decodable. A single Decoder instance
// is not safe for concurrent use; callers serialize calls to AddFrame.
type Decoder struct {
	state state
	log   logging.Logger

	sequenceID   uint16
	totalFrames  int
	dataFrames   int
	parityFrames int
	// countsConfirmed is true once any frame has been seen and its Reserved
	// byte hint applied; until then dataFrames/parityFrames are only the
	// deriveCounts estimate. Every frame in a packet carries the same hint,
	// so this is confirmed by whichever frame happens to arrive first.
	countsConfirmed bool

	frames map[byte]frame.Frame
}

// NewDecoder returns a Decoder ready to accept its first frame. log may be
// nil to disable diagnostics.
func NewDecoder(log logging.Logger) *Decoder {
	return &Decoder{log: log, frames: make(map[byte]frame.Frame)}
}

// deriveCounts implements spec.md's 80% rule for recovering D and P from a
// frame's totalFrames field alone: D = ceil(totalFrames*0.8), P the
// remainder.
func deriveCounts(totalFrames int) (dataFrames, parityFrames int) {
	dataFrames = int(math.Ceil(float64(totalFrames) * 0.8))
	if dataFrames < 1 {
		dataFrames = 1
	}
	if dataFrames > totalFrames {
		dataFrames = totalFrames
	}
	parityFrames = totalFrames - dataFrames
	return dataFrames, parityFrames
}

// reset discards any in-progress accumulation and adopts f's sequence id and
// frame counts as the decoder's new target.
func (d *Decoder) reset(f frame.Frame) {
	d.sequenceID = f.SequenceID
	d.totalFrames = int(f.TotalFrames)
	d.dataFrames, d.parityFrames = deriveCounts(d.totalFrames)
	d.countsConfirmed = false
	d.frames = make(map[byte]frame.Frame)
	d.state = active
	d.applyCounts(f)
	if d.log != nil {
		d.log.Debug("decoder adopted new sequence",
			"sequenceId", d.sequenceID, "dataFrames", d.dataFrames, "parityFrames", d.parityFrames)
	}
}

// applyCounts refines dataFrames/parityFrames from f's Reserved byte, which
// every frame in a packet carries identically. Called on every frame, so
// the hint survives the loss of any single frame, sync frame included.
func (d *Decoder) applyCounts(f frame.Frame) {
	dataFrames := int(f.Reserved)
	if dataFrames < 1 {
		dataFrames = 1
	}
	if dataFrames > d.totalFrames {
		dataFrames = d.totalFrames
	}
	d.dataFrames = dataFrames
	d.parityFrames = d.totalFrames - dataFrames
	d.countsConfirmed = true
}

// AddFrame ingests a candidate frame. It reports whether the frame was
// accepted into the current (possibly newly adopted) sequence; a frame
// belonging to a different, already-in-progress sequence triggers a reset
// and is itself accepted as the start of the new sequence.
func (d *Decoder) AddFrame(f frame.Frame) bool {
	if !f.Valid() {
		if d.log != nil {
			d.log.Debug("rejected invalid frame", "frameIndex", f.FrameIndex)
		}
		return false
	}

	switch d.state {
	case uninitialized:
		d.reset(f)
	case active:
		if f.SequenceID != d.sequenceID {
			d.reset(f)
		} else {
			d.applyCounts(f)
		}
	}

	if int(f.FrameIndex) >= d.totalFrames {
		return false
	}

	d.frames[f.FrameIndex] = f
	return true
}

// Collected returns the number of distinct frame indices currently held.
func (d *Decoder) Collected() int { return len(d.frames) }

// Required returns the number of data frames needed for this sequence
// (equivalently, the Reed-Solomon message length per column).
func (d *Decoder) Required() int { return d.dataFrames }

// CanDecode reports whether enough frames have arrived that Decode is
// expected to succeed: RS can tolerate up to ParityFrames erasures, so any
// dataFrames-worth of the totalFrames frames suffices regardless of which
// ones.
func (d *Decoder) CanDecode() bool {
	return d.state == active && len(d.frames) >= d.dataFrames
}

// missingIndices returns the sorted frame indices in [0,totalFrames) not yet
// collected.
func (d *Decoder) missingIndices() []int {
	var missing []int
	for i := 0; i < d.totalFrames; i++ {
		if _, ok := d.frames[byte(i)]; !ok {
			missing = append(missing, i)
		}
	}
	sort.Ints(missing)
	return missing
}

// Decode reassembles the text carried by the current sequence. It requires
// at least Required() frames to be collected; frame loss beyond the
// packet's parity budget surfaces as *ErrInsufficientFrames.
func (d *Decoder) Decode() (string, error) {
	missing := d.missingIndices()
	if len(missing) > d.parityFrames {
		return "", &ErrInsufficientFrames{
			Collected: len(d.frames),
			Required:  d.dataFrames,
			Missing:   missing,
		}
	}

	matrix := make([][]byte, d.dataFrames)
	for c := 0; c < frame.DataSize; c++ {
		received := make([]byte, d.totalFrames)
		for i := 0; i < d.totalFrames; i++ {
			if f, ok := d.frames[byte(i)]; ok {
				received[i] = f.DataChunk[c]
			}
		}
		col, err := rs.Decode(received, d.dataFrames, d.parityFrames, missing)
		if err != nil {
			if d.log != nil {
				d.log.Error("column decode failed", "column", c, "error", err.Error())
			}
			return "", errors.Wrapf(err, "packet: column %d decode", c)
		}
		for r := 0; r < d.dataFrames; r++ {
			if matrix[r] == nil {
				matrix[r] = make([]byte, frame.DataSize)
			}
			matrix[r][c] = col[r]
		}
	}

	raw := make([]byte, 0, d.dataFrames*frame.DataSize)
	for _, row := range matrix {
		raw = append(raw, row...)
	}

	trimmed := trimTrailingNUL(raw)

	decoded, _, err := transform.Bytes(encoding.UTF8Validator, trimmed)
	if err != nil {
		return "", ErrInvalidUTF8
	}
	return string(decoded), nil
}

func trimTrailingNUL(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0x00 {
		i--
	}
	return b[:i]
}
