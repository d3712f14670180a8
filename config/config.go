/*
NAME
  config.go

DESCRIPTION
  config holds the tunable knobs for the packet encoder and the raster
  detector, in the style of revid/config's Config struct of documented
  fields with sensible zero-value defaults supplied by a constructor.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package config holds the tunable parameters of the aurora packet encoder
// and raster detector. The spec's empirical detector thresholds and the
// packet redundancy ratio are exposed here as fields rather than baked-in
// constants, so a deployment can recalibrate them without touching code.
package config

// Packet holds the tunables governing how text is split into data frames
// and how much Reed-Solomon parity protects them.
type Packet struct {
	// ChunkSize is the number of payload bytes per data frame.
	ChunkSize int

	// Redundancy is the target fraction r of totalFrames that should be
	// data frames (the rest is parity). Parity is never less than
	// MinParity regardless of this ratio.
	Redundancy float64

	// MinParity is the minimum number of parity frames per packet.
	MinParity int

	// MaxTotalFrames bounds D+P; the frame header's 8-bit totalFrames
	// field forces this to 255 or less.
	MaxTotalFrames int
}

// DefaultPacket returns the packet tunables exactly as specified: 10-byte
// chunks, redundancy 0.8, minimum 4 parity frames, 255 frame ceiling.
func DefaultPacket() Packet {
	return Packet{
		ChunkSize:      10,
		Redundancy:     0.8,
		MinParity:      4,
		MaxTotalFrames: 255,
	}
}

// Detector holds the tunables governing raster region search, per-band
// color sampling, and the confidence floor below which a frame is
// considered undetected. Spec.md §9 calls these out as empirical
// thresholds that an implementation should expose rather than bake in.
type Detector struct {
	// Bands is the number of equal-width horizontal slices the aurora
	// strip is divided into.
	Bands int

	// RowScoreFrac and ColScoreFrac are the fractions of the row/column
	// maximum score a row or column must exceed to be included in the
	// vertical/horizontal span.
	RowScoreFrac float64
	ColScoreFrac float64

	// MinRowScoreFrac is the fraction of raster width the best row score
	// must reach for a region to be considered found at all.
	MinRowScoreFrac float64

	// MinVerticalSpanFrac and MinHorizontalSpanFrac are the minimum
	// fractions of raster height/width the detected span must cover,
	// below which the region is rejected as spurious.
	MinVerticalSpanFrac   float64
	MinHorizontalSpanFrac float64

	// BrightnessFloor is the minimum r+g+b sum for a pixel to be
	// considered part of a band's signal rather than background noise.
	BrightnessFloor float64

	// TopBrightnessFrac is the fraction of brightest in-slice pixels
	// averaged to produce a band's sampled color.
	TopBrightnessFrac float64

	// ConfidenceFloor is the minimum mean per-band confidence for a
	// reconstructed frame to be reported rather than discarded as
	// low-confidence.
	ConfidenceFloor float64
}

// DefaultDetector returns the detector tunables exactly as specified in
// spec.md §4.8.
func DefaultDetector() Detector {
	return Detector{
		Bands:                 32,
		RowScoreFrac:          0.3,
		ColScoreFrac:          0.2,
		MinRowScoreFrac:       0.1,
		MinVerticalSpanFrac:   0.05,
		MinHorizontalSpanFrac: 0.3,
		BrightnessFloor:       30,
		TopBrightnessFrac:     0.25,
		ConfidenceFloor:       0.15,
	}
}
