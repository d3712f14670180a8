/*
NAME
  detector.go

DESCRIPTION
  detector locates the aurora strip within a camera raster, samples a color
  per band, matches each against the palette, and reconstructs a candidate
  frame. Grounded on the teacher's codec/jpeg and codec/h264 packages'
  pattern of a small stateless parsing function returning a result plus
  diagnostic context, and on gonum/stat for the brightness averaging spec.md
  §4.8(b) calls for.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package detector recovers a candidate aurora frame from a camera raster:
// it finds the lit strip, samples a color per band, matches colors against
// the palette, and validates the reassembled frame's checksum.
package detector

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/frame"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/visual/band"
	"github.com/novasignal/aurora/visual/palette"
)

// Outcome classifies a detection attempt; exactly one Result field set
// group is meaningful per Outcome value, forming the sum type spec.md §9
// calls for instead of a single struct of optionals.
type Outcome int

const (
	// NoRegion means no aurora-colored region was found in the raster.
	NoRegion Outcome = iota
	// LowConfidence means a region and bands were found, but mean
	// confidence fell below the configured floor.
	LowConfidence
	// ChecksumFail means a frame was reconstructed with adequate
	// confidence but its CRC-8 did not match.
	ChecksumFail
	// Ok means a frame was reconstructed and its checksum verified.
	Ok
)

func (o Outcome) String() string {
	switch o {
	case NoRegion:
		return "NoRegion"
	case LowConfidence:
		return "LowConfidence"
	case ChecksumFail:
		return "ChecksumFail"
	case Ok:
		return "Ok"
	default:
		return "Unknown"
	}
}

// Debug carries diagnostic context surfaced regardless of outcome: the
// discovered region bounds (if any) and the raw sampled color per band.
type Debug struct {
	RegionFound              bool
	Top, Bottom, Left, Right int
	BandColors               [32]palette.Color
}

// Result is the outcome of one detection attempt over a single raster.
type Result struct {
	Outcome    Outcome
	Indices    [32]int
	Confidence float64
	Frame      frame.Frame
	Debug      Debug
}

// Detect runs the full region-search, band-sampling, palette-match, and
// frame-reconstruction pipeline against img, using cfg's tunables. log may
// be nil, in which case diagnostics are dropped.
func Detect(img image.Image, cfg config.Detector, log logging.Logger) Result {
	top, bottom, left, right, found := findRegion(img, cfg)
	if !found {
		if log != nil {
			log.Debug("aurora region not found")
		}
		return Result{Outcome: NoRegion}
	}

	colors := sampleBands(img, top, bottom, left, right, cfg)

	var indices [32]int
	var confSum float64
	for i, c := range colors {
		indices[i] = palette.ClosestIndex(c)
		confSum += palette.Confidence(c)
	}
	meanConf := confSum / float64(cfg.Bands)

	dbg := Debug{RegionFound: true, Top: top, Bottom: bottom, Left: left, Right: right}
	copy(dbg.BandColors[:], colors)

	if meanConf < cfg.ConfidenceFloor {
		if log != nil {
			log.Debug("low confidence detection", "confidence", meanConf)
		}
		return Result{Outcome: LowConfidence, Indices: indices, Confidence: meanConf, Debug: dbg}
	}

	bytes, err := band.IndicesToBytes(indices[:])
	if err != nil {
		// Cannot happen: indices always has band.Count==32 entries, but
		// guard rather than panic on a future Bands-count mismatch.
		if log != nil {
			log.Error("band reassembly failed", "error", err.Error())
		}
		return Result{Outcome: LowConfidence, Indices: indices, Confidence: meanConf, Debug: dbg}
	}

	f, err := frame.Deserialize(bytes[:])
	if err != nil {
		if log != nil {
			log.Error("frame deserialize failed", "error", err.Error())
		}
		return Result{Outcome: ChecksumFail, Indices: indices, Confidence: meanConf, Debug: dbg}
	}

	if !f.VerifyChecksum() {
		if log != nil {
			log.Debug("checksum mismatch", "frameIndex", f.FrameIndex)
		}
		return Result{Outcome: ChecksumFail, Indices: indices, Confidence: meanConf, Frame: f, Debug: dbg}
	}

	if log != nil {
		log.Debug("frame detected", "frameIndex", f.FrameIndex, "confidence", meanConf)
	}
	return Result{Outcome: Ok, Indices: indices, Confidence: meanConf, Frame: f, Debug: dbg}
}

// pixelAt returns the 8-bit RGB channels of img at (x,y).
func pixelAt(img image.Image, x, y int) (r, g, b float64) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	// image.Color.RGBA returns 16-bit premultiplied-alpha channels;
	// the aurora renderer emits fully opaque pixels, so a plain shift
	// back to 8-bit is exact.
	return float64(cr >> 8), float64(cg >> 8), float64(cb >> 8)
}

// findRegion implements spec.md §4.8(a): locate the lit strip by scoring
// aurora-colored pixels per row and column.
func findRegion(img image.Image, cfg config.Detector) (top, bottom, left, right int, found bool) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rowScore := make([]int, h)
	colScore := make([]int, w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := pixelAt(img, bounds.Min.X+x, bounds.Min.Y+y)
			if !isAuroraPixel(r, g, b) {
				continue
			}
			rowScore[y]++
			colScore[x]++
		}
	}

	maxRow := maxInt(rowScore)
	if float64(maxRow) < cfg.MinRowScoreFrac*float64(w) {
		return 0, 0, 0, 0, false
	}
	maxCol := maxInt(colScore)

	top, bottom = spanAboveFrac(rowScore, cfg.RowScoreFrac*float64(maxRow))
	left, right = spanAboveFrac(colScore, cfg.ColScoreFrac*float64(maxCol))

	if float64(bottom-top+1) < cfg.MinVerticalSpanFrac*float64(h) {
		return 0, 0, 0, 0, false
	}
	if float64(right-left+1) < cfg.MinHorizontalSpanFrac*float64(w) {
		return 0, 0, 0, 0, false
	}
	return top, bottom, left, right, true
}

// isAuroraPixel implements spec.md §4.8(a)'s green/cyan/purple heuristics
// plus the mean-brightness floor.
func isAuroraPixel(r, g, b float64) bool {
	green := g > 1.1*r && g > 30
	cyan := g > 0.9*r && b > 0.6*r && (g+b) > 80
	purple := b > 0.6*r && r > 0.4*g && (r+b) > 80
	if !(green || cyan || purple) {
		return false
	}
	mean := (r + g + b) / 3
	return mean > 30
}

// spanAboveFrac returns the first and last index whose score exceeds
// threshold.
func spanAboveFrac(score []int, threshold float64) (first, last int) {
	first, last = -1, -1
	for i, s := range score {
		if float64(s) > threshold {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return 0, 0
	}
	return first, last
}

func maxInt(s []int) int {
	m := 0
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// sampleBands implements spec.md §4.8(b): divide the horizontal span into
// cfg.Bands equal slices and average the brightest TopBrightnessFrac of
// qualifying pixels in each.
func sampleBands(img image.Image, top, bottom, left, right int, cfg config.Detector) []palette.Color {
	colors := make([]palette.Color, cfg.Bands)
	width := right - left + 1
	for i := 0; i < cfg.Bands; i++ {
		sliceLeft := left + i*width/cfg.Bands
		sliceRight := left + (i+1)*width/cfg.Bands
		if sliceRight <= sliceLeft {
			sliceRight = sliceLeft + 1
		}
		colors[i] = sampleSlice(img, top, bottom, sliceLeft, sliceRight, cfg)
	}
	return colors
}

type sample struct {
	r, g, b    float64
	brightness float64
}

func sampleSlice(img image.Image, top, bottom, left, right int, cfg config.Detector) palette.Color {
	var samples []sample
	for y := top; y <= bottom; y++ {
		for x := left; x < right; x++ {
			r, g, b := pixelAt(img, x, y)
			sum := r + g + b
			if sum <= cfg.BrightnessFloor {
				continue
			}
			samples = append(samples, sample{r, g, b, sum})
		}
	}
	if len(samples) == 0 {
		return palette.Color{}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].brightness > samples[j].brightness })

	n := int(float64(len(samples)) * cfg.TopBrightnessFrac)
	if n < 1 {
		n = 1
	}
	if n > len(samples) {
		n = len(samples)
	}

	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	for i := 0; i < n; i++ {
		rs[i] = samples[i].r
		gs[i] = samples[i].g
		bs[i] = samples[i].b
	}
	return palette.Color{
		R: uint8(clamp255(stat.Mean(rs, nil))),
		G: uint8(clamp255(stat.Mean(gs, nil))),
		B: uint8(clamp255(stat.Mean(bs, nil))),
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
