/*
NAME
  palette.go

DESCRIPTION
  palette defines the 16 fixed RGB colors an aurora band may display, and
  the nearest-match and nibble-splitting helpers the detector and band codec
  build on.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package palette defines the 16-entry fixed color palette aurora bands are
// drawn from, and the color-matching helpers used to recover a palette index
// from an observed pixel color.
package palette

import "math"

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// Size is the number of palette entries, and the number of distinct symbol
// values a band can carry (one nibble).
const Size = 16

// Colors is the fixed, wire-format palette. Position i carries 4-bit payload
// value i.
var Colors = [Size]Color{
	{20, 60, 40},
	{30, 90, 50},
	{40, 120, 60},
	{50, 150, 70},
	{40, 160, 120},
	{50, 180, 150},
	{60, 200, 180},
	{80, 220, 200},
	{80, 140, 200},
	{100, 120, 200},
	{130, 100, 200},
	{160, 90, 200},
	{180, 100, 180},
	{200, 110, 160},
	{220, 130, 150},
	{240, 160, 160},
}

// Euclidean returns the unweighted Euclidean distance between two colors.
func Euclidean(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Weighted returns the luminance-weighted distance between two colors,
// matching typical camera sensor sensitivity (green weighted most heavily,
// blue least).
func Weighted(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(0.30*dr*dr + 0.59*dg*dg + 0.11*db*db)
}

// ClosestIndex returns the palette index minimizing Weighted(c, palette[i]),
// breaking ties toward the lowest index.
func ClosestIndex(c Color) int {
	best := 0
	bestDist := Weighted(c, Colors[0])
	for i := 1; i < Size; i++ {
		d := Weighted(c, Colors[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Confidence returns a linear goodness-of-fit proxy for c matching its
// closest palette entry: 1 for an exact match, falling linearly to 0 at a
// weighted distance of 150 or more.
func Confidence(c Color) float64 {
	best := Colors[ClosestIndex(c)]
	conf := 1 - Weighted(c, best)/150
	if conf < 0 {
		conf = 0
	}
	return conf
}

// ByteToIndices splits b into its high and low nibble palette indices.
func ByteToIndices(b byte) (hi, lo int) {
	return int(b>>4) & 0xF, int(b) & 0xF
}

// IndicesToByte combines a high and low nibble palette index back into a
// byte.
func IndicesToByte(hi, lo int) byte {
	return byte((hi&0xF)<<4 | (lo & 0xF))
}
