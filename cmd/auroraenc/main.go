/*
DESCRIPTION
  auroraenc encodes a line of text into an aurora packet and renders each
  frame as a PNG strip, suitable for display on whatever surface the
  receiving camera watches.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package auroraenc is a command-line tool that encodes text into a
// sequence of aurora frames and writes each as a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/packet"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/visual/band"
	"github.com/novasignal/aurora/visual/palette"
)

// Logging configuration.
const (
	logPath      = "auroraenc.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func main() {
	text := flag.String("text", "", "text to encode")
	outDir := flag.String("out", "./aurora-frames", "directory to write frame PNGs to")
	width := flag.Int("width", 1280, "output PNG width")
	height := flag.Int("height", 200, "output PNG height")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	level := logging.Info
	if *verbose {
		level = logging.Debug
	}
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(level, fileLog)

	if *text == "" {
		log.Fatal("no -text provided")
	}

	cfg := config.DefaultPacket()
	p, err := packet.Encode(*text, cfg)
	if err != nil {
		log.Fatal("encode failed", "error", err.Error())
	}
	log.Info("encoded packet", "sequenceId", p.SequenceID, "dataFrames", p.DataFrames, "parityFrames", p.ParityFrames)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("could not create output directory", "error", err.Error())
	}

	for i, f := range p.Frames {
		wire := f.Serialize()
		indices, err := band.BytesToIndices(wire[:])
		if err != nil {
			log.Fatal("band conversion failed", "frameIndex", i, "error", err.Error())
		}

		strip := renderStrip(indices)
		out := xdraw.CatmullRom
		dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
		out.Scale(dst, dst.Bounds(), strip, strip.Bounds(), xdraw.Over, nil)

		path := filepath.Join(*outDir, fmt.Sprintf("frame-%03d.png", i))
		if err := writePNG(path, dst); err != nil {
			log.Fatal("could not write PNG", "path", path, "error", err.Error())
		}
		log.Debug("wrote frame", "path", path)
	}

	log.Info("done", "frames", len(p.Frames), "dir", *outDir)
}

// renderStrip paints one band.Count-wide, low-resolution raster of idx's
// palette colors, to be upscaled to the final output resolution.
func renderStrip(idx [band.Count]int) *image.RGBA {
	const bandPixels = 8
	img := image.NewRGBA(image.Rect(0, 0, band.Count*bandPixels, bandPixels))
	for i, p := range idx {
		c := palette.Colors[p]
		rect := image.Rect(i*bandPixels, 0, (i+1)*bandPixels, bandPixels)
		draw.Draw(img, rect, &image.Uniform{C: color.RGBA{c.R, c.G, c.B, 0xFF}}, image.Point{}, draw.Src)
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
