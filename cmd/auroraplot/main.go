/*
DESCRIPTION
  auroraplot renders diagnostic charts for the aurora codec: the GF(2^8)
  exponent table, and (given a raster) the per-band confidence of the most
  recent detection attempt. These are development aids, not part of the
  wire protocol.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package auroraplot is a command-line tool that charts diagnostic views
// of the GF(2^8) tables and detector confidence.
package main

import (
	"flag"
	"image"
	_ "image/png"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/gf"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/visual/detector"
	"github.com/novasignal/aurora/visual/palette"
)

func main() {
	rasterPath := flag.String("image", "", "optional raster PNG to chart per-band confidence for")
	out := flag.String("out", "aurora-diagnostics.png", "output chart path")
	flag.Parse()

	log := logging.New(logging.Info, nil)

	if *rasterPath != "" {
		if err := plotBandConfidence(*rasterPath, *out, log); err != nil {
			log.Fatal("plotBandConfidence failed", "error", err.Error())
		}
		return
	}

	if err := plotExpTable(*out); err != nil {
		log.Fatal("plotExpTable failed", "error", err.Error())
	}
}

// plotExpTable charts gf.Exp(i) for i in [0,255], the GF(2^8) cyclic group
// generated by the primitive element.
func plotExpTable(out string) error {
	p := plot.New()
	p.Title.Text = "GF(2^8) exponent table"
	p.X.Label.Text = "i"
	p.Y.Label.Text = "Exp(i)"

	pts := make(plotter.XYs, 256)
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = float64(gf.Exp(i))
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, out)
}

// plotBandConfidence runs the detector against the raster at path and
// charts the per-band confidence of the resulting color match.
func plotBandConfidence(path, out string, log logging.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	res := detector.Detect(img, config.DefaultDetector(), log)

	p := plot.New()
	p.Title.Text = "per-band detection confidence"
	p.X.Label.Text = "band"
	p.Y.Label.Text = "confidence"

	bars := make(plotter.Values, len(res.Debug.BandColors))
	for i, c := range res.Debug.BandColors {
		bars[i] = palette.Confidence(c)
	}
	chart, err := plotter.NewBarChart(bars, vg.Points(6))
	if err != nil {
		return err
	}
	p.Add(chart)

	return p.Save(10*vg.Inch, 4*vg.Inch, out)
}
