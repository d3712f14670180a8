package detector

import (
	"image"
	"image/color"
	"testing"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/frame"
	"github.com/novasignal/aurora/visual/band"
	"github.com/novasignal/aurora/visual/palette"
)

const (
	testWidth  = 320
	testHeight = 100
	stripTop   = 40
	stripBot   = 59
)

// render paints f's 32 band colors as a strip onto a fresh raster, exactly
// as the external renderer would for one display tick.
func render(f frame.Frame) *image.RGBA {
	wire := f.Serialize()
	idx, err := band.BytesToIndices(wire[:])
	if err != nil {
		panic(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, testWidth, testHeight))
	bandWidth := testWidth / band.Count
	for i, p := range idx {
		c := palette.Colors[p]
		left := i * bandWidth
		right := left + bandWidth
		for y := stripTop; y <= stripBot; y++ {
			for x := left; x < right; x++ {
				img.Set(x, y, color.RGBA{c.R, c.G, c.B, 0xFF})
			}
		}
	}
	return img
}

func TestDetectOk(t *testing.T) {
	var data [frame.DataSize]byte
	copy(data[:], []byte("Aurora!!!!"))
	f := frame.New(2, 6, 0xBEEF, data)

	img := render(f)
	res := Detect(img, config.DefaultDetector(), nil)
	if res.Outcome != Ok {
		t.Fatalf("Outcome = %v, want Ok (confidence=%v)", res.Outcome, res.Confidence)
	}
	if res.Frame != f {
		t.Fatalf("recovered frame = %+v, want %+v", res.Frame, f)
	}
	if res.Confidence < 0.99 {
		t.Fatalf("confidence = %v, want ~1", res.Confidence)
	}
}

func TestDetectNoRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, testWidth, testHeight))
	res := Detect(img, config.DefaultDetector(), nil)
	if res.Outcome != NoRegion {
		t.Fatalf("Outcome = %v, want NoRegion", res.Outcome)
	}
}

func TestDetectChecksumFail(t *testing.T) {
	var data [frame.DataSize]byte
	f := frame.New(0, 6, 1, data)

	// Corrupt the checksum byte before rendering, so every band is still an
	// exact palette color but the reconstructed checksum does not match the
	// data chunk.
	f.Checksum ^= 0xFF
	img := render(f)

	res := Detect(img, config.DefaultDetector(), nil)
	if res.Outcome != ChecksumFail {
		t.Fatalf("Outcome = %v, want ChecksumFail", res.Outcome)
	}
}
