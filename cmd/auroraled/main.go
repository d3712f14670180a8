/*
DESCRIPTION
  auroraled drives a physical aurora display: it encodes one line of text
  into a packet and flashes each frame's bands out over a GPIO pin, so a
  simple single-LED or single-channel display can sequence through a
  message without a camera-visible screen at all.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package auroraled is a command-line tool that drives an aurora packet
// out over a GPIO-controlled LED, one band at a time.
package main

import (
	"flag"
	"time"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/packet"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/visual/band"
	"github.com/novasignal/aurora/visual/palette"
)

// bandPeriod is how long one band index is held on the pin before the next.
const bandPeriod = 40 * time.Millisecond

func main() {
	text := flag.String("text", "", "text to encode and flash out")
	pinName := flag.String("pin", "GPIO17", "GPIO pin driving the indicator LED")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	level := logging.Info
	if *verbose {
		level = logging.Debug
	}
	log := logging.New(level, nil)

	if *text == "" {
		log.Fatal("no -text provided")
	}

	if err := embd.InitGPIO(); err != nil {
		log.Fatal("could not init GPIO", "error", err.Error())
	}
	defer embd.CloseGPIO()

	pin, err := embd.NewDigitalPin(*pinName)
	if err != nil {
		log.Fatal("could not open pin", "pin", *pinName, "error", err.Error())
	}
	defer pin.Close()
	if err := pin.SetDirection(embd.Out); err != nil {
		log.Fatal("could not set pin direction", "error", err.Error())
	}

	cfg := config.DefaultPacket()
	p, err := packet.Encode(*text, cfg)
	if err != nil {
		log.Fatal("encode failed", "error", err.Error())
	}
	log.Info("flashing packet", "sequenceId", p.SequenceID, "frames", p.TotalFrames())

	for _, f := range p.Frames {
		wire := f.Serialize()
		indices, err := band.BytesToIndices(wire[:])
		if err != nil {
			log.Fatal("band conversion failed", "error", err.Error())
		}
		for _, idx := range indices {
			flashBand(pin, idx, log)
		}
	}
}

// flashBand pulses pin 1 + R/32 + G/32 + B/32 times for idx's palette color
// (integer division per channel), a crude single-wire encoding of a 4-bit palette index for displays with
// no color channel of their own.
func flashBand(pin embd.DigitalPin, idx int, log logging.Logger) {
	c := palette.Colors[idx]
	pulses := 1 + int(c.R)/32 + int(c.G)/32 + int(c.B)/32
	for i := 0; i < pulses; i++ {
		if err := pin.Write(embd.High); err != nil {
			log.Error("pin write failed", "error", err.Error())
			return
		}
		time.Sleep(bandPeriod / time.Duration(2*pulses))
		if err := pin.Write(embd.Low); err != nil {
			log.Error("pin write failed", "error", err.Error())
			return
		}
		time.Sleep(bandPeriod / time.Duration(2*pulses))
	}
}
