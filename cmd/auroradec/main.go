/*
DESCRIPTION
  auroradec watches a directory for new PNG rasters, runs the aurora
  detector over each, and feeds recovered frames into a multi-frame decoder,
  printing the reconstructed text once a packet is complete.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package auroradec is a command-line tool that watches a directory of
// camera-raster PNGs and decodes any aurora packet they carry.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strings"

	"github.com/coreos/go-systemd/daemon"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/novasignal/aurora/config"
	"github.com/novasignal/aurora/container/packet"
	"github.com/novasignal/aurora/logging"
	"github.com/novasignal/aurora/visual/detector"
)

const (
	logPath      = "auroradec.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func main() {
	dir := flag.String("dir", ".", "directory to watch for raster PNGs")
	verbose := flag.Bool("verbose", false, "log at debug level")
	notifySystemd := flag.Bool("systemd", false, "send sd_notify READY=1 once the watcher starts")
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("could not create watcher", "error", err.Error())
	}
	defer watcher.Close()

	if err := watcher.Add(*dir); err != nil {
		log.Fatal("could not watch directory", "dir", *dir, "error", err.Error())
	}
	log.Info("watching for raster PNGs", "dir", *dir)

	if *notifySystemd {
		if sent, err := daemon.SdNotify(false, "READY=1"); err != nil {
			log.Warning("sd_notify failed", "error", err.Error())
		} else {
			log.Debug("sd_notify", "sent", sent)
		}
	}

	dec := packet.NewDecoder(log)
	cfg := config.DefaultDetector()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !strings.HasSuffix(strings.ToLower(ev.Name), ".png") {
				continue
			}
			handleRaster(ev.Name, dec, cfg, log)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("watcher error", "error", err.Error())
		}
	}
}

func handleRaster(path string, dec *packet.Decoder, cfg config.Detector, log logging.Logger) {
	f, err := os.Open(path)
	if err != nil {
		log.Error("could not open raster", "path", path, "error", err.Error())
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Error("could not decode raster", "path", path, "error", err.Error())
		return
	}

	res := detector.Detect(img, cfg, log)
	switch res.Outcome {
	case detector.NoRegion:
		log.Debug("no aurora region found", "path", path)
		return
	case detector.LowConfidence:
		log.Debug("low confidence detection", "path", path, "confidence", res.Confidence)
		return
	case detector.ChecksumFail:
		log.Warning("checksum mismatch", "path", path)
		return
	}

	if !dec.AddFrame(res.Frame) {
		log.Debug("frame rejected", "path", path, "frameIndex", res.Frame.FrameIndex)
		return
	}
	log.Debug("frame accepted", "path", path, "frameIndex", res.Frame.FrameIndex, "collected", dec.Collected(), "required", dec.Required())

	if !dec.CanDecode() {
		return
	}

	text, err := dec.Decode()
	if err != nil {
		log.Error("decode failed", "error", err.Error())
		return
	}
	log.Info("decoded message", "text", text)
	fmt.Println(text)
}
