/*
NAME
  logging.go

DESCRIPTION
  logging provides the small leveled Logger interface used throughout this
  module, matching the shape of the ausocean/utils/logging package the
  teacher codebase builds on (logging.New(verbosity, writer, suppress), with
  Debug/Info/Warning/Error/Fatal methods each taking a message and an
  optional list of key-value pairs). That upstream package isn't part of
  this module's dependency closure, so this is a self-contained
  reimplementation of the same interface, backed by
  gopkg.in/natefinch/lumberjack.v2 for rotation the way cmd/rv/main.go wires
  its file logger.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package logging provides a small leveled, structured logger used by the
// detector, decoder, and demonstration binaries for diagnostics. The core
// codec packages (gf, rs, crc8, container/frame) never require a logger;
// only the detector and multi-frame decoder accept one, and a nil Logger
// silently disables logging.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level is a logging verbosity threshold.
type Level int

// Levels, lowest to highest severity.
const (
	Debug Level = iota
	Info
	Warning
	Error
	Fatal
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface the detector and decoder log diagnostics through.
type Logger interface {
	Debug(msg string, params ...interface{})
	Info(msg string, params ...interface{})
	Warning(msg string, params ...interface{})
	Error(msg string, params ...interface{})
	Fatal(msg string, params ...interface{})
}

// stdLogger is the default Logger implementation: a minimum verbosity
// threshold, a destination writer, and a list of noisy messages to
// suppress by exact match (matching cmd/rv/main.go's logSuppress parameter).
type stdLogger struct {
	min      Level
	out      *log.Logger
	suppress []string
}

// New returns a Logger that writes messages at or above min to w, in the
// form "LEVEL msg key=value key=value...". suppress lists message strings
// to drop entirely regardless of level, mirroring the teacher's logSuppress
// mechanism for silencing expected-but-noisy conditions.
func New(min Level, w io.Writer, suppress ...string) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &stdLogger{min: min, out: log.New(w, "", log.LstdFlags), suppress: suppress}
}

func (l *stdLogger) log(level Level, msg string, params ...interface{}) {
	if level < l.min {
		return
	}
	for _, s := range l.suppress {
		if s == msg {
			return
		}
	}
	line := fmt.Sprintf("%s %s", level, msg)
	for i := 0; i+1 < len(params); i += 2 {
		line += fmt.Sprintf(" %v=%v", params[i], params[i+1])
	}
	l.out.Println(line)
}

func (l *stdLogger) Debug(msg string, params ...interface{})   { l.log(Debug, msg, params...) }
func (l *stdLogger) Info(msg string, params ...interface{})    { l.log(Info, msg, params...) }
func (l *stdLogger) Warning(msg string, params ...interface{}) { l.log(Warning, msg, params...) }
func (l *stdLogger) Error(msg string, params ...interface{})   { l.log(Error, msg, params...) }
func (l *stdLogger) Fatal(msg string, params ...interface{}) {
	l.log(Fatal, msg, params...)
	os.Exit(1)
}
