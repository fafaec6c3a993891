package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	out   io.Writer
	debug bool
}

// New returns a logger writing to stdout. Debug messages are dropped.
func New() Logger {
	return &logger{out: os.Stdout}
}

// NewWithWriter returns a logger writing to w, optionally including
// debug messages.
func NewWithWriter(w io.Writer, debug bool) Logger {
	return &logger{out: w, debug: debug}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.out, "[DEBUG]\t"+format+"\n", args...)
}

// Fatal logs str and exits the process.
func (l *logger) Fatal(str string) {
	fmt.Fprintf(l.out, "[FATAL]\t%s\n", str)
	os.Exit(1)
}
