package log

import (
	"fmt"
	"sync"
)

// Recorder is a Logger that keeps the most recent lines logged, and
// passes every line on to another Logger.
type Recorder struct {
	next  Logger
	lines []string
	size  int
	mu    sync.Mutex
}

// NewRecorder returns a Recorder keeping up to size lines.
func NewRecorder(next Logger, size int) *Recorder {
	if next == nil {
		next = NewNullLogger()
	}
	return &Recorder{next: next, size: size}
}

func (r *Recorder) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
	if len(r.lines) > r.size {
		r.lines = r.lines[len(r.lines)-r.size:]
	}
}

func (r *Recorder) Infof(format string, args ...interface{}) {
	r.record("[INFO]", format, args...)
	r.next.Infof(format, args...)
}

func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.record("[ERROR]", format, args...)
	r.next.Errorf(format, args...)
}

func (r *Recorder) Debugf(format string, args ...interface{}) {
	r.record("[DEBUG]", format, args...)
	r.next.Debugf(format, args...)
}

func (r *Recorder) Fatal(str string) {
	r.record("[FATAL]", "%s", str)
	r.next.Fatal(str)
}

// Lines returns a copy of the recorded lines, oldest first.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}
