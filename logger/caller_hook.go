package logger

import (
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Frames belonging to these packages are never reported as the caller.
var skippedCallers = []string{"sirupsen/logrus", "deribitrpc/logger"}

// callerHook points entry.Caller at the first frame outside logrus and the
// Entry wrappers in this package.
type callerHook struct{}

func (h *callerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *callerHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(6, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !skipped(frame.Function) {
			entry.Caller = &frame
			return nil
		}
		if !more {
			return nil
		}
	}
}

func skipped(fn string) bool {
	for _, prefix := range skippedCallers {
		if strings.Contains(fn, prefix) {
			return true
		}
	}
	return false
}
