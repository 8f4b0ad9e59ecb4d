// Package rlog provides the small leveled logging helpers used throughout
// the renderer for non-fatal warnings and lifecycle notices.
package rlog

import (
	"log"
	"sync/atomic"
)

const (
	levelInfo int32 = iota
	levelWarn
	levelError
)

var threshold int32 = levelInfo

// SetLevel sets the minimum level that Infof/Warnf/Errorf will actually
// emit. Unrecognized names fall back to "info". Valid names: "info",
// "warn", "error".
func SetLevel(name string) {
	switch name {
	case "warn":
		atomic.StoreInt32(&threshold, levelWarn)
	case "error":
		atomic.StoreInt32(&threshold, levelError)
	default:
		atomic.StoreInt32(&threshold, levelInfo)
	}
}

func Infof(format string, args ...interface{}) {
	if atomic.LoadInt32(&threshold) <= levelInfo {
		log.Printf("[info] "+format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if atomic.LoadInt32(&threshold) <= levelWarn {
		log.Printf("[warn] "+format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if atomic.LoadInt32(&threshold) <= levelError {
		log.Printf("[error] "+format, args...)
	}
}
