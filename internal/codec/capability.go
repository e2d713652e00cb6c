package codec

import (
	"sort"
	"sync"
	"sync/atomic"
)

var (
	capOnce sync.Once
	capSet  []string

	// probeCount is observable by tests to prove the probe runs once.
	probeCount atomic.Int32
)

// Supported returns the MIME types this process can both decode and encode.
// The set reflects installed build capabilities, not external state, so it is
// probed once and held for the process lifetime. Callers get a copy.
func Supported() []string {
	capOnce.Do(probe)
	out := make([]string, len(capSet))
	copy(out, capSet)
	return out
}

// IsSupported reports whether the format is usable in this build.
func IsSupported(f Format) bool {
	capOnce.Do(probe)
	for _, m := range capSet {
		if m == table[f].mime {
			return true
		}
	}
	return false
}

func probe() {
	probeCount.Add(1)
	for f := Format(0); f < numFormats; f++ {
		e := &table[f]
		if e.decode == nil || !e.encoderReady() {
			continue
		}
		capSet = append(capSet, e.mime)
	}
	sort.Strings(capSet)
}
