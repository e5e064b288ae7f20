package th

import (
	"fmt"
	"runtime"
)

// AllocMeter measures heap allocation from the moment it was started.
type AllocMeter struct {
	bytes   uint64
	objects uint64
}

func StartAlloc() AllocMeter {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return AllocMeter{bytes: ms.TotalAlloc, objects: ms.Mallocs}
}

// Since returns the bytes and objects allocated since m was started.
func (m AllocMeter) Since() (bytes, objects uint64) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.TotalAlloc - m.bytes, ms.Mallocs - m.objects
}

// Report describes what an index over n bits allocated since m was
// started, including its cost per indexed bit.
func (m AllocMeter) Report(n uint64) string {
	bytes, objects := m.Since()
	perBit := 0.0
	if n > 0 {
		perBit = float64(bytes*8) / float64(n)
	}
	return fmt.Sprintf("%s in %d objects, %.4f bits per bit", ByteSize(bytes), objects, perBit)
}

var byteUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// ByteSize formats v as a byte count, with a binary unit once it reaches
// one KiB.
func ByteSize(v uint64) string {
	if v < 1024 {
		return fmt.Sprintf("%d B", v)
	}
	f := float64(v)
	unit := ""
	for _, u := range byteUnits {
		if f < 1024 {
			break
		}
		f /= 1024
		unit = u
	}
	return fmt.Sprintf("%.2f %s", f, unit)
}
