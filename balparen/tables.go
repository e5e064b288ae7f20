package balparen

// byteDelta[b] is the excess change over byte b read from bit 0 up.
var byteDelta [256]int8

// byteMin[b] is the lowest excess reached inside byte b, relative to the
// excess before it.
var byteMin [256]int8

func init() {
	for b := 0; b < 256; b++ {
		e, m := 0, 8
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				e++
			} else {
				e--
			}
			if e < m {
				m = e
			}
		}
		byteDelta[b] = int8(e)
		byteMin[b] = int8(m)
	}
}

// wordExcess returns the excess change over the low nbits bits of w and the
// lowest relative excess reached along the way. nbits must be positive.
func wordExcess(w uint64, nbits uint) (delta, low int64) {
	low = 64
	for ; nbits >= 8; nbits -= 8 {
		b := uint8(w)
		if m := delta + int64(byteMin[b]); m < low {
			low = m
		}
		delta += int64(byteDelta[b])
		w >>= 8
	}
	for ; nbits > 0; nbits-- {
		if w&1 != 0 {
			delta++
		} else {
			delta--
		}
		if delta < low {
			low = delta
		}
		w >>= 1
	}
	return
}
