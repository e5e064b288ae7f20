package broadword

const (
	onesStep4 = 0x1111111111111111
	onesStep8 = 0x0101010101010101
	msbsStep8 = 0x80 * onesStep8
)

// popcountTable[b] is the number of set bits in byte b.
var popcountTable [256]uint8

// selectInByte[b | r<<8] is the position of the (r+1)-th set bit of byte b,
// or 8 when b has r or fewer set bits.
var selectInByte [256 * 8]uint8

// overflow[k] holds 127-k in every byte, so that adding it to a cumulative
// byte count c sets the byte's high bit exactly when c > k.
var overflow [64]uint64

func init() {
	for b := 0; b < 256; b++ {
		c := 0
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				c++
			}
		}
		popcountTable[b] = uint8(c)

		for r := 0; r < 8; r++ {
			selectInByte[b|r<<8] = 8
		}
		r := 0
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				selectInByte[b|r<<8] = uint8(i)
				r++
			}
		}
	}
	for k := 0; k < 64; k++ {
		overflow[k] = uint64(127-k) * onesStep8
	}
}
