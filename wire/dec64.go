package wire

import "strconv"

// pow10 is a precomputed table of 10^e for e in [0, 128], each entry the
// nearest binary64 value, used by Dec64 decoding so no call to math.Pow is
// needed on the hot path.
var pow10 [129]float64

func init() {
	for e := range pow10 {
		pow10[e], _ = strconv.ParseFloat("1e"+strconv.Itoa(e), 64)
	}
}

// DecodeDec64 decodes an 8-byte little-endian Dec64 value: the high 56 bits
// are a sign-extended coefficient, the low 8 bits are the exponent byte.
// An exponent byte <= 127 is a positive power of ten; > 127 encodes a
// negative exponent as 256-e.
func DecodeDec64(raw int64) float64 {
	coefficient := raw >> 8
	exponent := int(raw & 0xFF)

	if exponent > 127 {
		return float64(coefficient) / pow10[256-exponent]
	}

	return float64(coefficient) * pow10[exponent]
}

// EncodeDec64 packs a coefficient and exponent into the wire's Dec64 int64
// representation. Provided for symmetry and for tests; the client never
// sends Dec64 values over the wire (requests are plain text).
func EncodeDec64(coefficient int64, exponent int8) int64 {
	return (coefficient << 8) | int64(uint8(exponent))
}
