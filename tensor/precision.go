package tensor

import "math"

// Precision selects the numeric width applied to every array an analysis
// allocates. Narrower settings reproduce the rounding of reduced-width
// storage: each stored value is quantized by a round trip through the
// target format before use. The zero value is Float64.
type Precision int

const (
	// Float64 stores values at full IEEE 754 binary64 width.
	Float64 Precision = iota

	// Float32 quantizes every stored value through binary32.
	Float32

	// Float16 quantizes every stored value through binary16
	// (round-to-nearest-even).
	Float16
)

// Valid reports whether p is one of the supported precisions.
func (p Precision) Valid() bool {
	return p == Float64 || p == Float32 || p == Float16
}

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// Round quantizes x to the precision's width. NaN and infinities are
// preserved (Float16 overflows to infinity, as binary16 does).
func (p Precision) Round(x float64) float64 {
	switch p {
	case Float32:
		return float64(float32(x))
	case Float16:
		return float64(halfToFloat32(float32ToHalf(float32(x))))
	default:
		return x
	}
}

// RoundSlice quantizes every element of x in place.
func (p Precision) RoundSlice(x []float64) {
	if p == Float64 {
		return
	}

	for i := range x {
		x[i] = p.Round(x[i])
	}
}

// float32ToHalf converts a binary32 value to binary16 bits with
// round-to-nearest-even. Overflow saturates to infinity.
func float32ToHalf(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16((b >> 16) & 0x8000)
	exp := int32((b>>23)&0xff) - 127 + 15
	frac := b & 0x7fffff

	if (b>>23)&0xff == 0xff {
		if frac != 0 {
			return sign | 0x7e00 // NaN
		}

		return sign | 0x7c00 // Inf
	}

	if exp >= 0x1f {
		return sign | 0x7c00
	}

	if exp <= 0 {
		if exp < -10 {
			return sign // underflows to zero
		}

		// Subnormal result: include the implicit leading bit, then
		// shift out with round-to-nearest-even.
		frac |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(frac >> shift)
		rem := frac & (1<<shift - 1)
		halfway := uint32(1) << (shift - 1)

		if rem > halfway || (rem == halfway && half&1 == 1) {
			half++
		}

		return sign | half
	}

	half := sign | uint16(exp)<<10 | uint16(frac>>13)
	rem := frac & 0x1fff

	// Rounding may carry into the exponent; a carry out of the top
	// mantissa bit correctly lands on the next exponent (or infinity).
	if rem > 0x1000 || (rem == 0x1000 && half&1 == 1) {
		half++
	}

	return half
}

// halfToFloat32 converts binary16 bits back to a binary32 value.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	frac := uint32(h & 0x3ff)

	var bits uint32

	switch {
	case exp == 0:
		if frac == 0 {
			bits = sign // signed zero
		} else {
			// Subnormal half: renormalize into binary32.
			e := uint32(113)
			for frac&0x400 == 0 {
				frac <<= 1
				e--
			}

			frac &= 0x3ff
			bits = sign | e<<23 | frac<<13
		}
	case exp == 0x1f:
		bits = sign | 0xff<<23 | frac<<13
	default:
		bits = sign | (exp+112)<<23 | frac<<13
	}

	return math.Float32frombits(bits)
}
