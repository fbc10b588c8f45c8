// Package fpbits decomposes the IEEE 754 binary encoding of a
// double-precision value into sign, exponent and mantissa fields, for both
// the 32-bit and 64-bit layouts, together with display-ready serializations
// of every field.
//
// One double-precision value is the canonical in-memory representation. The
// 32-bit view is always derived from it by narrowing (round to nearest, ties
// to even), never by a separate parse, so the two views of the same input
// can never disagree.
//
// Every function is pure and total: each double has a defined encoding at
// both widths, so there are no error conditions.
package fpbits

import (
	"fmt"
	"math"
	"strings"
)

// Kind classifies a decoded value. It is derived solely from the exponent
// and mantissa bit patterns, never from the text the value came from.
type Kind int

const (
	Zero Kind = iota
	Subnormal
	Normal
	Infinity
	NaN
)

func (k Kind) String() string {
	switch k {
	case Zero:
		return "Zero"
	case Subnormal:
		return "Subnormal"
	case Normal:
		return "Normal"
	case Infinity:
		return "Infinity"
	case NaN:
		return "NaN"
	}
	return "unknown"
}

// MarshalText renders the kind name for JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Field layout constants for the two widths.
const (
	bias32      = 127
	expMax32    = 0xff
	mantWidth32 = 23
	minExp32    = -126 // fixed exponent of 32-bit subnormals

	bias64      = 1023
	expMax64    = 0x7ff
	mantWidth64 = 52
	minExp64    = -1022 // fixed exponent of 64-bit subnormals
)

// Fields32 is the decomposition of a value encoded as an IEEE 754 binary32.
//
// ExponentUnbiased is non-nil only for Normal (ExponentBits − 127) and
// Subnormal (fixed −126) values. PayloadHex is the zero-padded 6-digit hex
// rendering of the mantissa and is set only when Kind is NaN.
type Fields32 struct {
	Kind         Kind   `json:"kind"`
	SignBit      uint8  `json:"signBit"`
	ExponentBits uint32 `json:"exponentBits"`
	Mantissa     uint32 `json:"mantissa"`

	ExponentUnbiased *int `json:"exponentUnbiased,omitempty"`

	Hex string `json:"hex"` // 8 lowercase hex digits
	Bin string `json:"bin"` // 32 binary digits, no separators

	HexGrouped string `json:"hexGrouped"` // hex in bytes: "3f 80 00 00"
	BinGrouped string `json:"binGrouped"` // bits in 8-bit chunks

	SignBin         string `json:"signBin"`         // 1 bit
	ExponentBin     string `json:"exponentBin"`     // 8 bits
	MantissaBin     string `json:"mantissaBin"`     // 23 bits
	ExponentGrouped string `json:"exponentGrouped"` // 4+4
	MantissaGrouped string `json:"mantissaGrouped"` // 4x5+3, left to right

	PayloadHex string `json:"payloadHex,omitempty"`
}

// Fields64 is the decomposition of a value encoded as an IEEE 754 binary64.
//
// The 52-bit mantissa is carried split at the 32-bit boundary: MantissaHigh
// holds the top 20 bits and MantissaLow the bottom 32. The split is part of
// the contract; consumers that need the full mantissa reassemble it as
// high<<32 | low (see Bits).
type Fields64 struct {
	Kind         Kind   `json:"kind"`
	SignBit      uint8  `json:"signBit"`
	ExponentBits uint32 `json:"exponentBits"`
	MantissaHigh uint32 `json:"mantissaHigh"`
	MantissaLow  uint32 `json:"mantissaLow"`

	ExponentUnbiased *int `json:"exponentUnbiased,omitempty"`

	Hex string `json:"hex"` // 16 lowercase hex digits
	Bin string `json:"bin"` // 64 binary digits, no separators

	HexGrouped string `json:"hexGrouped"`
	BinGrouped string `json:"binGrouped"`

	SignBin         string `json:"signBin"`         // 1 bit
	ExponentBin     string `json:"exponentBin"`     // 11 bits
	MantissaBin     string `json:"mantissaBin"`     // 52 bits
	ExponentGrouped string `json:"exponentGrouped"` // 3+4+4: 11 is not a multiple of 4
	MantissaGrouped string `json:"mantissaGrouped"` // 4x13, left to right

	PayloadHex string `json:"payloadHex,omitempty"` // 13 hex digits when Kind is NaN
}

// ToFloat32Fields encodes v as a binary32 (round to nearest, ties to even)
// and decomposes the encoding.
func ToFloat32Fields(v float64) Fields32 {
	bits := math.Float32bits(float32(v))
	sign := uint8(bits >> 31)
	exp := (bits >> 23) & expMax32
	mant := bits & (1<<mantWidth32 - 1)

	f := Fields32{
		Kind:         classifyKind(uint64(exp), uint64(mant), expMax32),
		SignBit:      sign,
		ExponentBits: exp,
		Mantissa:     mant,
		Hex:          fmt.Sprintf("%08x", bits),
		Bin:          fmt.Sprintf("%032b", bits),
	}
	switch f.Kind {
	case Normal:
		e := int(exp) - bias32
		f.ExponentUnbiased = &e
	case Subnormal:
		e := minExp32
		f.ExponentUnbiased = &e
	}

	f.HexGrouped = chunkLeft(f.Hex, 2)
	f.BinGrouped = chunkLeft(f.Bin, 8)
	f.SignBin = f.Bin[:1]
	f.ExponentBin = f.Bin[1:9]
	f.MantissaBin = f.Bin[9:]
	f.ExponentGrouped = chunkRight(f.ExponentBin, 4)
	f.MantissaGrouped = chunkLeft(f.MantissaBin, 4)
	if f.Kind == NaN {
		f.PayloadHex = fmt.Sprintf("%06x", mant)
	}
	return f
}

// ToFloat64Fields decomposes the binary64 encoding of v.
func ToFloat64Fields(v float64) Fields64 {
	bits := math.Float64bits(v)
	sign := uint8(bits >> 63)
	exp := uint32((bits >> 52) & expMax64)
	mant := bits & (1<<mantWidth64 - 1)

	f := Fields64{
		Kind:         classifyKind(uint64(exp), mant, expMax64),
		SignBit:      sign,
		ExponentBits: exp,
		MantissaHigh: uint32(mant >> 32),
		MantissaLow:  uint32(mant),
		Hex:          fmt.Sprintf("%016x", bits),
		Bin:          fmt.Sprintf("%064b", bits),
	}
	switch f.Kind {
	case Normal:
		e := int(exp) - bias64
		f.ExponentUnbiased = &e
	case Subnormal:
		e := minExp64
		f.ExponentUnbiased = &e
	}

	f.HexGrouped = chunkLeft(f.Hex, 2)
	f.BinGrouped = chunkLeft(f.Bin, 8)
	f.SignBin = f.Bin[:1]
	f.ExponentBin = f.Bin[1:12]
	f.MantissaBin = f.Bin[12:]
	f.ExponentGrouped = chunkRight(f.ExponentBin, 4)
	f.MantissaGrouped = chunkLeft(f.MantissaBin, 4)
	if f.Kind == NaN {
		f.PayloadHex = fmt.Sprintf("%013x", mant)
	}
	return f
}

// Bits reassembles the binary32 encoding from the decomposed fields.
func (f Fields32) Bits() uint32 {
	return uint32(f.SignBit)<<31 | f.ExponentBits<<mantWidth32 | f.Mantissa
}

// Bits reassembles the binary64 encoding from the decomposed fields,
// including the split mantissa.
func (f Fields64) Bits() uint64 {
	mant := uint64(f.MantissaHigh)<<32 | uint64(f.MantissaLow)
	return uint64(f.SignBit)<<63 | uint64(f.ExponentBits)<<mantWidth64 | mant
}

func classifyKind(exp, mant, expMax uint64) Kind {
	switch {
	case exp == 0 && mant == 0:
		return Zero
	case exp == 0:
		return Subnormal
	case exp == expMax && mant == 0:
		return Infinity
	case exp == expMax:
		return NaN
	default:
		return Normal
	}
}

// chunkLeft splits s into space-separated n-wide groups from the left; a
// remainder stays in the last group (23 bits in 4s become 4x5 groups + 3).
func chunkLeft(s string, n int) string {
	var b strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// chunkRight splits s into n-wide groups aligned to the right, so a
// remainder leads (an 11-bit exponent becomes 3+4+4).
func chunkRight(s string, n int) string {
	lead := len(s) % n
	if lead == 0 {
		return chunkLeft(s, n)
	}
	rest := chunkLeft(s[lead:], n)
	if rest == "" {
		return s
	}
	return s[:lead] + " " + rest
}
