package grid

import (
	"math/bits"
	"strings"
)

// Mask is a candidate set for one cell, packed into 9 bits.
// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
// This allows for O(1) membership tests, removal, and cardinality.
type Mask uint16

// Full is the candidate set containing every digit 1-9.
const Full Mask = 1<<9 - 1

// MaskOf returns the singleton candidate set {digit}.
func MaskOf(digit int) Mask {
	return 1 << (digit - 1)
}

// Has reports whether digit is still a candidate.
func (m Mask) Has(digit int) bool {
	return m&MaskOf(digit) != 0
}

// Without returns the set with digit removed.
func (m Mask) Without(digit int) Mask {
	return m &^ MaskOf(digit)
}

// Count returns the number of candidates in the set.
func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m))
}

// Single returns the sole candidate of a singleton set, or 0 otherwise.
func (m Mask) Single() int {
	if m.Count() != 1 {
		return 0
	}
	return bits.TrailingZeros16(uint16(m)) + 1
}

// Digits returns the candidates in ascending order.
func (m Mask) Digits() []int {
	digits := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if m.Has(d) {
			digits = append(digits, d)
		}
	}
	return digits
}

// String returns the candidates as a digit string, e.g. "2357".
func (m Mask) String() string {
	var sb strings.Builder
	sb.Grow(9)
	for d := 1; d <= 9; d++ {
		if m.Has(d) {
			sb.WriteByte('0' + byte(d))
		}
	}
	return sb.String()
}
