// bitutil.go contains small bit-twiddling helpers shared by the attack-table
// builder and the move generator.

package chesscore

import "math/bits"

// bitScan returns the index of the least significant set bit. bb must be
// non-zero.
func bitScan(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

// popLSB clears the least significant set bit of *bb and returns its square.
// *bb must be non-zero.
func popLSB(bb *uint64) Square {
	sq := Square(bits.TrailingZeros64(*bb))
	*bb &= *bb - 1
	return sq
}

// popCount returns the number of set bits in bb.
func popCount(bb uint64) int {
	return bits.OnesCount64(bb)
}
