package cells

// halfAdd sums all bits of two words simultaneously, returning the per-bit
// sum and carry.
func halfAdd(left, right uint64) (sum, carry uint64) {
	return left ^ right, left & right
}

// fullAdd sums all bits of three words simultaneously, returning the per-bit
// sum and carry.
func fullAdd(left, right, carry uint64) (sum, outCarry uint64) {
	sum = left ^ right ^ carry
	outCarry = (left & right) | (left & carry) | (right & carry)
	return sum, outCarry
}
