package ledger

import "math/bits"

// BpsDenom is the basis-point scale: 10000 bps = 100%.
const BpsDenom = 10000

// mulDiv computes floor(a*b/c) over a 128-bit intermediate so the product
// never wraps before the division. Truncation toward zero is load-bearing:
// ledger balances depend on this exact rounding, do not "fix" it.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if c == 0 || hi >= c {
		panic("ledger: mulDiv overflow")
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo
}
