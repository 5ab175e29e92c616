// Word tables for English number-to-text conversion.
package numwords

import "math"

const (
	ten      uint64 = 10
	twenty   uint64 = 20
	hundred  uint64 = 100
	thousand uint64 = 1_000

	billion     uint64 = 1_000_000_000
	quintillion uint64 = 1_000_000_000_000_000_000

	wordHundred = "hundred"
)

var ones = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// scaleBand describes one named tier. A magnitude n belongs to the first band
// with n < threshold. lower is the divisor of the band below: remainders
// under it are joined with "and", larger ones with a comma.
type scaleBand struct {
	threshold uint64
	divisor   uint64
	word      string
	lower     uint64
}

// bands lists scale tiers from smallest to largest. Hundreds are handled
// separately and are not listed here.
var bands = []scaleBand{
	{threshold: 1_000_000, divisor: thousand, word: "thousand", lower: hundred},
	{threshold: 1_000_000_000, divisor: 1_000_000, word: "million", lower: thousand},
	{threshold: 1_000_000_000_000, divisor: 1_000_000_000, word: "billion", lower: 1_000_000},
	{threshold: 1_000_000_000_000_000, divisor: 1_000_000_000_000, word: "trillion", lower: 1_000_000_000},
	{threshold: quintillion, divisor: 1_000_000_000_000_000, word: "quadrillion", lower: 1_000_000_000_000},
	{threshold: math.MaxUint64, divisor: quintillion, word: "quintillion", lower: 1_000_000_000_000_000},
}

// ceilings maps each Limit to its exclusive magnitude ceiling; 0 means none.
var ceilings = map[Limit]uint64{
	Unbounded:        0,
	BelowBillion:     billion,
	BelowQuintillion: quintillion,
}

var limitNames = map[Limit]string{
	Unbounded:        "unbounded",
	BelowBillion:     "billion",
	BelowQuintillion: "quintillion",
}
