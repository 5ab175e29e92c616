// Package numwords converts integers to English cardinal text.
//
// The package follows British-style English numbering:
//
//   - Zero through nineteen are single words; twenty-one to ninety-nine
//     join tens and units with a hyphen.
//   - Hundred, thousand, million and the larger scale words are always
//     singular ("six hundred and thirty-five").
//   - "and" joins a hundreds digit to its two-digit remainder, and a scale
//     group to a remainder below the next lower scale ("five thousand and
//     two", "one million and twenty-one").
//   - A comma separates a scale group from a remainder that spans a lower
//     scale group ("three thousand, two hundred and eleven").
//
// Speak covers the whole int64 range, up to "quintillion". SpeakWithin
// applies one of the legacy ceilings and reports an [*UnsupportedNumberError]
// for numbers at or above it.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The sign is not spelled; negative numbers produce the words of their
//     absolute value. Use SpeakSigned to prefix a sign word.
//   - Decimals and ordinals are not supported.
package numwords

import (
	"fmt"
	"strings"
)

// Limit selects the largest magnitude SpeakWithin accepts.
type Limit int

const (
	// Unbounded accepts every int64, including math.MinInt64.
	Unbounded Limit = iota

	// BelowBillion rejects magnitudes of one billion and above.
	BelowBillion

	// BelowQuintillion rejects magnitudes of one quintillion and above.
	BelowQuintillion
)

// Speak returns the English cardinal text for the absolute value of n.
// Zero returns "zero".
func Speak(n int64) string {
	return speak(magnitude(n))
}

// SpeakWithin returns the English cardinal text for the absolute value of n,
// or an *UnsupportedNumberError when the magnitude reaches the ceiling of
// limit.
func SpeakWithin(n int64, limit Limit) (string, error) {
	ceiling, ok := ceilings[limit]
	if !ok {
		return "", fmt.Errorf("numwords: unknown limit %d", int(limit))
	}
	if ceiling != 0 && magnitude(n) >= ceiling {
		return "", &UnsupportedNumberError{Number: n, Ceiling: ceiling}
	}
	return Speak(n), nil
}

// SpeakSigned returns Speak(n) prefixed with word and a space when n is
// negative. An empty word behaves like Speak.
func SpeakSigned(n int64, word string) string {
	if n >= 0 || word == "" {
		return Speak(n)
	}
	return word + " " + Speak(n)
}

// ParseLimit returns the Limit named by s: "unbounded", "billion" or
// "quintillion". Matching ignores case and surrounding whitespace; an empty
// string selects Unbounded.
func ParseLimit(s string) (Limit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", limitNames[Unbounded]:
		return Unbounded, nil
	case limitNames[BelowBillion]:
		return BelowBillion, nil
	case limitNames[BelowQuintillion]:
		return BelowQuintillion, nil
	}
	return Unbounded, fmt.Errorf("numwords: unknown limit %q", s)
}

// String returns the configuration name of l.
func (l Limit) String() string {
	if name, ok := limitNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Limit(%d)", int(l))
}
