// Unexported conversion functions for English number-to-text conversion.
package numwords

import "strings"

const growSpeak = 96 // estimated bytes for a multi-group conversion

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(^n) + 1
	}
	return uint64(n)
}

// speak converts a magnitude to English cardinal text.
func speak(n uint64) string {
	if n < twenty {
		return ones[n]
	}

	var b strings.Builder
	b.Grow(growSpeak)
	writeWords(&b, n)
	return b.String()
}

// writeWords writes the words for n into b, recursing on the multiplier and
// remainder of each scale group. Depth is bounded by len(bands) + 2.
func writeWords(b *strings.Builder, n uint64) {
	switch {
	case n < twenty:
		b.WriteString(ones[n])

	case n < hundred:
		b.WriteString(tens[n/ten])
		if rest := n % ten; rest != 0 {
			b.WriteByte('-')
			b.WriteString(ones[rest])
		}

	case n < thousand:
		b.WriteString(ones[n/hundred])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if rest := n % hundred; rest != 0 {
			b.WriteString(" and ")
			writeWords(b, rest)
		}

	default:
		band := bandFor(n)
		// The multiplier always goes through the general path, even for
		// exact multiples like 5_000.
		writeWords(b, n/band.divisor)
		b.WriteByte(' ')
		b.WriteString(band.word)

		rest := n % band.divisor
		switch {
		case rest == 0:
		case rest < band.lower:
			b.WriteString(" and ")
			writeWords(b, rest)
		default:
			b.WriteString(", ")
			writeWords(b, rest)
		}
	}
}

// bandFor returns the scale band containing n. Callers must ensure
// n >= thousand.
func bandFor(n uint64) scaleBand {
	for _, band := range bands {
		if n < band.threshold {
			return band
		}
	}
	return bands[len(bands)-1]
}
