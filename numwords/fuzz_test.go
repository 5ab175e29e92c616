package numwords

import (
	"strings"
	"testing"
)

// FuzzSpeak verifies that Speak never panics, never returns an empty string
// and ignores the sign of its input.
func FuzzSpeak(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(1_000_000))
	f.Add(int64(1_000_000_000_000_000_000))
	f.Add(int64(-1_000_000_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		got := Speak(n)
		if got == "" {
			t.Fatalf("Speak(%d) returned empty string", n)
		}
		if n != 0 && strings.Contains(got, "zero") {
			t.Errorf("Speak(%d) = %q contains zero", n, got)
		}
		if strings.Contains(got, "  ") || strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
			t.Errorf("Speak(%d) = %q has stray spaces", n, got)
		}
		if n > -9223372036854775808 && Speak(-n) != got {
			t.Errorf("Speak(%d) != Speak(%d)", n, -n)
		}
	})
}

// FuzzSpeakWithin verifies the bounded limits agree with Speak below their
// ceilings and fail at or above them.
func FuzzSpeakWithin(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(999_999_999))
	f.Add(int64(1_000_000_000))
	f.Add(int64(-1_000_000_000))
	f.Add(int64(999_999_999_999_999_999))
	f.Add(int64(1_000_000_000_000_000_000))

	f.Fuzz(func(t *testing.T, n int64) {
		for _, limit := range []Limit{Unbounded, BelowBillion, BelowQuintillion} {
			got, err := SpeakWithin(n, limit)
			ceiling := ceilings[limit]
			if ceiling != 0 && magnitude(n) >= ceiling {
				if err == nil {
					t.Errorf("SpeakWithin(%d, %v) = %q, want error", n, limit, got)
				}
				continue
			}
			if err != nil {
				t.Errorf("SpeakWithin(%d, %v) error: %v", n, limit, err)
				continue
			}
			if got != Speak(n) {
				t.Errorf("SpeakWithin(%d, %v) = %q, want %q", n, limit, got, Speak(n))
			}
		}
	})
}
