package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tungbeier/number-to-word/numwords"
)

const goldenSign = "minus"

// Stats aggregates check results across workers.
type Stats struct {
	mu         sync.Mutex
	checked    int
	failures   int
	totalWords int
	longest    int64
	longestLen int
	goldenOK   int
	goldenFail int
	elapsed    time.Duration
}

func newStats() *Stats {
	return &Stats{}
}

type goldenCase struct {
	Name   string `json:"name"`
	Input  int64  `json:"input"`
	Words  string `json:"words"`
	Signed string `json:"signed"`
}

// checkNumber spells n and returns the invariants it violates.
func checkNumber(n int64) []string {
	var problems []string

	words := numwords.Speak(n)
	if words == "" {
		return []string{"empty spelling"}
	}
	if n != 0 && strings.Contains(words, "zero") {
		problems = append(problems, "zero in non-zero spelling")
	}
	if strings.Contains(words, "  ") || strings.TrimSpace(words) != words {
		problems = append(problems, "stray whitespace")
	}
	if strings.HasSuffix(words, ",") || strings.HasSuffix(words, " and") {
		problems = append(problems, "dangling separator")
	}
	if n != math.MinInt64 && numwords.Speak(-n) != words {
		problems = append(problems, "sign asymmetry")
	}
	if within, err := numwords.SpeakWithin(n, numwords.Unbounded); err != nil || within != words {
		problems = append(problems, "unbounded mismatch")
	}
	return problems
}

func (s *Stats) record(n int64, problems []string, logger *zap.Logger) {
	words := numwords.Speak(n)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checked++
	s.totalWords += len(strings.Fields(words))
	if len(words) > s.longestLen {
		s.longestLen = len(words)
		s.longest = n
	}
	if len(problems) > 0 {
		s.failures++
		logger.Warn("invariant failure",
			zap.Int64("number", n),
			zap.String("words", words),
			zap.Strings("problems", problems),
		)
	}
}

// checkGolden compares each reviewed spelling in raw with the current output.
func checkGolden(raw []byte, stats *Stats, logger *zap.Logger) error {
	var cases []goldenCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return fmt.Errorf("parse golden data: %w", err)
	}

	for _, tc := range cases {
		words := numwords.Speak(tc.Input)
		signed := numwords.SpeakSigned(tc.Input, goldenSign)
		if words == tc.Words && signed == tc.Signed {
			stats.goldenOK++
			continue
		}
		stats.goldenFail++
		logger.Warn("golden mismatch",
			zap.String("name", tc.Name),
			zap.Int64("input", tc.Input),
			zap.String("got", words),
			zap.String("want", tc.Words),
		)
	}
	return nil
}
