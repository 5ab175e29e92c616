// Command smoketest spells every integer listed in a file and checks the
// numwords invariants on each result.
//
// The input holds one integer per line; blank lines and lines starting with
// '#' are skipped. The reviewed golden spellings embedded in package data are
// checked first. Run from the project root:
//
//	go run ./cmd/smoketest numbers.txt
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tungbeier/number-to-word/data"
	"github.com/tungbeier/number-to-word/internal/observability"
)

const (
	maxWorkers   = 4
	batchSize    = 1024
	expectedArgs = 2
)

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", os.Args[0])
		os.Exit(1)
	}

	logger, err := observability.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoketest: build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	path := os.Args[1]
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		logger.Error("open input", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}
	values, err := readNumbers(f, logger)
	_ = f.Close()
	if err != nil {
		logger.Error("read input", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	stats := newStats()
	if err := checkGolden(data.NumwordsGolden, stats, logger); err != nil {
		logger.Error("golden data", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("checking numbers", zap.Int("count", len(values)), zap.Int("workers", maxWorkers))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for lo := 0; lo < len(values); lo += batchSize {
		hi := min(lo+batchSize, len(values))
		wg.Add(1)
		semaphore <- struct{}{}
		go func(batch []int64) {
			defer wg.Done()
			defer func() { <-semaphore }()
			for _, n := range batch {
				stats.record(n, checkNumber(n), logger)
			}
		}(values[lo:hi])
	}

	wg.Wait()

	stats.elapsed = time.Since(start)
	printStats(os.Stdout, stats)
	if stats.failures > 0 || stats.goldenFail > 0 {
		os.Exit(1)
	}
}

// readNumbers parses one int64 per line. Malformed lines are logged and
// skipped.
func readNumbers(r io.Reader, logger *zap.Logger) ([]int64, error) {
	var values []int64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			logger.Warn("skipping malformed line", zap.Int("line", line), zap.String("text", text))
			continue
		}
		values = append(values, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return values, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Golden OK:               %d\n", stats.goldenOK)
	fmt.Fprintf(w, "Golden FAIL:             %d\n", stats.goldenFail)
	fmt.Fprintf(w, "Numbers checked:         %d\n", stats.checked)
	fmt.Fprintf(w, "Invariant failures:      %d\n", stats.failures)
	fmt.Fprintf(w, "Total words:             %d\n", stats.totalWords)
	fmt.Fprintf(w, "Longest spelling:        %d bytes (%d)\n", stats.longestLen, stats.longest)
	fmt.Fprintf(w, "Elapsed:                 %s\n", stats.elapsed.Round(time.Millisecond))
}
