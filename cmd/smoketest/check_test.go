package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tungbeier/number-to-word/data"
)

func TestCheckNumberClean(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 7, -21, 1001, 3211, 2_176_045, math.MaxInt64, math.MinInt64} {
		require.Empty(t, checkNumber(n), "number %d", n)
	}
}

func TestReadNumbers(t *testing.T) {
	t.Parallel()

	input := "# header\n1\n\n  -21  \nseven\n9223372036854775807\n"
	values, err := readNumbers(strings.NewReader(input), zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []int64{1, -21, math.MaxInt64}, values)
}

func TestCheckGoldenEmbedded(t *testing.T) {
	t.Parallel()

	stats := newStats()
	require.NoError(t, checkGolden(data.NumwordsGolden, stats, zap.NewNop()))
	require.NotZero(t, stats.goldenOK)
	require.Zero(t, stats.goldenFail)
}

func TestCheckGoldenMismatch(t *testing.T) {
	t.Parallel()

	raw := []byte(`[{"name":"wrong","input":5,"words":"six","signed":"six"}]`)
	stats := newStats()
	require.NoError(t, checkGolden(raw, stats, zap.NewNop()))
	require.Equal(t, 1, stats.goldenFail)

	require.Error(t, checkGolden([]byte("{"), newStats(), zap.NewNop()))
}

func TestRecordAndPrintStats(t *testing.T) {
	t.Parallel()

	stats := newStats()
	stats.record(21, nil, zap.NewNop())
	stats.record(3211, nil, zap.NewNop())
	stats.record(5, []string{"synthetic"}, zap.NewNop())

	require.Equal(t, 3, stats.checked)
	require.Equal(t, 1, stats.failures)
	require.Equal(t, int64(3211), stats.longest)
	require.Equal(t, 1+6+1, stats.totalWords)

	var out bytes.Buffer
	printStats(&out, stats)
	require.Contains(t, out.String(), "Numbers checked:         3")
	require.Contains(t, out.String(), "Invariant failures:      1")
}
