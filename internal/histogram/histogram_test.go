package histogram

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFile = `# total_count: 100
# comment line, ignored
0 1024 40
1024 4096 30
4096 1048576 30
`

func TestParseFile_Basic(t *testing.T) {
	h, err := ParseFile(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Equal(t, uint64(100), h.TotalCount)
	require.Len(t, h.Bins, 3)

	require.InDelta(t, 0.40, h.Bins[0].CumuFraction, 1e-9)
	require.InDelta(t, 0.70, h.Bins[1].CumuFraction, 1e-9)
	require.InDelta(t, 1.00, h.Bins[2].CumuFraction, 1e-9)
}

func TestParseFile_MissingTotalCount(t *testing.T) {
	_, err := ParseFile(strings.NewReader("0 10 5\n"))
	require.ErrorIs(t, err, ErrMissingTotalCount)
}

func TestParseFile_TooManyBins(t *testing.T) {
	var b strings.Builder
	b.WriteString("# total_count: 5100\n")
	for i := 0; i < 51; i++ {
		b.WriteString("0 10 100\n")
	}
	_, err := ParseFile(strings.NewReader(b.String()))
	require.ErrorIs(t, err, ErrTooManyBins)
}

func TestParseFile_MalformedLine(t *testing.T) {
	_, err := ParseFile(strings.NewReader("# total_count: 10\nnot-a-bin-line\n"))
	require.Error(t, err)
}

func TestHistogram_Sample_WithinDeclaredRange(t *testing.T) {
	h, err := ParseFile(strings.NewReader(sampleFile))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		size := h.Sample(rng)
		require.GreaterOrEqual(t, size, uint64(1))
		require.LessOrEqual(t, size, h.Bins[len(h.Bins)-1].Max)
	}
}

func TestHistogram_Sample_Deterministic(t *testing.T) {
	h, err := ParseFile(strings.NewReader(sampleFile))
	require.NoError(t, err)

	a := h.Sample(rand.New(rand.NewSource(55)))
	b := h.Sample(rand.New(rand.NewSource(55)))
	require.Equal(t, a, b)
}

func TestWriteStats_HeaderAndSortedRows(t *testing.T) {
	stats := map[uint64]ComboStat{
		0: {Count: 5, Bytes: 500},
		1: {Count: 2, Bytes: 200},
		2: {Count: 9, Bytes: 900},
	}

	var buf bytes.Buffer
	err := WriteStats(&buf, 4, 2, stats)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 rows
	require.Equal(t, "6 3", lines[0])
	require.Equal(t, "2 200", lines[1])
	require.Equal(t, "5 500", lines[2])
	require.Equal(t, "9 900", lines[3])
}

func TestComboIndex_MatchesCombIndex(t *testing.T) {
	idx := ComboIndex([]uint32{3, 1})
	require.Equal(t, uint64(4), idx)
}
