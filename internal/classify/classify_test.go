package classify

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ReferenceLines(t *testing.T) {
	tests := []struct {
		line string
		safe bool
	}{
		{"7 6 4 2 1", true},
		{"1 2 7 8 9", false},
		{"9 7 6 2 1", false},
		{"1 3 2 4 5", false},
		{"8 6 4 4 1", false},
		{"1 3 6 7 9", true},
		{"", true},
		{"   ", true},
		{"5", true},
		{"1 2a 3", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.line), func(t *testing.T) {
			safe, _ := Classify(tt.line)
			assert.Equal(t, tt.safe, safe)
		})
	}
}

func TestExplain_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason Reason
		pair   int
	}{
		{"delta too large", "1 2 7 8 9", ReasonDelta, 2},
		{"delta four", "9 7 6 2 1", ReasonDelta, 3},
		{"direction reversal", "1 3 2 4 5", ReasonDirection, 2},
		{"equal pair mid line", "8 6 4 4 1", ReasonDelta, 3},
		{"format", "1 2a 3", ReasonFormat, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Explain(tt.line)
			assert.False(t, r.Safe)
			assert.Equal(t, tt.reason, r.Reason)
			assert.Equal(t, tt.pair, r.Pair)
		})
	}
}

// Equal adjacent values must be rejected by the delta check, whatever
// direction the line has established.
func TestExplain_EqualValuesRejectedByDelta(t *testing.T) {
	for _, line := range []string{"4 4", "5 5 5", "1 2 2", "3 2 2", "0 0"} {
		t.Run(line, func(t *testing.T) {
			r := Explain(line)
			assert.False(t, r.Safe)
			assert.Equal(t, ReasonDelta, r.Reason)
		})
	}
}

func TestExplain_Direction(t *testing.T) {
	assert.Equal(t, Increasing, Explain("1 2 4 7").Direction)
	assert.Equal(t, Decreasing, Explain("7 4 2 1").Direction)
	assert.Equal(t, DirectionUnknown, Explain("7").Direction)
	assert.Equal(t, DirectionUnknown, Explain("").Direction)
}

func TestClassify_FormatErrors(t *testing.T) {
	lines := []string{
		"1 -2 3",
		"+1 2",
		"1 2.5 3",
		"1e3 1001",
		"1  2",
		"a",
		"1\t2",
		"١ ٢",
	}

	for _, line := range lines {
		t.Run(fmt.Sprintf("%q", line), func(t *testing.T) {
			safe, err := Classify(line)
			assert.False(t, safe)
			require.Error(t, err)
			assert.True(t, IsFormatError(err))
		})
	}
}

func TestClassify_FormatErrorCarriesToken(t *testing.T) {
	_, err := Classify("1 2a 3")
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "2a", fe.Token)
	assert.Equal(t, 1, fe.Index)
	assert.Contains(t, fe.Error(), "invalid integer format")
}

func TestClassify_ShortCircuitsBeforeBadToken(t *testing.T) {
	safe, err := Classify("1 9 x")
	assert.False(t, safe)
	assert.NoError(t, err)
}

func TestClassify_TrimsSurroundingWhitespace(t *testing.T) {
	safe, err := Classify("  1 2 3 \t")
	require.NoError(t, err)
	assert.True(t, safe)
}

func TestClassify_TrimsByteOrderMark(t *testing.T) {
	safe, err := Classify("\ufeff1 2 3")
	require.NoError(t, err)
	assert.True(t, safe)

	assert.Equal(t, []string{"7", "6", "4"}, Tokenize("\ufeff 7 6 4\ufeff"))
}

func TestClassify_SingleToken(t *testing.T) {
	for _, line := range []string{"0", "5", "999999", " 42 "} {
		safe, err := Classify(line)
		require.NoError(t, err)
		assert.True(t, safe, line)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	lines := []string{"7 6 4 2 1", "1 3 2 4 5", "1 2a 3", "", "5 5"}
	for _, line := range lines {
		first, firstErr := Classify(line)
		second, secondErr := Classify(line)
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	}
}

func TestClassify_Overflow(t *testing.T) {
	safe, err := Classify("18446744073709551616 18446744073709551615")
	assert.False(t, safe)
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Error(t, fe.Unwrap())
}

func TestClassify_MaxUint64(t *testing.T) {
	safe, err := Classify("18446744073709551615 18446744073709551613")
	require.NoError(t, err)
	assert.True(t, safe)
}

// Every Safe line with two or more values is strictly monotonic with
// adjacent differences in {1,2,3}.
func TestClassify_SafeLinesAreMonotonic(t *testing.T) {
	var lines []string
	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			for c := 0; c < 8; c++ {
				lines = append(lines, fmt.Sprintf("%d %d %d", a, b, c))
			}
		}
	}

	for _, line := range lines {
		safe, err := Classify(line)
		require.NoError(t, err)
		if !safe {
			continue
		}
		values, err := ParseLine(line)
		require.NoError(t, err)
		increasing := values[1] > values[0]
		for i := 1; i < len(values); i++ {
			if increasing {
				assert.Greater(t, values[i], values[i-1], line)
			} else {
				assert.Less(t, values[i], values[i-1], line)
			}
			diff := int64(values[i]) - int64(values[i-1])
			if diff < 0 {
				diff = -diff
			}
			assert.GreaterOrEqual(t, diff, int64(MinDelta), line)
			assert.LessOrEqual(t, diff, int64(MaxDelta), line)
		}
	}
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize(" \t "))
	assert.Equal(t, []string{"1"}, Tokenize("1"))
	assert.Equal(t, []string{"1", "2", "3"}, Tokenize(" 1 2 3 "))
	assert.Equal(t, []string{"1", "", "2"}, Tokenize("1  2"))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("0042")
	require.NoError(t, err)
	assert.Equal(t, Value(42), v)

	for _, tok := range []string{"", "-1", "+1", "1.0", "1e2", " 1", "x"} {
		_, err := ParseValue(tok)
		assert.True(t, IsFormatError(err), "token %q", tok)
	}
}

func TestEvaluate(t *testing.T) {
	assert.True(t, Evaluate(nil).Safe)
	assert.True(t, Evaluate([]Value{3}).Safe)
	assert.True(t, Evaluate([]Value{1, 2, 5, 8}).Safe)
	assert.False(t, Evaluate([]Value{1, 2, 1}).Safe)
	assert.Equal(t, ReasonDelta, Evaluate([]Value{4, 4}).Reason)
}

func TestClassify_LongLine(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 5000; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", i*2)
	}
	safe, err := Classify(b.String())
	require.NoError(t, err)
	assert.True(t, safe)
}
