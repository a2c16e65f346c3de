// Package generate writes synthetic input files for the validator.
//
// Generated files alternate two kinds of increasing lines, both starting at 1:
//   - even line indices: step drawn uniformly from [1, RandomMaxStep],
//     so roughly half the lines break the delta bound
//   - odd line indices: step drawn uniformly from [1, SafeMaxStep],
//     which always classifies as safe
package generate

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Step bounds for the two line kinds.
const (
	RandomMaxStep = 5
	SafeMaxStep   = 3
)

// NewRand returns a deterministic source for seed, or a randomly seeded one
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Line builds an increasing space-separated sequence of length values
// (at least one) starting at 1, each step drawn from [1, maxStep].
func Line(length, maxStep int, rnd *rand.Rand) string {
	if length < 1 {
		length = 1
	}
	var b strings.Builder
	v := uint64(1)
	b.WriteString("1")
	for i := 1; i < length; i++ {
		v += uint64(rnd.IntN(maxStep)) + 1
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(v, 10))
	}
	return b.String()
}

// RandomLine builds an increasing line with steps in [1, RandomMaxStep].
func RandomLine(length int, rnd *rand.Rand) string {
	return Line(length, RandomMaxStep, rnd)
}

// SafeLine builds an increasing line with steps in [1, SafeMaxStep].
func SafeLine(length int, rnd *rand.Rand) string {
	return Line(length, SafeMaxStep, rnd)
}

// File overwrites path with lines generated lines of numbers values each.
// Lines are separated by '\n' with no trailing newline.
func File(path string, lines, numbers int, rnd *rand.Rand) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for i := 0; i < lines; i++ {
		var line string
		if i%2 == 0 {
			line = RandomLine(numbers, rnd)
		} else {
			line = SafeLine(numbers, rnd)
		}
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if i < lines-1 {
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
