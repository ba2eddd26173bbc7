package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestPace_Delay(t *testing.T) {
	tests := []struct {
		name string
		pace Pace
		rng  fixedRand
		want time.Duration
	}{
		{"normal low", PaceNormal, 0, 10 * time.Millisecond},
		{"normal high", PaceNormal, 9, 30 * time.Millisecond},
		{"slow low", PaceSlow, 0, 50 * time.Millisecond},
		{"slow high", PaceSlow, 9, 100 * time.Millisecond},
		{"fast", PaceFast, 5, 10 * time.Millisecond},
		{"instant", PaceInstant, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pace.Delay(tt.rng))
		})
	}
}

func TestLine_Instant(t *testing.T) {
	assert.True(t, Spacer().Instant(false))
	assert.False(t, Line{Text: "x"}.Instant(false))
	assert.True(t, Line{Text: "x"}.Instant(true))
	assert.False(t, Line{Text: "x", Force: true}.Instant(true))
}

func TestChunks(t *testing.T) {
	assert.Equal(t, []string{"short"}, Chunks("short", 2000))
	assert.Equal(t, []string{"abc", "def"}, Chunks("abc\ndef", 5))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, Chunks("abcdefghij", 4))

	// "°" is two bytes and must not be split.
	chunks := Chunks("aa°bb", 3)
	assert.Equal(t, "aa", chunks[0])
	assert.Equal(t, "aa°bb", strings.Join(chunks, ""))
}
