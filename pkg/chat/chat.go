package chat

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Pace is the typing speed a transport should use when rendering a line.
type Pace int

const (
	PaceNormal  Pace = iota // 10-30ms per character
	PaceSlow                // 50-100ms per character, for dramatic lines
	PaceFast                // 10ms per character, for lists
	PaceInstant             // no delay
)

// Rand is the subset of math/rand/v2 used for pacing and dice.
type Rand interface {
	IntN(n int) int
}

// Line is one piece of output with its pacing hint.
type Line struct {
	Text  string `json:"text"`
	Pace  Pace   `json:"pace"`
	Force bool   `json:"force,omitempty"` // Typed out even when the player asked to skip
}

// Spacer is the blank separator printed around each turn's input.
func Spacer() Line {
	return Line{Pace: PaceInstant}
}

// Instant reports whether the line should be shown without delay.
func (l Line) Instant(skip bool) bool {
	return l.Pace == PaceInstant || (skip && !l.Force)
}

// Delay returns the per-character delay for a pace.
func (p Pace) Delay(rng Rand) time.Duration {
	switch p {
	case PaceNormal:
		return time.Duration(10+rng.IntN(3)*10) * time.Millisecond
	case PaceSlow:
		return time.Duration(50+rng.IntN(6)*10) * time.Millisecond
	case PaceFast:
		return 10 * time.Millisecond
	default:
		return 0
	}
}

// Chunks splits text into pieces of at most limit bytes, preferring to break at newlines and
// never splitting a rune.
func Chunks(text string, limit int) []string {
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}
	var out []string
	for len(text) > limit {
		cut := strings.LastIndexByte(text[:limit], '\n')
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(text)
			}
		}
		out = append(out, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		out = append(out, text)
	}
	return out
}
