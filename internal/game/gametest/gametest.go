// Package gametest provides in-memory collaborators for driving game sessions in tests.
package gametest

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/zarya/pkg/chat"
)

// Transport replays a fixed script of input lines and records everything displayed.
// Once the script runs out RequestLine returns io.EOF.
type Transport struct {
	mu     sync.Mutex
	script []string
	output []chat.Line
	skips  []bool
}

func NewTransport(script ...string) *Transport {
	return &Transport{script: script}
}

func (t *Transport) RequestLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.script) == 0 {
		return "", io.EOF
	}
	line := t.script[0]
	t.script = t.script[1:]
	return line, nil
}

func (t *Transport) Display(ctx context.Context, line chat.Line, skip bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output = append(t.output, line)
	t.skips = append(t.skips, skip)
	return nil
}

// Output returns the displayed lines, spacers included.
func (t *Transport) Output() []chat.Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]chat.Line(nil), t.output...)
}

// Texts returns the text of every non-blank displayed line.
func (t *Transport) Texts() []string {
	var out []string
	for _, l := range t.Output() {
		if l.Text != "" {
			out = append(out, l.Text)
		}
	}
	return out
}

// Transcript joins all non-blank output with newlines.
func (t *Transport) Transcript() string {
	return strings.Join(t.Texts(), "\n")
}

// Skips returns the skip flag passed with each displayed line.
func (t *Transport) Skips() []bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]bool(nil), t.skips...)
}

// Remaining is how many scripted lines have not been read yet.
func (t *Transport) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.script)
}

// Journal records input lines in memory. Set Err to make every Record fail.
type Journal struct {
	mu    sync.Mutex
	Err   error
	lines []string
	ids   map[uuid.UUID]int
}

func (j *Journal) Record(_ context.Context, sessionID uuid.UUID, line string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Err != nil {
		return j.Err
	}
	if j.ids == nil {
		j.ids = make(map[uuid.UUID]int)
	}
	j.ids[sessionID]++
	j.lines = append(j.lines, line)
	return nil
}

func (j *Journal) Lines() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.lines...)
}

// Sessions is the number of distinct sessions that recorded input.
func (j *Journal) Sessions() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.ids)
}

// Fetcher answers every fetch with Body, or Err when set.
type Fetcher struct {
	Body []byte
	Err  error
	URLs []string
}

func (f *Fetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.URLs = append(f.URLs, url)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Body, nil
}

// Dice returns its totals in order, cycling, whatever notation is asked for. Rolled records the
// notations. Set Err to make every roll fail.
type Dice struct {
	Totals []int
	Err    error
	Rolled []string
	i      int
}

func NewDice(totals ...int) *Dice {
	return &Dice{Totals: totals}
}

func (d *Dice) Roll(notation string) (d20.RollOutcome, error) {
	d.Rolled = append(d.Rolled, notation)
	if d.Err != nil {
		return d20.RollOutcome{}, d.Err
	}
	if len(d.Totals) == 0 {
		return d20.RollOutcome{Value: 1, DiceRolls: []int{1}}, nil
	}
	v := d.Totals[d.i%len(d.Totals)]
	d.i++
	return d20.RollOutcome{Value: v, DiceRolls: []int{v}}, nil
}
