// Package console plays the game in a terminal UI.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/zarya/pkg/chat"
)

const inputBuffer = 16

// Transport runs a BubbleTea program. Typed commands are queued for RequestLine; output lines
// are sent into the program, paced rune by rune.
type Transport struct {
	program *tea.Program
	lines   chan string
	done    chan struct{}
	once    sync.Once
	rng     chat.Rand
	sleep   func(ctx context.Context, d time.Duration) error
}

// New creates the program. opts are passed to tea.NewProgram.
func New(rng chat.Rand, opts ...tea.ProgramOption) *Transport {
	lines := make(chan string, inputBuffer)
	t := &Transport{
		lines: lines,
		done:  make(chan struct{}),
		rng:   rng,
	}
	t.sleep = t.sleepUnlessDone
	t.program = tea.NewProgram(newModel(lines), opts...)
	return t
}

// Run blocks until the UI exits.
func (t *Transport) Run() error {
	defer t.finish()
	if _, err := t.program.Run(); err != nil {
		return fmt.Errorf("error running console: %w", err)
	}
	return nil
}

// Quit asks the UI to exit.
func (t *Transport) Quit() {
	t.program.Quit()
}

// Done is closed once the UI has exited.
func (t *Transport) Done() <-chan struct{} {
	return t.done
}

func (t *Transport) finish() {
	t.once.Do(func() { close(t.done) })
}

func (t *Transport) RequestLine(ctx context.Context) (string, error) {
	select {
	case line := <-t.lines:
		return line, nil
	case <-t.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *Transport) Display(ctx context.Context, line chat.Line, skip bool) error {
	select {
	case <-t.done:
		return io.EOF
	default:
	}

	if line.Instant(skip) {
		t.program.Send(outputMsg{text: line.Text, done: true})
		return nil
	}
	for _, r := range line.Text {
		if err := t.sleep(ctx, line.Pace.Delay(t.rng)); err != nil {
			return err
		}
		t.program.Send(outputMsg{text: string(r)})
	}
	t.program.Send(outputMsg{done: true})
	return nil
}

func (t *Transport) sleepUnlessDone(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-t.done:
		return io.EOF
	case <-ctx.Done():
		return ctx.Err()
	}
}
