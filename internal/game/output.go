package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/zarya/pkg/chat"
)

func (s *Session) display(ctx context.Context, line chat.Line) {
	if s.err != nil {
		return
	}
	if err := s.deps.Transport.Display(ctx, line, s.gs.Skip); err != nil {
		s.err = fmt.Errorf("display: %w", err)
	}
}

func (s *Session) say(ctx context.Context, text string) {
	s.display(ctx, chat.Line{Text: text, Pace: chat.PaceNormal})
}

func (s *Session) fast(ctx context.Context, text string) {
	s.display(ctx, chat.Line{Text: text, Pace: chat.PaceFast})
}

func (s *Session) slow(ctx context.Context, text string) {
	s.display(ctx, chat.Line{Text: text, Pace: chat.PaceSlow})
}

// forced is typed out gradually even with skip on.
func (s *Session) forced(ctx context.Context, text string) {
	s.display(ctx, chat.Line{Text: text, Pace: chat.PaceNormal, Force: true})
}

func (s *Session) spacer(ctx context.Context) {
	s.display(ctx, chat.Spacer())
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
