// Package game runs Zarya sessions: the turn loop, the command handlers and the item behaviors.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/zarya/internal/logger"
	"github.com/jwebster45206/zarya/internal/metrics"
	"github.com/jwebster45206/zarya/pkg/actor"
	"github.com/jwebster45206/zarya/pkg/chat"
	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/state"
	"github.com/jwebster45206/zarya/pkg/textfilter"
	"github.com/jwebster45206/zarya/pkg/world"
)

// Transport delivers player input and renders output.
type Transport interface {
	// RequestLine blocks until the player sends a line.
	RequestLine(ctx context.Context) (string, error)
	// Display renders one line. skip asks for instant output unless the line is forced.
	Display(ctx context.Context, line chat.Line, skip bool) error
}

// Journal is the append-only sink for player input.
type Journal interface {
	Record(ctx context.Context, sessionID uuid.UUID, line string) error
}

// Fetcher loads a URL for the laptop browser.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Dice rolls dice notation such as "1d10" or "2d6+3". *d20.Roller satisfies it.
type Dice interface {
	Roll(notation string) (d20.RollOutcome, error)
}

// Deps are the collaborators a session talks to. Journal and Fetcher may be nil.
type Deps struct {
	Strings   *locale.Strings
	Transport Transport
	Journal   Journal
	Fetcher   Fetcher
	Dice      Dice
	Logger    *slog.Logger
}

type Config struct {
	Version  string
	MaxDepth int  // Nested text games allowed below the outermost session; 0 disables them
	Skip     bool // Start with instant output
}

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeQuit     Outcome = "quit"
	OutcomeGameOver Outcome = "game_over"
	OutcomeAborted  Outcome = "aborted" // The transport or context gave out
)

// Session is one run of the turn loop. Sessions are not safe for concurrent use; a nested text
// game is a child session run synchronously from the laptop.
type Session struct {
	cfg     Config
	deps    Deps
	strs    *locale.Strings
	gs      *state.GameState
	names   *textfilter.Filter
	logger  *slog.Logger
	outcome Outcome
	err     error // First collaborator error; once set all further output is dropped
}

// NewSession builds a fresh station and player.
func NewSession(cfg Config, deps Deps) (*Session, error) {
	return newSession(cfg, deps, 0)
}

func newSession(cfg Config, deps Deps, depth int) (*Session, error) {
	if deps.Strings == nil {
		return nil, errors.New("session needs strings")
	}
	if deps.Transport == nil {
		return nil, errors.New("session needs a transport")
	}
	if deps.Dice == nil {
		return nil, errors.New("session needs dice")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}

	w := world.NewStation(deps.Strings)
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid station: %w", err)
	}

	gs := state.NewGameState(w, actor.NewPlayer(deps.Strings.DefaultPlayerName()))
	gs.Depth = depth
	gs.Skip = cfg.Skip

	return &Session{
		cfg:    cfg,
		deps:   deps,
		strs:   deps.Strings,
		gs:     gs,
		names:  textfilter.New(deps.Strings.FilterWords(), deps.Strings.Tag()),
		logger: logger.WithSession(deps.Logger, gs.ID, depth),
	}, nil
}

// State exposes the session's game state, mainly for tests and tooling.
func (s *Session) State() *state.GameState {
	return s.gs
}

// Run plays the session until the player quits, the game ends, or a collaborator fails. The
// returned error is non-nil only in the last case.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	depth := strconv.Itoa(s.gs.Depth)
	metrics.SessionsActive.WithLabelValues(depth).Inc()
	defer metrics.SessionsActive.WithLabelValues(depth).Dec()

	s.logger.Info("Session started", "player", s.gs.Player.Name)

	s.banner(ctx)
	for s.running() {
		s.turn(ctx)
	}

	if s.err != nil {
		s.outcome = OutcomeAborted
	}
	metrics.SessionsTotal.WithLabelValues(string(s.outcome)).Inc()

	if s.err != nil {
		logger.WithError(s.logger, s.err).Error("Session aborted")
		return s.outcome, fmt.Errorf("session %s: %w", s.gs.ID, s.err)
	}
	s.logger.Info("Session ended", "outcome", s.outcome, "date", s.gs.Clock.Date())
	return s.outcome, nil
}

func (s *Session) running() bool {
	return s.outcome == OutcomeNone && s.err == nil
}

func (s *Session) banner(ctx context.Context) {
	s.fast(ctx, s.strs.Msg(locale.MsgBannerVersion, s.cfg.Version))
	s.fast(ctx, s.strs.Msg(locale.MsgBannerReport))
	s.spacer(ctx)
	s.say(ctx, s.strs.Msg(locale.MsgDate, s.gs.Clock.Date()))
	s.say(ctx, s.strs.Msg(locale.MsgHelpHint))
}

// turn advances the clock, reads one command and dispatches it.
func (s *Session) turn(ctx context.Context) {
	s.gs.Tick()
	s.spacer(ctx)
	raw, ok := s.ask(ctx)
	if !ok {
		return
	}
	s.spacer(ctx)

	cmd := state.ParseCommand(s.strs.Lower(raw), raw)
	label := string(cmd.Type)
	if cmd.Type == state.CmdNone {
		label = "invalid"
	}
	metrics.TurnsTotal.WithLabelValues(label).Inc()
	s.logger.Debug("Command matched", "command", label, "keyword", cmd.Keyword, "arg", cmd.Arg)

	s.dispatch(ctx, cmd)
}

// ask reads one line from the transport and journals it. It reports false once the session can no
// longer read input.
func (s *Session) ask(ctx context.Context) (string, bool) {
	if s.err != nil {
		return "", false
	}
	line, err := s.deps.Transport.RequestLine(ctx)
	if err != nil {
		s.err = fmt.Errorf("request line: %w", err)
		return "", false
	}
	if s.deps.Journal != nil {
		if err := s.deps.Journal.Record(ctx, s.gs.ID, line); err != nil {
			metrics.JournalErrors.Inc()
			logger.WithError(s.logger, err).Warn("Failed to journal input")
		}
	}
	return line, true
}

// askLower is ask with the line trimmed and case-folded for matching.
func (s *Session) askLower(ctx context.Context) (string, bool) {
	line, ok := s.ask(ctx)
	if !ok {
		return "", false
	}
	return s.strs.Lower(trim(line)), true
}
