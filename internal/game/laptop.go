package game

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/zarya/internal/browser"
	"github.com/jwebster45206/zarya/internal/logger"
	"github.com/jwebster45206/zarya/internal/metrics"
	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/state"
	"github.com/jwebster45206/zarya/pkg/world"
)

const cancelWord = "cancel"

// useLaptop turns the laptop on and runs its menu until it is turned off or the session ends.
func (s *Session) useLaptop(ctx context.Context, laptop *world.Item) {
	if !laptop.TutorialSeen {
		s.say(ctx, s.strs.Msg(locale.MsgLaptopSticker))
		for _, line := range s.strs.List(locale.ListLaptopTutorial) {
			s.fast(ctx, line)
		}
		laptop.TutorialSeen = true
		s.spacer(ctx)
	}
	s.say(ctx, s.strs.Msg(locale.MsgLaptopOn))
	laptop.Powered = true
	defer func() { laptop.Powered = false }()

	for laptop.Powered && s.running() {
		s.spacer(ctx)
		line, ok := s.askLower(ctx)
		if !ok {
			return
		}
		s.spacer(ctx)

		cmd := state.ParseLaptopCommand(line)
		label := "laptop_" + string(cmd)
		if cmd == state.LaptopNone {
			label = "laptop_invalid"
		}
		metrics.TurnsTotal.WithLabelValues(label).Inc()
		s.logger.Debug("Laptop command", "command", label)

		switch cmd {
		case state.LaptopOff:
			s.say(ctx, s.strs.Msg(locale.MsgLaptopOff))
			laptop.Powered = false
		case state.LaptopBrowse:
			s.browse(ctx)
		case state.LaptopRead:
			s.readFiles(ctx, laptop)
		case state.LaptopMessenger:
			s.messenger(ctx)
		case state.LaptopPlay:
			s.playTextGame(ctx)
		case state.LaptopControl:
			s.controlModule(ctx)
		default:
			s.say(ctx, s.strs.Msg(locale.MsgLaptopInvalid))
		}
	}
}

// browse fetches a URL and reports only whether it worked; there is no screen to show the page on.
func (s *Session) browse(ctx context.Context) {
	s.say(ctx, s.strs.Msg(locale.MsgBrowsePrompt))
	url, ok := s.ask(ctx)
	if !ok {
		return
	}
	if s.deps.Fetcher == nil {
		s.say(ctx, s.strs.Msg(locale.MsgBrowseOffline))
		return
	}

	body, err := s.deps.Fetcher.Fetch(ctx, trim(url))
	switch {
	case err == nil:
		s.logger.Debug("Page fetched", "url", trim(url), "bytes", len(body))
		s.say(ctx, s.strs.Msg(locale.MsgBrowseNoGUI))
		s.say(ctx, s.strs.Msg(locale.MsgBrowseOhWell))
	case errors.Is(err, browser.ErrInvalidURL):
		s.say(ctx, s.strs.Msg(locale.MsgBrowseInvalidURL))
	default:
		s.logger.Debug("Fetch failed", "url", trim(url), "error", err)
		s.say(ctx, s.strs.Msg(locale.MsgBrowseOffline))
	}
}

func (s *Session) readFiles(ctx context.Context, laptop *world.Item) {
	if !laptop.HasFiles() {
		s.say(ctx, s.strs.Msg(locale.MsgFilesNone))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgFilesHeader))
	for _, name := range slices.Sorted(maps.Keys(laptop.Files)) {
		s.say(ctx, s.strs.Msg(locale.MsgFilesEntry, name, laptop.Files[name]))
	}
}

// messenger asks for a contact until one matches or the player cancels, then offers to send one of
// the player's pictures. A sent picture leaves the inventory.
func (s *Session) messenger(ctx context.Context) {
	contacts := s.strs.List(locale.ListContacts)
	s.say(ctx, s.strs.Msg(locale.MsgMessengerContacts))
	for _, c := range contacts {
		s.fast(ctx, c)
	}

	for {
		s.say(ctx, s.strs.Msg(locale.MsgMessengerPrompt))
		contact, ok := s.askLower(ctx)
		if !ok {
			return
		}
		if contact == cancelWord {
			s.say(ctx, s.strs.Msg(locale.MsgMessengerCancelled))
			return
		}
		if slices.Contains(contacts, contact) {
			break
		}
		s.say(ctx, s.strs.Msg(locale.MsgMessengerUnknown))
	}

	s.say(ctx, s.strs.Msg(locale.MsgMessengerPictures))
	s.say(ctx, s.strs.Msg(locale.MsgMessengerWhich))
	name, ok := s.askLower(ctx)
	if !ok {
		return
	}
	s.sendPicture(ctx, name)
}

func (s *Session) sendPicture(ctx context.Context, name string) {
	if !strings.Contains(name, s.strs.Lower(s.strs.Msg(locale.MsgPictureKeyword))) {
		s.say(ctx, s.strs.Msg(locale.MsgPictureNotPicture))
		return
	}
	inv := s.gs.Player.Inventory
	picture, ok := inv.Get(name)
	if !ok {
		s.say(ctx, s.strs.Msg(locale.MsgPictureMissing))
		return
	}
	if picture.Quality <= 0 {
		s.say(ctx, s.strs.Msg(locale.MsgPictureNotPicture))
		return
	}

	perPoint, err := s.roll(likesDice)
	if err != nil {
		logger.WithError(s.logger, err).Error("Failed to count likes")
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgPictureSent))
	likes := picture.Quality * perPoint
	metrics.PictureLikes.Observe(float64(likes))
	s.say(ctx, s.strs.Msg(locale.MsgPictureLikes, likes))
	if _, err := inv.Remove(name); err != nil {
		s.logger.Error("Failed to remove sent picture", "picture", name, "error", err)
	}
}

// playTextGame runs a whole new game inside this one. Whatever ends the inner game, including the
// engines being fired, only ends the inner game.
func (s *Session) playTextGame(ctx context.Context) {
	if s.gs.Depth >= s.cfg.MaxDepth {
		s.say(ctx, s.strs.Msg(locale.MsgNestedLimit))
		return
	}

	cfg := s.cfg
	cfg.Skip = s.gs.Skip
	child, err := newSession(cfg, s.deps, s.gs.Depth+1)
	if err != nil {
		s.logger.Error("Failed to start nested game", "error", err)
		s.say(ctx, s.strs.Msg(locale.MsgLaptopInvalid))
		return
	}

	outcome, err := child.Run(ctx)
	if err != nil {
		s.err = err
		return
	}
	s.logger.Info("Nested game finished", "outcome", outcome, "child_session_id", child.gs.ID.String())
}

// controlModule shows the module readout and, if the player presses the button, ends the game.
func (s *Session) controlModule(ctx context.Context) {
	s.say(ctx, s.strs.Msg(locale.MsgControlOpen))
	for _, line := range s.strs.List(locale.ListControlReadout) {
		s.say(ctx, line)
	}
	s.say(ctx, s.strs.Msg(locale.MsgControlButton))
	s.say(ctx, s.strs.Msg(locale.MsgControlPrompt))

	answer, ok := s.askLower(ctx)
	if !ok {
		return
	}
	if !state.IsAffirmative(answer) {
		s.say(ctx, s.strs.Msg(locale.MsgControlDeclined))
		return
	}

	for _, line := range s.strs.List(locale.ListControlFatal) {
		s.say(ctx, line)
	}
	s.slow(ctx, s.strs.Msg(locale.MsgGameOver))
	s.forced(ctx, s.strs.Msg(locale.MsgFarewell))
	s.outcome = OutcomeGameOver
}
