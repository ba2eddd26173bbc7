package game

import (
	"context"
	"errors"

	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/state"
	"github.com/jwebster45206/zarya/pkg/world"
)

func (s *Session) dispatch(ctx context.Context, cmd state.Command) {
	switch cmd.Type {
	case state.CmdHelp:
		s.help(ctx)
	case state.CmdInfo:
		s.info(ctx)
	case state.CmdIgnore:
	case state.CmdQuit:
		s.quit(ctx)
	case state.CmdLook:
		s.look(ctx)
	case state.CmdInventory:
		s.inventory(ctx)
	case state.CmdTakeAll:
		s.takeAll(ctx)
	case state.CmdSkip:
		s.skip(ctx)
	case state.CmdNoSkip:
		s.noSkip(ctx)
	case state.CmdSetName:
		s.setName(ctx, cmd.Arg)
	case state.CmdSearch:
		s.search(ctx, cmd.Arg)
	case state.CmdLeave:
		s.leave(ctx)
	case state.CmdGo:
		s.goThrough(ctx, cmd.Arg)
	case state.CmdTake:
		s.take(ctx, cmd.Arg)
	case state.CmdUse:
		s.use(ctx, cmd.Arg)
	case state.CmdDrop:
		s.drop(ctx, cmd.Arg)
	default:
		s.say(ctx, s.strs.Msg(locale.MsgInvalidCommand))
	}
}

func (s *Session) help(ctx context.Context) {
	for _, line := range s.strs.List(locale.ListHelp) {
		s.fast(ctx, line)
	}
	s.say(ctx, s.strs.Msg(locale.MsgHelpFooter))
	s.say(ctx, s.strs.Msg(locale.MsgHelpFirstMove))
}

func (s *Session) info(ctx context.Context) {
	s.fast(ctx, s.strs.Msg(locale.MsgBannerVersion, s.cfg.Version))
	s.fast(ctx, s.strs.Msg(locale.MsgBannerReport))
	s.say(ctx, s.strs.Msg(locale.MsgInfoBackground))
}

func (s *Session) quit(ctx context.Context) {
	s.forced(ctx, s.strs.Msg(locale.MsgFarewell))
	s.outcome = OutcomeQuit
}

func (s *Session) look(ctx context.Context) {
	here := s.gs.Here()
	s.say(ctx, s.strs.Msg(locale.MsgLookLocation, here.Desc))
	for _, it := range here.Items.Items() {
		s.say(ctx, s.strs.Msg(locale.MsgLookItem, it.Desc))
	}
	if s.gs.Inside() {
		return
	}
	for _, c := range s.gs.Room.Containers {
		s.say(ctx, s.strs.Msg(locale.MsgLookContainer, c.Name))
	}
	if len(s.gs.Room.Ports) == 0 {
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgLookPorts, len(s.gs.Room.Ports)))
	for _, p := range s.gs.Room.Ports {
		status := s.strs.Msg(locale.MsgPortClosed)
		if p.IsOpen() {
			status = s.strs.Msg(locale.MsgPortOpen)
		}
		s.say(ctx, s.strs.Msg(locale.MsgLookPort, p.Name, status))
	}
}

func (s *Session) inventory(ctx context.Context) {
	names := s.gs.Player.Inventory.Names()
	if len(names) == 0 {
		s.say(ctx, s.strs.Msg(locale.MsgInventoryEmpty))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgInventoryHeader))
	for _, name := range names {
		s.say(ctx, name)
	}
}

func (s *Session) search(ctx context.Context, arg string) {
	c, err := s.gs.Enter(arg)
	if err != nil {
		s.say(ctx, s.strs.Msg(locale.MsgSearchMissing))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgSearchStart, c.Name))
	names := c.Items.Names()
	if len(names) == 0 {
		s.say(ctx, s.strs.Msg(locale.MsgSearchEmpty))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgSearchContents, c.Name))
	for _, name := range names {
		s.say(ctx, name)
	}
}

// leave takes no argument: there is only ever one place to leave.
func (s *Session) leave(ctx context.Context) {
	c, err := s.gs.Leave()
	if err != nil {
		s.say(ctx, s.strs.Msg(locale.MsgLeaveRefused, s.gs.Player.Name))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgLeaveOK, s.strs.Lower(c.Name)))
}

func (s *Session) goThrough(ctx context.Context, arg string) {
	room, err := s.gs.Go(arg)
	switch {
	case err == nil:
		s.say(ctx, s.strs.Msg(locale.MsgGoOK, room.Name))
	case errors.Is(err, world.ErrNotPermitted):
		s.say(ctx, s.strs.Msg(locale.MsgGoInside, s.gs.Here().Name))
	case errors.Is(err, world.ErrPortClosed):
		s.say(ctx, s.strs.Msg(locale.MsgGoClosed))
	default:
		s.say(ctx, s.strs.Msg(locale.MsgGoMissing))
	}
}

// takeAll works on the items present when the command starts.
func (s *Session) takeAll(ctx context.Context) {
	items := s.gs.Here().Items.Items()
	if len(items) == 0 {
		s.say(ctx, s.strs.Msg(locale.MsgTakeAllEmpty))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgTakeAllYou))
	s.say(ctx, s.strs.Msg(locale.MsgTakeAllTake))
	s.say(ctx, s.strs.Msg(locale.MsgTakeAllThings))
	for _, it := range items {
		_, err := s.gs.Take(it.Name)
		switch {
		case errors.Is(err, world.ErrNotPermitted):
			s.say(ctx, s.strs.Msg(locale.MsgTakeAllRefused, it.Name))
		case errors.Is(err, world.ErrDuplicate):
			s.say(ctx, s.strs.Msg(locale.MsgTakeDuplicate, it.Name))
		}
	}
}

func (s *Session) take(ctx context.Context, arg string) {
	it, err := s.gs.Take(arg)
	switch {
	case err == nil:
		s.say(ctx, s.strs.Msg(locale.MsgTakeOK, it.Name))
	case errors.Is(err, world.ErrNotPermitted):
		s.say(ctx, s.strs.Msg(locale.MsgTakeRefused))
	case errors.Is(err, world.ErrDuplicate):
		s.say(ctx, s.strs.Msg(locale.MsgTakeDuplicate, arg))
	default:
		s.say(ctx, s.strs.Msg(locale.MsgTakeMissing))
	}
}

func (s *Session) use(ctx context.Context, arg string) {
	it, ok := s.gs.Reachable(arg)
	if !ok {
		s.say(ctx, s.strs.Msg(locale.MsgUseMissing))
		return
	}
	b, ok := behaviors[it.Behavior]
	if !it.CanUse || !ok {
		s.say(ctx, s.strs.Msg(locale.MsgUseRefused))
		return
	}
	s.logger.Debug("Using item", "item", it.Name, "behavior", it.Behavior)
	b(s, ctx, it)
}

func (s *Session) drop(ctx context.Context, arg string) {
	it, err := s.gs.Drop(arg)
	switch {
	case err == nil:
		s.say(ctx, s.strs.Msg(locale.MsgDropOK, it.Name))
	case errors.Is(err, world.ErrDuplicate):
		s.say(ctx, s.strs.Msg(locale.MsgDropDuplicate, arg))
	default:
		s.say(ctx, s.strs.Msg(locale.MsgDropMissing))
	}
}

func (s *Session) skip(ctx context.Context) {
	s.gs.Skip = true
	s.say(ctx, s.strs.Msg(locale.MsgSkipOn))
}

func (s *Session) noSkip(ctx context.Context) {
	s.gs.Skip = false
	s.say(ctx, s.strs.Msg(locale.MsgSkipOff))
}

// setName renames the player. The name is echoed to everyone in the channel, so it is filtered.
func (s *Session) setName(ctx context.Context, arg string) {
	if !s.gs.Player.SetName(s.names.Clean(arg)) {
		s.say(ctx, s.strs.Msg(locale.MsgSetNameBlank))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgSetNameOK, s.gs.Player.Name))
}
