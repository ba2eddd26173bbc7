package game

import (
	"context"
	"fmt"
	"maps"

	"github.com/jwebster45206/zarya/internal/logger"
	"github.com/jwebster45206/zarya/pkg/actor"
	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/world"
)

// behavior is the effect of using an item. It gets the session and the item being used.
type behavior func(s *Session, ctx context.Context, it *world.Item)

// behaviors maps behavior ids to their effects. It is filled in init because the laptop can start a
// nested session, which dispatches back into this table.
var behaviors map[world.BehaviorID]behavior

func init() {
	behaviors = map[world.BehaviorID]behavior{
		world.BehaviorPaper:      (*Session).usePaper,
		world.BehaviorDrive:      (*Session).useDrive,
		world.BehaviorJumpsuit:   (*Session).useJumpsuit,
		world.BehaviorGreenhouse: (*Session).useGreenhouse,
		world.BehaviorCamera:     (*Session).useCamera,
		world.BehaviorToilet:     (*Session).useToilet,
		world.BehaviorBed:        (*Session).useBed,
		world.BehaviorLaptop:     (*Session).useLaptop,
	}
}

func (s *Session) usePaper(ctx context.Context, _ *world.Item) {
	s.say(ctx, s.strs.Msg(locale.MsgPaper1))
	s.say(ctx, s.strs.Msg(locale.MsgPaper2))
	s.say(ctx, s.strs.Msg(locale.MsgPaper3))
	s.say(ctx, s.strs.Msg(locale.MsgPaper4))
}

// useDrive copies the drive's files onto a reachable laptop and empties the drive.
func (s *Session) useDrive(ctx context.Context, drive *world.Item) {
	laptop, ok := s.gs.FindBehavior(world.BehaviorLaptop)
	if !ok {
		s.say(ctx, s.strs.Msg(locale.MsgDriveNoLaptop))
		return
	}
	if !drive.HasFiles() {
		s.say(ctx, s.strs.Msg(locale.MsgDriveEmpty))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgDriveTransfer))
	if laptop.Files == nil {
		laptop.Files = make(map[string]string, len(drive.Files))
	}
	maps.Copy(laptop.Files, drive.Files)
	drive.Files = nil
}

func (s *Session) useJumpsuit(ctx context.Context, _ *world.Item) {
	p := s.gs.Player
	switch p.Wearing {
	case actor.DoubleOutfit:
		s.say(ctx, s.strs.Msg(locale.MsgOutfitDouble))
	case actor.DefaultOutfit:
		s.say(ctx, s.strs.Msg(locale.MsgJumpsuit1))
		s.say(ctx, s.strs.Msg(locale.MsgJumpsuit2))
		s.say(ctx, s.strs.Msg(locale.MsgJumpsuit3))
		p.Wearing = actor.DoubleOutfit
	default:
		s.say(ctx, s.strs.Msg(locale.MsgJumpsuit1))
		p.Wearing = actor.DefaultOutfit
	}
}

func (s *Session) useGreenhouse(ctx context.Context, _ *world.Item) {
	s.say(ctx, s.strs.Msg(locale.MsgGreenhouse1))
	s.slow(ctx, s.strs.Msg(locale.MsgGreenhouse2))
}

// Picture quality tiers, inclusive upper bounds on a 1-10 roll.
const (
	rubbishMax = 2
	niceMax    = 5
)

const (
	qualityDice = "1d10"
	likesDice   = "1d991+9" // 10-1000 likes per point of quality
)

// roll rolls notation and returns the total.
func (s *Session) roll(notation string) (int, error) {
	out, err := s.deps.Dice.Roll(notation)
	if err != nil {
		return 0, fmt.Errorf("roll %s: %w", notation, err)
	}
	return out.Value, nil
}

// useCamera takes one picture out of the window and puts it in the inventory.
func (s *Session) useCamera(ctx context.Context, _ *world.Item) {
	if !s.gs.Room.HasWindows {
		s.say(ctx, s.strs.Msg(locale.MsgCameraNoWindows))
		return
	}
	s.forced(ctx, s.strs.Msg(locale.MsgCameraIntro))

	quality, err := s.roll(qualityDice)
	if err != nil {
		logger.WithError(s.logger, err).Error("Failed to develop picture")
		return
	}
	tier := locale.MsgPictureGood
	switch {
	case quality <= rubbishMax:
		tier = locale.MsgPictureRubbish
	case quality <= niceMax:
		tier = locale.MsgPictureNice
	}

	// Dropped pictures keep their names, so the new one must not clash with any of them.
	inv := s.gs.Player.Inventory
	name := inv.UniqueName(s.strs.Msg(locale.MsgPictureName, s.strs.Msg(tier)), s.gs.World.ItemSets()...)
	picture := world.NewItem(name, s.strs.Msg(locale.MsgPictureDesc, name), "", false, true, world.BehaviorNone)
	picture.Quality = quality
	if err := inv.Add(picture); err != nil {
		// UniqueName makes this unreachable.
		s.logger.Error("Failed to store picture", "picture", name, "error", err)
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgCameraResult, name))
}

func (s *Session) useToilet(ctx context.Context, _ *world.Item) {
	s.say(ctx, s.strs.Msg(locale.MsgToilet))
}

// useBed sleeps off the player's tiredness and moves the clock on by the hours slept.
func (s *Session) useBed(ctx context.Context, _ *world.Item) {
	s.say(ctx, s.strs.Msg(locale.MsgBedEnter))
	if !s.gs.Player.Tired() {
		s.say(ctx, s.strs.Msg(locale.MsgBedNotTired))
		return
	}
	s.say(ctx, s.strs.Msg(locale.MsgBedSleep))
	s.gs.Clock.Sleep(s.gs.Player.Rest())
	s.say(ctx, s.strs.Msg(locale.MsgDate, s.gs.Clock.Date()))
}
