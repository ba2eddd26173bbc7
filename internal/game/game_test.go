package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/zarya/internal/browser"
	"github.com/jwebster45206/zarya/internal/game/gametest"
	"github.com/jwebster45206/zarya/internal/metrics"
	"github.com/jwebster45206/zarya/pkg/actor"
	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/world"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	session   *Session
	transport *gametest.Transport
	journal   *gametest.Journal
	fetcher   *gametest.Fetcher
}

func newHarness(t *testing.T, cfg Config, dice Dice, script ...string) *harness {
	t.Helper()

	strs, err := locale.Load("en")
	require.NoError(t, err)

	h := &harness{
		transport: gametest.NewTransport(script...),
		journal:   &gametest.Journal{},
		fetcher:   &gametest.Fetcher{Body: []byte("<html></html>")},
	}
	if cfg.Version == "" {
		cfg.Version = "test"
	}
	if dice == nil {
		dice = gametest.NewDice()
	}
	h.session, err = NewSession(cfg, Deps{
		Strings:   strs,
		Transport: h.transport,
		Journal:   h.journal,
		Fetcher:   h.fetcher,
		Dice:      dice,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return h
}

func (h *harness) run(t *testing.T) Outcome {
	t.Helper()
	outcome, err := h.session.Run(context.Background())
	require.NoError(t, err)
	return outcome
}

func (h *harness) count(text string) int {
	n := 0
	for _, l := range h.transport.Texts() {
		if l == text {
			n++
		}
	}
	return n
}

func TestSession_LookTakeLaptopQuit(t *testing.T) {
	h := newHarness(t, Config{}, nil,
		"look around", "take laptop", "use laptop", "turn off laptop", "quit")

	outcome := h.run(t)
	assert.Equal(t, OutcomeQuit, outcome)

	out := h.transport.Transcript()
	assert.Contains(t, out, "You are in Zarya")
	assert.Contains(t, out, "There is a laptop velcroed to the wall")
	assert.Contains(t, out, "You can't take that.")
	assert.Contains(t, out, "You turn on the laptop.")
	assert.Contains(t, out, "You turn off the laptop.")

	texts := h.transport.Texts()
	assert.Equal(t, "Thanks for playing!", texts[len(texts)-1])
	assert.Zero(t, h.transport.Remaining())
	assert.Equal(t, []string{"look around", "take laptop", "use laptop", "turn off laptop", "quit"}, h.journal.Lines())

	gs := h.session.State()
	assert.True(t, gs.Room.Items.Has("laptop"))
	assert.Zero(t, gs.Player.Inventory.Len())
}

func TestSession_Banner(t *testing.T) {
	h := newHarness(t, Config{Version: "1.2.3"}, nil, "q")
	h.run(t)

	texts := h.transport.Texts()
	require.GreaterOrEqual(t, len(texts), 4)
	assert.Equal(t, "Zarya v1.2.3", texts[0])
	assert.Equal(t, "Date: 12.09.2000", texts[2])
	assert.Equal(t, "For a list of commands, type 'help'.", texts[3])
}

func TestSession_LookListsContainersAndPorts(t *testing.T) {
	h := newHarness(t, Config{}, nil, "l", "quit")
	h.run(t)

	out := h.transport.Transcript()
	assert.Contains(t, out, "You could search the boxes.")
	assert.Contains(t, out, "There are 3 ports: ")
	assert.Contains(t, out, "One to front that is open.")
	assert.Contains(t, out, "One to nadir that is closed.")
}

func TestSession_GoThroughFrontPort(t *testing.T) {
	h := newHarness(t, Config{}, nil, "go through front port", "quit")
	h.run(t)

	assert.Contains(t, h.transport.Transcript(), "You go through the port into Unity.")
	assert.Equal(t, world.RoomUnity, h.session.State().Room.Key)
}

func TestSession_GoThroughClosedPort(t *testing.T) {
	h := newHarness(t, Config{}, nil, "go through front port", "quit")
	p, ok := h.session.State().Room.Port("front")
	require.True(t, ok)
	p.Close()

	h.run(t)

	assert.Contains(t, h.transport.Transcript(), "That port is closed.")
	assert.Equal(t, world.RoomZarya, h.session.State().Room.Key)
}

func TestSession_Go(t *testing.T) {
	tests := []struct {
		name     string
		script   []string
		wantRoom string
		wantText string
	}{
		{"abbreviated", []string{"gt aft p"}, world.RoomZvezda, "You go through the port into Zvezda."},
		{"plain go", []string{"go aft"}, world.RoomZvezda, "You go through the port into Zvezda."},
		{"round trip", []string{"go aft", "go front"}, world.RoomZarya, "You go through the port into Zarya."},
		{"no such port", []string{"go starboard"}, world.RoomZarya, "The module you're in doesn't have a port there."},
		{"no direction", []string{"go"}, world.RoomZarya, "The module you're in doesn't have a port there."},
		{"inside a container", []string{"search boxes", "go aft"}, world.RoomZarya, "You have to leave the boxes first."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, Config{}, nil, append(tt.script, "quit")...)
			h.run(t)
			assert.Equal(t, tt.wantRoom, h.session.State().Room.Key)
			assert.Contains(t, h.transport.Texts(), tt.wantText)
		})
	}
}

func TestSession_SearchAndLeave(t *testing.T) {
	h := newHarness(t, Config{}, nil, "search boxes", "look", "leave boxes", "leave", "search fridge", "quit")
	h.run(t)

	texts := h.transport.Texts()
	assert.Contains(t, texts, "You search the boxes.")
	assert.Contains(t, texts, "The boxes contain(s):")
	assert.Contains(t, texts, "paper")
	assert.Contains(t, texts, "drive")
	assert.Contains(t, texts, "jumpsuit")
	assert.Contains(t, texts, "You are rummaging through the cargo boxes strapped along the walls of Zarya.")
	assert.Contains(t, texts, "You leave the boxes.")
	assert.Contains(t, texts, "I'm sorry Cosmonaut, I'm afraid you can't do that.")
	assert.Contains(t, texts, "That isn't in here.")
	assert.False(t, h.session.State().Inside())
}

func TestSession_TakeAll(t *testing.T) {
	t.Run("inside the boxes", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "search boxes", "take all", "ta", "quit")
		h.run(t)

		gs := h.session.State()
		assert.Equal(t, []string{"paper", "drive", "jumpsuit"}, gs.Player.Inventory.Names())
		assert.Zero(t, gs.Here().Items.Len())
		assert.Contains(t, h.transport.Texts(), "ALL THE THINGS.")
		assert.Contains(t, h.transport.Texts(), "There's nothing here.")
	})

	t.Run("untakeable items stay", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "go aft", "take all", "quit")
		h.run(t)

		gs := h.session.State()
		assert.Equal(t, []string{"camera"}, gs.Player.Inventory.Names())
		assert.Equal(t, []string{"greenhouse", "toilet", "bed"}, gs.Room.Items.Names())
		texts := h.transport.Texts()
		assert.Contains(t, texts, "You can't take the greenhouse.")
		assert.Contains(t, texts, "You can't take the toilet.")
		assert.Contains(t, texts, "You can't take the bed.")
	})
}

func TestSession_TakeDropIdentity(t *testing.T) {
	h := newHarness(t, Config{}, nil, "search boxes", "take paper", "drop paper", "quit")
	before := h.session.State().World.Rooms[world.RoomZarya].Containers[0].Items.Names()

	h.run(t)

	gs := h.session.State()
	assert.ElementsMatch(t, before, gs.Here().Items.Names())
	assert.Zero(t, gs.Player.Inventory.Len())
	assert.Contains(t, h.transport.Texts(), "You take the paper.")
	assert.Contains(t, h.transport.Texts(), "You drop the paper.")
}

func TestSession_TakeAndDropFailures(t *testing.T) {
	h := newHarness(t, Config{}, nil, "take spoon", "drop spoon", "quit")
	h.run(t)

	assert.Contains(t, h.transport.Texts(), "That item isn't here.")
	assert.Contains(t, h.transport.Texts(), "That item isn't in your inventory.")
}

func TestSession_UseUnusableItemChangesNothing(t *testing.T) {
	h := newHarness(t, Config{}, nil, "use nice picture", "use spoon", "quit")
	gs := h.session.State()
	picture := world.NewItem("nice picture", "a printed photo", "", false, true, world.BehaviorNone)
	picture.Quality = 4
	require.NoError(t, gs.Player.Inventory.Add(picture))

	h.run(t)

	assert.Contains(t, h.transport.Texts(), "That item isn't usable.")
	assert.Contains(t, h.transport.Texts(), "You don't have that item.")
	assert.Equal(t, []string{"nice picture"}, gs.Player.Inventory.Names())
	assert.Equal(t, 4, picture.Quality)
	assert.Equal(t, actor.DefaultOutfit, gs.Player.Wearing)
	assert.Equal(t, world.RoomZarya, gs.Room.Key)
}

func TestSession_Camera(t *testing.T) {
	t.Run("no windows", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "go aft", "take camera", "go front", "use camera", "quit")
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "There are no windows to take pictures out of in this module.")
		assert.Equal(t, []string{"camera"}, h.session.State().Player.Inventory.Names())
	})

	tests := []struct {
		quality  int
		wantName string
	}{
		{1, "rubbish picture"},
		{2, "rubbish picture"},
		{3, "nice picture"},
		{5, "nice picture"},
		{6, "beautiful picture"},
		{10, "beautiful picture"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("quality %d", tt.quality), func(t *testing.T) {
			dice := gametest.NewDice(tt.quality)
			h := newHarness(t, Config{}, dice, "go aft", "use camera", "quit")
			h.run(t)

			assert.Equal(t, []string{"1d10"}, dice.Rolled)
			inv := h.session.State().Player.Inventory
			require.Equal(t, 1, inv.Len())
			picture, ok := inv.Get(tt.wantName)
			require.True(t, ok)
			assert.Equal(t, tt.quality, picture.Quality)
			assert.True(t, picture.CanTake)
			assert.False(t, picture.CanUse)
			assert.Contains(t, h.transport.Texts(), tt.wantName+".")
		})
	}

	t.Run("every use adds one picture", func(t *testing.T) {
		h := newHarness(t, Config{}, gametest.NewDice(4), "go aft", "use camera", "use camera", "use camera", "quit")
		h.run(t)

		assert.Equal(t, []string{"nice picture", "nice picture 2", "nice picture 3"},
			h.session.State().Player.Inventory.Names())
	})

	t.Run("new pictures do not reuse dropped names", func(t *testing.T) {
		h := newHarness(t, Config{}, gametest.NewDice(4),
			"go aft", "use camera", "drop nice picture", "use camera", "take nice picture", "quit")
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "nice picture 2.")
		assert.Contains(t, h.transport.Texts(), "You take the nice picture.")
		assert.NotContains(t, h.transport.Texts(), "You already have something called nice picture.")
		assert.ElementsMatch(t, []string{"nice picture", "nice picture 2"},
			h.session.State().Player.Inventory.Names())
	})

	t.Run("seeded roller stays within the tiers", func(t *testing.T) {
		script := []string{"go aft"}
		for range 20 {
			script = append(script, "use camera")
		}
		script = append(script, "quit")
		h := newHarness(t, Config{}, d20.NewRoller(42), script...)
		h.run(t)

		inv := h.session.State().Player.Inventory
		require.Equal(t, 20, inv.Len())
		for _, picture := range inv.Items() {
			assert.GreaterOrEqual(t, picture.Quality, 1)
			assert.LessOrEqual(t, picture.Quality, 10)
			switch {
			case picture.Quality <= 2:
				assert.True(t, strings.HasPrefix(picture.Name, "rubbish picture"), picture.Name)
			case picture.Quality <= 5:
				assert.True(t, strings.HasPrefix(picture.Name, "nice picture"), picture.Name)
			default:
				assert.True(t, strings.HasPrefix(picture.Name, "beautiful picture"), picture.Name)
			}
		}
	})

	t.Run("failed roll takes no picture", func(t *testing.T) {
		dice := gametest.NewDice()
		dice.Err = errors.New("dice lost")
		h := newHarness(t, Config{}, dice, "go aft", "use camera", "quit")
		h.run(t)

		assert.Zero(t, h.session.State().Player.Inventory.Len())
	})
}

func TestSession_CameraIntroIsForced(t *testing.T) {
	h := newHarness(t, Config{Skip: true}, nil, "go aft", "use camera", "quit")
	h.run(t)

	for _, l := range h.transport.Output() {
		if strings.HasPrefix(l.Text, "You take the camera to a window") {
			assert.True(t, l.Force)
			return
		}
	}
	t.Fatal("camera intro not displayed")
}

func TestSession_Messenger(t *testing.T) {
	tests := []struct {
		name      string
		roll      int
		wantLikes int
	}{
		{"fewest likes", 10, 50},
		{"most likes", 1000, 5000},
		{"middle", 100, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, Config{}, gametest.NewDice(tt.roll),
				"use laptop", "use messenger", "bob", "nasa social media team", "nice picture", "turn off laptop", "quit")
			inv := h.session.State().Player.Inventory
			picture := world.NewItem("nice picture", "a printed photo", "", false, true, world.BehaviorNone)
			picture.Quality = 5
			require.NoError(t, inv.Add(picture))

			h.run(t)

			texts := h.transport.Texts()
			assert.Contains(t, texts, "They aren't in your contacts list.")
			assert.Contains(t, texts, "You send the picture.")
			assert.Contains(t, texts, fmt.Sprintf("Your picture gets %d likes.", tt.wantLikes))
			assert.GreaterOrEqual(t, tt.wantLikes, 50)
			assert.LessOrEqual(t, tt.wantLikes, 5000)
			assert.False(t, inv.Has("nice picture"))
			assert.Equal(t, 2, h.count("Who would you like to message? (or 'cancel')"))
		})
	}
}

func TestSession_MessengerSeededRoller(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		h := newHarness(t, Config{}, d20.NewRoller(seed),
			"use laptop", "messenger", "nasa social media team", "nice picture", "off", "quit")
		picture := world.NewItem("nice picture", "a printed photo", "", false, true, world.BehaviorNone)
		picture.Quality = 5
		require.NoError(t, h.session.State().Player.Inventory.Add(picture))

		h.run(t)

		var likes int
		found := false
		for _, text := range h.transport.Texts() {
			if _, err := fmt.Sscanf(text, "Your picture gets %d likes.", &likes); err == nil {
				found = true
			}
		}
		require.True(t, found, "seed %d", seed)
		assert.GreaterOrEqual(t, likes, 50)
		assert.LessOrEqual(t, likes, 5000)
		assert.Zero(t, likes%5, "likes are a multiple of the quality")
	}
}

func TestSession_MessengerFailures(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		wantText string
	}{
		{"cancel", []string{"cancel"}, "You close the messenger."},
		{"not a picture", []string{"nasa social media team", "paper"}, "That's not a picture!"},
		{"missing picture", []string{"nasa social media team", "beautiful picture"}, "You don't have that picture."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := append([]string{"use laptop", "messenger"}, tt.answers...)
			script = append(script, "off", "quit")
			h := newHarness(t, Config{}, nil, script...)
			h.run(t)

			assert.Contains(t, h.transport.Texts(), tt.wantText)
			assert.NotContains(t, h.transport.Texts(), "You send the picture.")
		})
	}
}

func TestSession_LaptopTutorialOnce(t *testing.T) {
	h := newHarness(t, Config{}, nil, "use laptop", "off", "use laptop", "make coffee", "off", "quit")
	h.run(t)

	assert.Equal(t, 1, h.count("There is a sticker on the laptop that lists things you can do with it."))
	assert.Equal(t, 2, h.count("You turn on the laptop."))
	assert.Equal(t, 1, h.count("The laptop can't do that!"))

	laptop, ok := h.session.State().Room.Items.Get("laptop")
	require.True(t, ok)
	assert.True(t, laptop.TutorialSeen)
	assert.False(t, laptop.Powered)
}

func TestSession_DriveToLaptop(t *testing.T) {
	h := newHarness(t, Config{}, nil,
		"use laptop", "read files", "off",
		"search boxes", "take drive", "leave", "use drive", "use drive",
		"use laptop", "read files", "off", "quit")
	h.run(t)

	texts := h.transport.Texts()
	assert.Contains(t, texts, "You have no files to read!")
	assert.Contains(t, texts, "You transfer all the files on the usb stick to the laptop.")
	assert.Contains(t, texts, "There are no files on the usb stick.")
	assert.Contains(t, texts, "The files say: ")
	assert.Contains(t, texts, "program.py: print('hello world!')")

	gs := h.session.State()
	laptop, _ := gs.Room.Items.Get("laptop")
	drive, _ := gs.Player.Inventory.Get("drive")
	assert.Equal(t, world.DriveFiles, laptop.Files)
	assert.False(t, drive.HasFiles())
}

func TestSession_DriveWithoutLaptop(t *testing.T) {
	h := newHarness(t, Config{}, nil, "search boxes", "take drive", "leave", "go aft", "use drive", "quit")
	h.run(t)

	assert.Contains(t, h.transport.Texts(), "You have no laptop to use it with.")
	drive, _ := h.session.State().Player.Inventory.Get("drive")
	assert.True(t, drive.HasFiles())
}

func TestSession_Jumpsuit(t *testing.T) {
	h := newHarness(t, Config{}, nil, "search boxes", "use jumpsuit", "use jumpsuit", "quit")
	h.run(t)

	texts := h.transport.Texts()
	assert.Contains(t, texts, "You put on the jumpsuit.")
	assert.Contains(t, texts, "You were already wearing one, however, so you are now wearing two jumpsuits.")
	assert.Contains(t, texts, "You are already wearing two jumpsuits. A third would be excessive.")
	assert.Equal(t, actor.DoubleOutfit, h.session.State().Player.Wearing)
}

func TestSession_NarrativeItems(t *testing.T) {
	h := newHarness(t, Config{}, nil, "search boxes", "use paper", "leave", "go aft", "use greenhouse", "use toilet", "quit")
	h.run(t)

	texts := h.transport.Texts()
	assert.Contains(t, texts, "'Pa$$word123'")
	assert.Contains(t, texts, "Nothing interesting happens.")
	assert.Contains(t, h.transport.Transcript(), "You do your business in the space toilet.")
}

func TestSession_Bed(t *testing.T) {
	t.Run("not tired", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "go aft", "use bed", "quit")
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "You are not tired enough to get to sleep.")
		assert.Equal(t, float64(actor.StartingSleep+3), h.session.State().Player.Sleep)
	})

	t.Run("sleeps and advances the date", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "go aft", "use bed", "quit")
		gs := h.session.State()
		gs.Player.Sleep = 20

		h.run(t)

		// Two turns of an hour each, then 22 hours of sleep.
		assert.Contains(t, h.transport.Texts(), "You sleep until you are no longer tired.")
		assert.Contains(t, h.transport.Texts(), "Date: 13.09.2000")
		assert.Equal(t, float64(1), gs.Player.Sleep)
	})
}

func TestSession_Browse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{"page loads", nil, "Hmm, looks like there's no GUI."},
		{"invalid url", fmt.Errorf("fetch: %w", browser.ErrInvalidURL), "That's not a valid URL."},
		{"offline", fmt.Errorf("fetch: %w", browser.ErrConnection), "You have no internet connection."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, Config{}, nil, "use laptop", "browse web", "  https://example.com/Page  ", "off", "quit")
			h.fetcher.Err = tt.err
			h.run(t)

			assert.Contains(t, h.transport.Texts(), tt.wantText)
			assert.Equal(t, []string{"https://example.com/Page"}, h.fetcher.URLs)
		})
	}
}

func TestSession_ControlDeclined(t *testing.T) {
	h := newHarness(t, Config{}, nil, "use laptop", "control station module", "no thanks", "off", "quit")
	outcome := h.run(t)

	assert.Equal(t, OutcomeQuit, outcome)
	assert.Contains(t, h.transport.Texts(), "periapsis: 390km")
	assert.Contains(t, h.transport.Texts(), "That was probably a sensible choice.")
}

func TestSession_ControlFatal(t *testing.T) {
	h := newHarness(t, Config{}, nil, "use laptop", "control", "yes", "look", "quit")
	outcome := h.run(t)

	assert.Equal(t, OutcomeGameOver, outcome)
	assert.Equal(t, 2, h.transport.Remaining())

	texts := h.transport.Texts()
	require.GreaterOrEqual(t, len(texts), 2)
	assert.Equal(t, "GAME OVER", texts[len(texts)-2])
	assert.Equal(t, "Thanks for playing!", texts[len(texts)-1])
}

func TestSession_NestedGame(t *testing.T) {
	h := newHarness(t, Config{MaxDepth: 1}, nil,
		"use laptop", "play text game",
		"take laptop", "quit",
		"turn off laptop", "quit")
	outcome := h.run(t)

	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 2, h.count("Zarya vtest"))
	assert.Equal(t, 2, h.count("Thanks for playing!"))
	assert.Equal(t, 2, h.journal.Sessions())
	assert.Zero(t, h.transport.Remaining())
}

func TestSession_NestedGameOverOnlyEndsInnerGame(t *testing.T) {
	h := newHarness(t, Config{MaxDepth: 1}, nil,
		"use laptop", "play",
		"use laptop", "control", "yes",
		"off", "quit")
	outcome := h.run(t)

	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 1, h.count("GAME OVER"))
	assert.Equal(t, 2, h.count("Thanks for playing!"))
}

func TestSession_NestedDepthLimit(t *testing.T) {
	h := newHarness(t, Config{MaxDepth: 1}, nil,
		"use laptop", "play",
		"use laptop", "play", "off", "quit",
		"off", "quit")
	h.run(t)

	assert.Equal(t, 1, h.count("The laptop is already running too many text games to start another one."))
	assert.Equal(t, 2, h.count("Zarya vtest"))
}

func TestSession_NestingDisabled(t *testing.T) {
	h := newHarness(t, Config{MaxDepth: 0}, nil, "use laptop", "play", "off", "quit")
	h.run(t)

	assert.Equal(t, 1, h.count("The laptop is already running too many text games to start another one."))
	assert.Equal(t, 1, h.count("Zarya vtest"))
}

func TestSession_Misc(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantText string
	}{
		{"help", "help", "look around -Tells you what is in the room"},
		{"info", "b", "Zarya is a small text adventure"},
		{"empty inventory", "i", "Your inventory is empty."},
		{"invalid", "dance", "That's not a valid command."},
		{"blank name", "setname   ", "You have to tell me what your name is."},
		{"name keeps case", "setname Yuri Gagarin", "Your name is Yuri Gagarin."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, Config{}, nil, tt.line, "quit")
			h.run(t)
			assert.Contains(t, h.transport.Transcript(), tt.wantText)
		})
	}
}

func TestSession_SetNameUsedInRefusal(t *testing.T) {
	h := newHarness(t, Config{}, nil, "SETNAME Valentina", "leave", "quit")
	h.run(t)

	assert.Equal(t, "Valentina", h.session.State().Player.Name)
	assert.Contains(t, h.transport.Texts(), "I'm sorry Valentina, I'm afraid you can't do that.")
}

func TestSession_SetNameIsFiltered(t *testing.T) {
	h := newHarness(t, Config{}, nil, "setname Hell Diver", "leave", "setname DAMN", "quit")
	h.run(t)

	texts := h.transport.Texts()
	assert.Contains(t, texts, "Your name is Heck Diver.")
	assert.Contains(t, texts, "I'm sorry Heck Diver, I'm afraid you can't do that.")
	assert.Contains(t, texts, "Your name is DANG.")
	assert.Equal(t, "DANG", h.session.State().Player.Name)
	for _, text := range texts {
		assert.NotContains(t, text, "Hell Diver")
	}
}

func TestSession_DuplicateNames(t *testing.T) {
	paper := func() *world.Item {
		return world.NewItem("paper", "another strip of paper", "", true, true, world.BehaviorNone)
	}

	t.Run("take", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "search boxes", "take paper", "quit")
		inv := h.session.State().Player.Inventory
		require.NoError(t, inv.Add(paper()))
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "You already have something called paper.")
		assert.Equal(t, []string{"paper"}, inv.Names())
		assert.True(t, h.session.State().World.Start.Containers[0].Items.Has("paper"))
	})

	t.Run("take all", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "search boxes", "take all", "quit")
		inv := h.session.State().Player.Inventory
		require.NoError(t, inv.Add(paper()))
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "You already have something called paper.")
		assert.Equal(t, []string{"paper", "drive", "jumpsuit"}, inv.Names())
		assert.Equal(t, []string{"paper"}, h.session.State().World.Start.Containers[0].Items.Names())
	})

	t.Run("drop", func(t *testing.T) {
		h := newHarness(t, Config{}, nil, "drop laptop", "quit")
		inv := h.session.State().Player.Inventory
		require.NoError(t, inv.Add(world.NewItem("laptop", "a second laptop", "", false, true, world.BehaviorNone)))
		h.run(t)

		assert.Contains(t, h.transport.Texts(), "There is already a laptop here.")
		assert.True(t, inv.Has("laptop"))
	})
}

func TestSession_IgnoredCommandsPrintNothing(t *testing.T) {
	h := newHarness(t, Config{}, nil, "quit")
	h.run(t)
	baseline := len(h.transport.Texts())

	h2 := newHarness(t, Config{}, nil, "logs", "log.txt", "quit")
	h2.run(t)
	assert.Equal(t, baseline, len(h2.transport.Texts()))
}

func TestSession_SkipToggle(t *testing.T) {
	h := newHarness(t, Config{}, nil, "skip", "look", "noskip", "quit")
	h.run(t)

	out := h.transport.Output()
	skips := h.transport.Skips()
	for i, l := range out {
		switch l.Text {
		case "Text will now output instantly.":
			assert.True(t, skips[i])
		case "Text will now output gradually.":
			assert.False(t, skips[i])
		case "Thanks for playing!":
			assert.False(t, skips[i])
			assert.True(t, l.Force)
		}
	}
	assert.False(t, h.session.State().Skip)
}

func TestSession_ClockAdvancesPerTurn(t *testing.T) {
	h := newHarness(t, Config{}, nil, "look", "look", "quit")
	start := h.session.State().Clock.Now()
	h.run(t)

	assert.Equal(t, 3, int(h.session.State().Clock.Now().Sub(start).Hours()))
	assert.Equal(t, float64(actor.StartingSleep+3), h.session.State().Player.Sleep)
}

func TestSession_ScriptRunsOut(t *testing.T) {
	h := newHarness(t, Config{}, nil, "look")
	outcome, err := h.session.Run(context.Background())

	assert.Equal(t, OutcomeAborted, outcome)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSession_CancelledContext(t *testing.T) {
	h := newHarness(t, Config{}, nil, "look", "quit")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := h.session.Run(ctx)
	assert.Equal(t, OutcomeAborted, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_JournalFailureIsNotFatal(t *testing.T) {
	h := newHarness(t, Config{}, nil, "look", "quit")
	h.journal.Err = io.ErrClosedPipe
	before := testutil.ToFloat64(metrics.JournalErrors)

	assert.Equal(t, OutcomeQuit, h.run(t))
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.JournalErrors))
}

func TestSession_CountsTurns(t *testing.T) {
	look := metrics.TurnsTotal.WithLabelValues("look")
	invalid := metrics.TurnsTotal.WithLabelValues("invalid")
	beforeLook, beforeInvalid := testutil.ToFloat64(look), testutil.ToFloat64(invalid)

	h := newHarness(t, Config{}, nil, "look", "l", "xyzzy", "quit")
	h.run(t)

	assert.Equal(t, beforeLook+2, testutil.ToFloat64(look))
	assert.Equal(t, beforeInvalid+1, testutil.ToFloat64(invalid))
}

func TestNewSession_RequiresCollaborators(t *testing.T) {
	strs, err := locale.Load("en")
	require.NoError(t, err)

	_, err = NewSession(Config{}, Deps{Transport: gametest.NewTransport(), Dice: gametest.NewDice()})
	assert.Error(t, err)
	_, err = NewSession(Config{}, Deps{Strings: strs, Dice: gametest.NewDice()})
	assert.Error(t, err)
	_, err = NewSession(Config{}, Deps{Strings: strs, Transport: gametest.NewTransport()})
	assert.Error(t, err)
}
