package state

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jwebster45206/zarya/pkg/actor"
	"github.com/jwebster45206/zarya/pkg/world"
)

// GameState is the mutable state of one game session. The interpreter owns it and passes it to
// handlers and item behaviors explicitly.
type GameState struct {
	ID        uuid.UUID        `json:"id"`    // Unique ID per session
	Depth     int              `json:"depth"` // 0 for the outermost game, +1 per nested text game
	World     *world.World     `json:"-"`
	Player    *actor.Player    `json:"player"`
	Room      *world.Room      `json:"-"`
	Container *world.Container `json:"-"` // Set while searching inside a container
	Clock     *Clock           `json:"-"`
	Skip      bool             `json:"skip"` // Player asked for instant output
}

func NewGameState(w *world.World, p *actor.Player) *GameState {
	return &GameState{
		ID:     uuid.New(),
		World:  w,
		Player: p,
		Room:   w.Start,
		Clock:  NewClock(),
	}
}

// Here is the container the player is currently in: the searched container, or the room itself.
func (gs *GameState) Here() *world.Container {
	if gs.Container != nil {
		return gs.Container
	}
	return &gs.Room.Container
}

// Inside reports whether the player is inside a sub-container rather than a room.
func (gs *GameState) Inside() bool {
	return gs.Container != nil
}

// Enter moves the player into a container of the current room. Only one level of nesting exists,
// so searching from inside a container always fails.
func (gs *GameState) Enter(name string) (*world.Container, error) {
	if gs.Container != nil {
		return nil, fmt.Errorf("search %q inside %s: %w", name, gs.Container.Name, world.ErrNotFound)
	}
	c, ok := gs.Room.FindContainer(name)
	if !ok {
		return nil, fmt.Errorf("search %q in %s: %w", name, gs.Room.Name, world.ErrNotFound)
	}
	gs.Container = c
	return c, nil
}

// Leave pops the player back into the room, if the current container can be left.
func (gs *GameState) Leave() (*world.Container, error) {
	here := gs.Here()
	if gs.Container == nil || !here.CanLeave {
		return nil, fmt.Errorf("leave %s: %w", here.Name, world.ErrNotPermitted)
	}
	gs.Container = nil
	return here, nil
}

// Go moves the player through a port of the current room.
func (gs *GameState) Go(direction string) (*world.Room, error) {
	if gs.Container != nil {
		return nil, fmt.Errorf("go %s from inside %s: %w", direction, gs.Container.Name, world.ErrNotPermitted)
	}
	next, err := gs.World.Traverse(gs.Room, direction)
	if err != nil {
		return nil, err
	}
	gs.Room = next
	return next, nil
}

// Reachable finds an item in the inventory or in the current container.
func (gs *GameState) Reachable(name string) (*world.Item, bool) {
	if it, ok := gs.Player.Inventory.Get(name); ok {
		return it, true
	}
	return gs.Here().Items.Get(name)
}

// Take moves an item from the current container into the inventory.
func (gs *GameState) Take(name string) (*world.Item, error) {
	it, ok := gs.Here().Items.Get(name)
	if !ok {
		return nil, fmt.Errorf("take %q: %w", name, world.ErrNotFound)
	}
	if !it.CanTake {
		return nil, fmt.Errorf("take %q: %w", name, world.ErrNotPermitted)
	}
	if err := gs.World.MoveItem(name, gs.Here().Items, gs.Player.Inventory); err != nil {
		return nil, err
	}
	return it, nil
}

// Drop moves an item from the inventory into the current container.
func (gs *GameState) Drop(name string) (*world.Item, error) {
	it, ok := gs.Player.Inventory.Get(name)
	if !ok {
		return nil, fmt.Errorf("drop %q: %w", name, world.ErrNotFound)
	}
	if err := gs.World.MoveItem(name, gs.Player.Inventory, gs.Here().Items); err != nil {
		return nil, err
	}
	return it, nil
}

// Tick advances one turn: the player grows a little more tired and the clock moves an hour.
func (gs *GameState) Tick() {
	gs.Player.Tire()
	gs.Clock.Tick()
}

// FindBehavior finds a reachable item with the given behavior, inventory first.
func (gs *GameState) FindBehavior(b world.BehaviorID) (*world.Item, bool) {
	for _, set := range []*world.ItemSet{gs.Player.Inventory, gs.Here().Items} {
		for _, it := range set.Items() {
			if it.Behavior == b {
				return it, true
			}
		}
	}
	return nil, false
}
