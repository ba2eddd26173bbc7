package world

import (
	"fmt"
	"maps"
	"slices"
)

// World owns every room, container, item and port of one game.
type World struct {
	Rooms map[string]*Room
	Start *Room
}

func New(start *Room, rooms ...*Room) *World {
	w := &World{Rooms: make(map[string]*Room, len(rooms)+1), Start: start}
	w.Rooms[start.Key] = start
	for _, r := range rooms {
		w.Rooms[r.Key] = r
	}
	return w
}

// RoomItems returns the items lying in a room, in placement order.
func (w *World) RoomItems(room *Room) []*Item {
	return room.Items.Items()
}

// ItemSets returns the item set of every room and container, rooms in key order.
func (w *World) ItemSets() []*ItemSet {
	var sets []*ItemSet
	for _, key := range slices.Sorted(maps.Keys(w.Rooms)) {
		r := w.Rooms[key]
		sets = append(sets, r.Items)
		for _, c := range r.Containers {
			sets = append(sets, c.Items)
		}
	}
	return sets
}

// MoveItem transfers ownership of the named item between two sets. On error neither set changes.
func (w *World) MoveItem(name string, from, to *ItemSet) error {
	if !from.Has(name) {
		return fmt.Errorf("move %q: %w", name, ErrNotFound)
	}
	if to.Has(name) {
		return fmt.Errorf("move %q: %w", name, ErrDuplicate)
	}
	it, err := from.Remove(name)
	if err != nil {
		return err
	}
	return to.Add(it)
}

// Port looks up a port of room by direction.
func (w *World) Port(room *Room, direction string) (*Port, error) {
	p, ok := room.Port(direction)
	if !ok {
		return nil, fmt.Errorf("%s has no %s port: %w", room.Name, direction, ErrNoSuchPort)
	}
	return p, nil
}

// Traverse returns the room reached by going through the port facing direction.
func (w *World) Traverse(room *Room, direction string) (*Room, error) {
	p, err := w.Port(room, direction)
	if err != nil {
		return nil, err
	}
	dest := p.Destination()
	if dest == nil {
		return nil, fmt.Errorf("%s %s port: %w", room.Name, direction, ErrPortClosed)
	}
	return dest, nil
}

// Reachable lists the keys of rooms reachable from the start room through open ports.
func (w *World) Reachable() []string {
	seen := map[string]bool{}
	queue := []*Room{w.Start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		if seen[r.Key] {
			continue
		}
		seen[r.Key] = true
		for _, p := range r.Ports {
			if d := p.Destination(); d != nil && !seen[d.Key] {
				queue = append(queue, d)
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks the world graph: open ports lead to known rooms, no room is orphaned and rooms
// cannot be left like containers.
func (w *World) Validate() error {
	if w.Start == nil {
		return fmt.Errorf("world has no start room")
	}
	for key, r := range w.Rooms {
		if r.CanLeave {
			return fmt.Errorf("room %s is leavable: %w", key, ErrNotPermitted)
		}
		for _, p := range r.Ports {
			if !p.IsOpen() {
				continue
			}
			d := p.Destination()
			if d == nil || w.Rooms[d.Key] != d {
				return fmt.Errorf("room %s %s port leads nowhere: %w", key, p.Name, ErrNotFound)
			}
		}
	}
	reachable := w.Reachable()
	for key := range w.Rooms {
		if !slices.Contains(reachable, key) {
			return fmt.Errorf("room %s is unreachable from %s", key, w.Start.Key)
		}
	}
	return nil
}
