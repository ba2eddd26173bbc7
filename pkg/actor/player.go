package actor

import (
	"strings"

	"github.com/jwebster45206/zarya/pkg/world"
)

const (
	DefaultOutfit = "jumpsuit"
	DoubleOutfit  = "two jumpsuits"
	StartingSleep = 5
	// SleepThreshold is how tired the player must be before the bed lets them sleep.
	SleepThreshold = 8
)

// Player is the single player character of a session.
type Player struct {
	Name      string         `json:"name"`
	Inventory *world.ItemSet `json:"-"`
	Wearing   string         `json:"wearing,omitempty"`
	Sleep     float64        `json:"sleep"` // Grows by one every turn
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Inventory: world.NewItemSet(),
		Wearing:   DefaultOutfit,
		Sleep:     StartingSleep,
	}
}

// SetName renames the player. Blank names are ignored and reported as false.
func (p *Player) SetName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p.Name = name
	return true
}

// Tire adds one turn's worth of tiredness.
func (p *Player) Tire() {
	p.Sleep++
}

// Tired reports whether the player is tired enough to sleep.
func (p *Player) Tired() bool {
	return p.Sleep > SleepThreshold
}

// Rest clears tiredness and returns how many hours were slept.
func (p *Player) Rest() float64 {
	hours := p.Sleep
	p.Sleep = 0
	return hours
}
