package state

import "time"

// Epoch is the in-fiction date a new game starts on.
var Epoch = time.Unix(968716800, 0).UTC()

const (
	TurnDuration = time.Hour
	DateLayout   = "02.01.2006"
)

// Clock is the fictional timestamp of a game. It only moves forward.
type Clock struct {
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: Epoch}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Tick() {
	c.now = c.now.Add(TurnDuration)
}

// Sleep advances the clock by the given number of hours. Negative values are ignored.
func (c *Clock) Sleep(hours float64) {
	if hours <= 0 {
		return
	}
	c.now = c.now.Add(time.Duration(hours * float64(time.Hour)))
}

// Date renders the current fictional date as dd.mm.yyyy.
func (c *Clock) Date() string {
	return c.now.Format(DateLayout)
}
