package world

import "fmt"

// Container is an enterable space holding items. Its description is shown when the player looks
// around while inside it.
type Container struct {
	Name     string   `json:"name"`
	Desc     string   `json:"desc,omitempty"`
	CanLeave bool     `json:"can_leave"`
	Items    *ItemSet `json:"-"`
}

func NewContainer(name, desc, stem string, canLeave bool, items ...*Item) *Container {
	return &Container{
		Name:     name,
		Desc:     StripStem(desc, stem),
		CanLeave: canLeave,
		Items:    NewItemSet(items...),
	}
}

// Port connects two station modules. An open port always has a destination; a closed port
// keeps its destination (if any) but cannot be traversed.
type Port struct {
	Name string `json:"name"` // Orbital direction: front, aft, nadir, zenith, port, starboard
	open bool
	dest *Room
}

func NewOpenPort(name string, dest *Room) *Port {
	return &Port{Name: name, open: dest != nil, dest: dest}
}

func NewClosedPort(name string) *Port {
	return &Port{Name: name}
}

func (p *Port) IsOpen() bool {
	return p.open
}

// Destination returns the room behind the port, or nil while the port is closed.
func (p *Port) Destination() *Room {
	if !p.open {
		return nil
	}
	return p.dest
}

// Open opens the port. A port with nowhere to lead stays closed.
func (p *Port) Open() error {
	if p.dest == nil {
		return fmt.Errorf("open %s port: %w", p.Name, ErrNotPermitted)
	}
	p.open = true
	return nil
}

func (p *Port) Close() {
	p.open = false
}

// Room is a station module. Rooms are never left like containers; the player moves between them
// through ports.
type Room struct {
	Container
	Key        string       `json:"key"`
	HasWindows bool         `json:"has_windows,omitempty"` // Gates the camera
	Containers []*Container `json:"-"`
	Ports      []*Port      `json:"-"`
}

func NewRoom(key, name, desc, stem string, hasWindows bool, items ...*Item) *Room {
	return &Room{
		Container:  *NewContainer(name, desc, stem, false, items...),
		Key:        key,
		HasWindows: hasWindows,
	}
}

// AddContainer places a sub-container in the room.
func (r *Room) AddContainer(c *Container) {
	r.Containers = append(r.Containers, c)
}

// AddPort attaches a port; names are unique per room.
func (r *Room) AddPort(p *Port) error {
	if _, ok := r.Port(p.Name); ok {
		return fmt.Errorf("add %s port to %s: %w", p.Name, r.Name, ErrDuplicate)
	}
	r.Ports = append(r.Ports, p)
	return nil
}

func (r *Room) Port(direction string) (*Port, bool) {
	for _, p := range r.Ports {
		if p.Name == direction {
			return p, true
		}
	}
	return nil, false
}

func (r *Room) FindContainer(name string) (*Container, bool) {
	for _, c := range r.Containers {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

var opposites = map[string]string{
	"front":     "aft",
	"aft":       "front",
	"nadir":     "zenith",
	"zenith":    "nadir",
	"port":      "starboard",
	"starboard": "port",
}

// Opposite returns the direction facing back through a port, or "" for an unknown direction.
func Opposite(direction string) string {
	return opposites[direction]
}
