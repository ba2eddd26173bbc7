package world

// Catalog supplies the localized names and authored descriptions the station is built from.
type Catalog interface {
	Item(key string) (name, desc string)
	Container(key string) (name, desc string)
	Room(key string) (name, desc string)
	ItemStem() string
	ContainerStem() string
}

// Room keys of the station.
const (
	RoomZarya  = "zarya"
	RoomUnity  = "unity"
	RoomZvezda = "zvezda"
)

// Files found on the usb stick at the start of a game.
var DriveFiles = map[string]string{
	"program.py": "print('hello world!')",
}

// NewStation builds the initial three-module station. Zarya is the start room.
func NewStation(c Catalog) *World {
	item := func(key string, canUse, canTake bool, b BehaviorID) *Item {
		name, desc := c.Item(key)
		return NewItem(name, desc, c.ItemStem(), canUse, canTake, b)
	}
	room := func(key string, windows bool, items ...*Item) *Room {
		name, desc := c.Room(key)
		return NewRoom(key, name, desc, c.ContainerStem(), windows, items...)
	}

	laptop := item("laptop", true, false, BehaviorLaptop)
	laptop.Files = map[string]string{}

	drive := item("drive", true, true, BehaviorDrive)
	drive.Files = make(map[string]string, len(DriveFiles))
	for k, v := range DriveFiles {
		drive.Files[k] = v
	}

	boxesName, boxesDesc := c.Container("zarya_boxes")
	boxes := NewContainer(boxesName, boxesDesc, c.ContainerStem(), true,
		item("paper", true, true, BehaviorPaper),
		drive,
		item("jumpsuit", true, true, BehaviorJumpsuit),
	)

	zarya := room(RoomZarya, false, laptop)
	zarya.AddContainer(boxes)

	unity := room(RoomUnity, false)

	zvezda := room(RoomZvezda, true,
		item("greenhouse", true, false, BehaviorGreenhouse),
		item("camera", true, true, BehaviorCamera),
		item("toilet", true, false, BehaviorToilet),
		item("bed", true, false, BehaviorBed),
	)

	mustPorts(zarya,
		NewOpenPort("front", unity),
		NewClosedPort("nadir"),
		NewOpenPort("aft", zvezda),
	)
	mustPorts(unity,
		NewClosedPort("front"),
		NewClosedPort("nadir"),
		NewClosedPort("port"),
		NewClosedPort("zenith"),
		NewClosedPort("starboard"),
		NewOpenPort("aft", zarya),
	)
	mustPorts(zvezda,
		NewOpenPort("front", zarya),
		NewClosedPort("nadir"),
		NewClosedPort("zenith"),
		NewClosedPort("aft"),
	)

	return New(zarya, unity, zvezda)
}

func mustPorts(r *Room, ports ...*Port) {
	for _, p := range ports {
		if err := r.AddPort(p); err != nil {
			panic(err)
		}
	}
}
