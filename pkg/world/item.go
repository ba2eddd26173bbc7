package world

import "strings"

// BehaviorID names the effect an item has when it is used.
// Behaviors are bound when the world is built, never looked up from player text.
type BehaviorID string

const (
	BehaviorNone       BehaviorID = ""
	BehaviorPaper      BehaviorID = "paper"
	BehaviorDrive      BehaviorID = "drive"
	BehaviorJumpsuit   BehaviorID = "jumpsuit"
	BehaviorGreenhouse BehaviorID = "greenhouse"
	BehaviorCamera     BehaviorID = "camera"
	BehaviorToilet     BehaviorID = "toilet"
	BehaviorBed        BehaviorID = "bed"
	BehaviorLaptop     BehaviorID = "laptop"
)

// Item is anything that can sit in a container or an inventory.
type Item struct {
	Name     string     `json:"name"`               // Also the key in its ItemSet
	Desc     string     `json:"desc,omitempty"`     // Description with the locale stem removed
	CanUse   bool       `json:"can_use,omitempty"`  // Whether "use" triggers Behavior
	CanTake  bool       `json:"can_take,omitempty"` // Whether the item can move into an inventory
	Behavior BehaviorID `json:"behavior,omitempty"`

	// Item specific state.
	Files        map[string]string `json:"files,omitempty"`   // drive and laptop contents
	Powered      bool              `json:"powered,omitempty"` // laptop on/off
	TutorialSeen bool              `json:"tutorial_seen,omitempty"`
	Quality      int               `json:"quality,omitempty"` // pictures
}

// NewItem creates an item, stripping stem from the front of desc.
func NewItem(name, desc, stem string, canUse, canTake bool, behavior BehaviorID) *Item {
	if !canUse {
		behavior = BehaviorNone
	}
	return &Item{
		Name:     name,
		Desc:     StripStem(desc, stem),
		CanUse:   canUse,
		CanTake:  canTake,
		Behavior: behavior,
	}
}

// HasFiles reports whether the item holds any file data.
func (i *Item) HasFiles() bool {
	return len(i.Files) > 0
}

// StripStem removes a leading authored stem such as "There is" and trims the result.
func StripStem(desc, stem string) string {
	if stem != "" {
		desc = strings.TrimPrefix(desc, stem)
	}
	return strings.TrimSpace(desc)
}
