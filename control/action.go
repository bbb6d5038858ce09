// Package control turns terminal input into player actions.
package control

import "strings"

// Action is a player command
type Action uint8

const (
	ActionNone Action = iota
	ActionNorth
	ActionSouth
	ActionWest
	ActionEast
	ActionNorthWest
	ActionNorthEast
	ActionSouthWest
	ActionSouthEast
	ActionPickUp
	ActionDrop
	ActionInventory
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionNorth:     "north",
	ActionSouth:     "south",
	ActionWest:      "west",
	ActionEast:      "east",
	ActionNorthWest: "northwest",
	ActionNorthEast: "northeast",
	ActionSouthWest: "southwest",
	ActionSouthEast: "southeast",
	ActionPickUp:    "pickup",
	ActionDrop:      "drop",
	ActionInventory: "inventory",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "invalid"
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// Delta returns the step of a movement action, (0, 0) for anything else
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionNorth:
		return 0, -1
	case ActionSouth:
		return 0, 1
	case ActionWest:
		return -1, 0
	case ActionEast:
		return 1, 0
	case ActionNorthWest:
		return -1, -1
	case ActionNorthEast:
		return 1, -1
	case ActionSouthWest:
		return -1, 1
	case ActionSouthEast:
		return 1, 1
	}
	return 0, 0
}

// IsMove reports whether a displaces the player
func (a Action) IsMove() bool {
	dx, dy := a.Delta()
	return dx != 0 || dy != 0
}

// ActionForDelta maps a step back to its movement action
func ActionForDelta(dx, dy int) Action {
	for a := ActionNorth; a <= ActionSouthEast; a++ {
		if ax, ay := a.Delta(); ax == dx && ay == dy {
			return a
		}
	}
	return ActionNone
}
