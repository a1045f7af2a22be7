// Package grid implements the Sokoban tile alphabet and the ASCII-backed
// board storage that sokoban.State is built on.
package grid

// Tile is a closed tagged variant over the cell kinds a Sokoban board can
// hold. Two tiles double as overlays: GoalBox is simultaneously a box and a
// goal, GoalPlayer is simultaneously the player and a goal.
type Tile uint8

const (
	Wall Tile = iota
	Box
	Goal
	Player
	GoalBox
	GoalPlayer
	Space
)

// charTiles maps the level-file ASCII alphabet to tiles.
var charTiles = map[byte]Tile{
	'#': Wall,
	'$': Box,
	'.': Goal,
	'@': Player,
	'+': GoalBox,
	'-': GoalPlayer,
	' ': Space,
}

var tileChars = [...]byte{
	Wall:       '#',
	Box:        '$',
	Goal:       '.',
	Player:     '@',
	GoalBox:    '+',
	GoalPlayer: '-',
	Space:      ' ',
}

// Byte returns the ASCII encoding of a tile.
func (t Tile) Byte() byte {
	return tileChars[t]
}

// IsGoalCell reports whether the tile occupies a goal cell (Goal, GoalBox or
// GoalPlayer).
func (t Tile) IsGoalCell() bool {
	return t == Goal || t == GoalBox || t == GoalPlayer
}

// IsBlockerForPush reports whether the tile blocks a box from being pushed
// into its cell (Wall, Box or GoalBox).
func (t Tile) IsBlockerForPush() bool {
	return t == Wall || t == Box || t == GoalBox
}

// IsBoxCell reports whether the tile is a box, goal-overlaid or not.
func (t Tile) IsBoxCell() bool {
	return t == Box || t == GoalBox
}

// IsPlayerCell reports whether the tile is the player, goal-overlaid or not.
func (t Tile) IsPlayerCell() bool {
	return t == Player || t == GoalPlayer
}

// LeaveOverlay returns the tile a cell decays to once a box or player steps
// off of it: Goal if the cell was a goal, Space otherwise.
func LeaveOverlay(wasGoal bool) Tile {
	if wasGoal {
		return Goal
	}
	return Space
}

// EnterBoxOverlay returns the tile a cell becomes once a box enters it.
func EnterBoxOverlay(isGoal bool) Tile {
	if isGoal {
		return GoalBox
	}
	return Box
}

// EnterPlayerOverlay returns the tile a cell becomes once the player enters it.
func EnterPlayerOverlay(isGoal bool) Tile {
	if isGoal {
		return GoalPlayer
	}
	return Player
}
