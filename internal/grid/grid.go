package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Pos is a (row, col) board coordinate.
type Pos struct {
	Row, Col int
}

// BadLevelFormatError is returned when a level file cannot be parsed into a
// rectangular tile grid using the Sokoban ASCII alphabet.
type BadLevelFormatError struct {
	Line   int
	Reason string
}

func (e *BadLevelFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("bad level format at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("bad level format: %s", e.Reason)
}

// Grid is the fixed-dimension tile board loaded from a level file. Bounds
// are not checked by the query methods below; callers must stay within
// [0,Rows)x[0,Cols) — every caller in this module does, because levels are
// ringed by walls.
type Grid struct {
	tiles [][]Tile
	rows  int
	cols  int
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Load parses a level file from disk into a Grid.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses a level from an ASCII reader: each line is a row,
// trailing newline stripped; short rows are not padded — the level is
// assumed rectangular and LoadReader fails with BadLevelFormatError
// otherwise.
func LoadReader(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]Tile
	width := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		row := make([]Tile, len(line))
		for i := 0; i < len(line); i++ {
			tile, ok := charTiles[line[i]]
			if !ok {
				return nil, &BadLevelFormatError{Line: lineNo, Reason: fmt.Sprintf("unknown character %q", line[i])}
			}
			row[i] = tile
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, &BadLevelFormatError{Line: lineNo, Reason: "row width does not match preceding rows"}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &BadLevelFormatError{Reason: "empty level file"}
	}

	g := &Grid{tiles: rows, rows: len(rows), cols: width}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) validate() error {
	players, boxes, goals := 0, 0, 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			t := g.tiles[r][c]
			if t.IsPlayerCell() {
				players++
			}
			if t.IsBoxCell() {
				boxes++
			}
			if t.IsGoalCell() {
				goals++
			}
		}
	}
	if players != 1 {
		return &BadLevelFormatError{Reason: fmt.Sprintf("expected exactly one player, found %d", players)}
	}
	if boxes == 0 {
		return &BadLevelFormatError{Reason: "level has no boxes"}
	}
	if goals == 0 {
		return &BadLevelFormatError{Reason: "level has no goals"}
	}
	if boxes != goals {
		return &BadLevelFormatError{Reason: fmt.Sprintf("box count %d does not match goal count %d", boxes, goals)}
	}
	return nil
}

// Get returns the tile at (row, col).
func (g *Grid) Get(row, col int) Tile {
	return g.tiles[row][col]
}

// Set writes the tile at (row, col).
func (g *Grid) Set(row, col int, t Tile) {
	g.tiles[row][col] = t
}

// IsWall reports whether the cell is a wall.
func (g *Grid) IsWall(row, col int) bool { return g.Get(row, col) == Wall }

// IsBox reports whether the cell holds a box (Box or GoalBox).
func (g *Grid) IsBox(row, col int) bool { return g.Get(row, col).IsBoxCell() }

// IsGoal reports whether the cell is a goal cell.
func (g *Grid) IsGoal(row, col int) bool { return g.Get(row, col).IsGoalCell() }

// IsSpace reports whether the cell is free of walls and boxes (Space or Goal).
func (g *Grid) IsSpace(row, col int) bool {
	t := g.Get(row, col)
	return t == Space || t == Goal
}

// IsBlocked reports whether the cell is a wall or holds a box.
func (g *Grid) IsBlocked(row, col int) bool {
	return g.IsWall(row, col) || g.IsBox(row, col)
}

// IsPlayer reports whether the cell holds the player.
func (g *Grid) IsPlayer(row, col int) bool { return g.Get(row, col).IsPlayerCell() }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.rows)
	for r := range tiles {
		tiles[r] = make([]Tile, g.cols)
		copy(tiles[r], g.tiles[r])
	}
	return &Grid{tiles: tiles, rows: g.rows, cols: g.cols}
}

// Bytes returns the row-major byte image of the grid (each row followed by
// '\n'),
// used as the basis for SokobanState hashing and equality.
func (g *Grid) Bytes() []byte {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, g.tiles[r][c].Byte())
		}
		buf = append(buf, '\n')
	}
	return buf
}

// String renders the grid back to its ASCII form.
func (g *Grid) String() string {
	return string(g.Bytes())
}

// LocatePlayer scans for the unique Player/GoalPlayer cell.
func (g *Grid) LocatePlayer() (Pos, bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.IsPlayer(r, c) {
				return Pos{r, c}, true
			}
		}
	}
	return Pos{}, false
}
