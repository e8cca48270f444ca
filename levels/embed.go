package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	TileEmpty     = '.'
	TileSolid     = '#'
	TileClimbable = '|'

	DefaultTileSize = 32
)

// Level is a scene: a tile grid for static geometry plus placed entities.
// Rows are read top to bottom; every row must be the same width.
type Level struct {
	Name     string   `json:"name"`
	TileSize int      `json:"tile_size,omitempty"`
	Rows     []string `json:"rows"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity is a placed object. X and Y are tile coordinates of its centre;
// Props carries type-specific settings.
type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

func (l *Level) Height() int {
	return len(l.Rows)
}

func (l *Level) Tile(x, y int) byte {
	if y < 0 || y >= len(l.Rows) || x < 0 || x >= len(l.Rows[y]) {
		return TileEmpty
	}
	return l.Rows[y][x]
}

// Run is a horizontal strip of identical tiles, used to build one collider
// per strip instead of one per tile.
type Run struct {
	X, Y, Len int
	Tile      byte
}

// Runs merges each row's non-empty tiles into strips.
func (l *Level) Runs() []Run {
	var out []Run
	for y, row := range l.Rows {
		for x := 0; x < len(row); {
			t := row[x]
			if t == TileEmpty {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == t {
				x++
			}
			out = append(out, Run{X: start, Y: y, Len: x - start, Tile: t})
		}
	}
	return out
}

// Prop helpers decode numbers the JSON decoder stored as float64.
func (e Entity) Float(key string, def float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return def
}

func (e Entity) Int(key string, def int) int {
	if v, ok := e.Props[key].(float64); ok {
		return int(v)
	}
	return def
}

func (e Entity) Bool(key string, def bool) bool {
	if v, ok := e.Props[key].(bool); ok {
		return v
	}
	return def
}

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("level %q has no rows", l.Name)
	}
	w := len(l.Rows[0])
	for i, row := range l.Rows {
		if len(row) != w {
			return fmt.Errorf("level %q row %d is %d wide, want %d", l.Name, i, len(row), w)
		}
	}
	if l.TileSize <= 0 {
		l.TileSize = DefaultTileSize
	}
	return nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	name = normalize(name)
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// List returns the embedded level file names in play order (lexical).
func List() []string {
	matches, _ := fs.Glob(LevelsFS, "*.json")
	sort.Strings(matches)
	return matches
}

// Next returns the level after name, wrapping to the first.
func Next(name string) string {
	all := List()
	if len(all) == 0 {
		return ""
	}
	name = normalize(name)
	for i, n := range all {
		if n == name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func normalize(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
