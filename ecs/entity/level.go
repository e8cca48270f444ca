package entity

import (
	"fmt"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/levels"
)

// killMargin is how far below the bottom row a player may fall before being
// sent back.
const killMargin = 96

// Scene is what BuildLevel placed.
type Scene struct {
	Level   *levels.Level
	Players [gadget.MaxPlayers]ecs.Entity
	Bounds  ecs.Entity
	Width   float64
	Height  float64
}

type buildContext struct {
	Prefabs  *Prefabs
	TileSize float64
	Scene    *Scene
}

type placementFn func(w *ecs.World, placed levels.Entity, ctx *buildContext) error

var placementRegistry = map[string]placementFn{
	"player_spawn": placePlayer,
	"npc":          placeNPC,
	"platform":     placePlatform,
	"pickup":       placePickup,
}

// BuildLevel populates w with lvl's geometry and placed entities. Both player
// spawns are required.
func BuildLevel(w *ecs.World, lvl *levels.Level, p *Prefabs) (*Scene, error) {
	if w == nil || lvl == nil || p == nil {
		return nil, fmt.Errorf("build level: missing world, level or prefabs")
	}

	ts := float64(lvl.TileSize)
	if ts <= 0 {
		ts = levels.DefaultTileSize
	}
	scene := &Scene{
		Level:  lvl,
		Width:  float64(lvl.Width()) * ts,
		Height: float64(lvl.Height()) * ts,
	}
	ctx := &buildContext{Prefabs: p, TileSize: ts, Scene: scene}

	if err := buildTerrain(w, lvl, ctx); err != nil {
		return nil, fmt.Errorf("build level %q: %w", lvl.Name, err)
	}

	for i, placed := range lvl.Entities {
		place, ok := placementRegistry[placed.Type]
		if !ok {
			return nil, fmt.Errorf("build level %q: entity %d: unknown type %q", lvl.Name, i, placed.Type)
		}
		if err := place(w, placed, ctx); err != nil {
			return nil, fmt.Errorf("build level %q: entity %d (%s): %w", lvl.Name, i, placed.Type, err)
		}
	}

	for i, e := range scene.Players {
		if !e.Valid() {
			return nil, fmt.Errorf("build level %q: no spawn for player %d", lvl.Name, i)
		}
	}

	bounds, err := NewLevelBounds(w, scene.Width, scene.Height, scene.Height+killMargin)
	if err != nil {
		return nil, fmt.Errorf("build level %q: %w", lvl.Name, err)
	}
	scene.Bounds = bounds

	return scene, nil
}

func buildTerrain(w *ecs.World, lvl *levels.Level, ctx *buildContext) error {
	ts := ctx.TileSize
	terrain := ctx.Prefabs.World.Terrain
	for _, run := range lvl.Runs() {
		width := float64(run.Len) * ts
		x := float64(run.X)*ts + width/2
		y := float64(run.Y)*ts + ts/2
		var err error
		switch run.Tile {
		case levels.TileSolid:
			_, err = NewSolid(w, x, y, width, ts, terrain.Solid.RGBA)
		case levels.TileClimbable:
			_, err = NewClimbZone(w, x, y, width, ts, terrain.Climbable.RGBA)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (ctx *buildContext) pixels(v float64) float64 {
	return (v + 0.5) * ctx.TileSize
}

func placePlayer(w *ecs.World, placed levels.Entity, ctx *buildContext) error {
	idx := gadget.Player(placed.Int("player", 0))
	if !idx.Valid() {
		return fmt.Errorf("invalid player %d", idx)
	}
	if ctx.Scene.Players[idx].Valid() {
		return fmt.Errorf("duplicate spawn for player %d", idx)
	}
	e, err := NewPlayer(w, ctx.Prefabs.Player, idx, ctx.pixels(placed.X), ctx.pixels(placed.Y))
	if err != nil {
		return err
	}
	ctx.Scene.Players[idx] = e
	return nil
}

func placeNPC(w *ecs.World, placed levels.Entity, ctx *buildContext) error {
	spec := &ctx.Prefabs.World.NPC
	x := ctx.pixels(placed.X)
	// NPCs stand on the tile row below their centre.
	y := (placed.Y+1)*ctx.TileSize - spec.Box.Height/2
	minX := ctx.pixels(placed.Float("min_x", placed.X))
	maxX := ctx.pixels(placed.Float("max_x", placed.X))
	_, err := NewNPC(w, spec, x, y, minX, maxX, placed.Bool("destroy_on_hit", false))
	return err
}

func placePlatform(w *ecs.World, placed levels.Entity, ctx *buildContext) error {
	width := placed.Float("width", 2) * ctx.TileSize
	height := placed.Float("height", 0.5) * ctx.TileSize
	ax, ay := ctx.pixels(placed.X), ctx.pixels(placed.Y)
	bx := ctx.pixels(placed.Float("to_x", placed.X))
	by := ctx.pixels(placed.Float("to_y", placed.Y))
	_, err := NewMovingPlatform(w, &ctx.Prefabs.World.Platform, ax, ay, bx, by, width, height)
	return err
}

func placePickup(w *ecs.World, placed levels.Entity, ctx *buildContext) error {
	_, err := NewAcornPickup(w, &ctx.Prefabs.World.Pickup, ctx.pixels(placed.X), ctx.pixels(placed.Y))
	return err
}
