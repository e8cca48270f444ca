// Package session owns what survives between levels (the gadget registry and
// the shop) and rebuilds everything else each time a level loads.
package session

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/ecs/entity"
	"github.com/milk9111/acornrun/ecs/system"
	"github.com/milk9111/acornrun/gadget"
	"github.com/milk9111/acornrun/levels"
	"github.com/milk9111/acornrun/prefabs"
	"github.com/milk9111/acornrun/shop"
	"go.uber.org/zap"
)

type Options struct {
	FirstLevel     string
	StartingAcorns int
	AllGadgets     bool
	// Input runs first every tick. Nil leaves Input components untouched.
	Input ecs.System
}

type Session struct {
	opts     Options
	log      *zap.Logger
	registry *gadget.Registry
	shop     *shop.Shop

	level   string
	world   *ecs.World
	scene   *entity.Scene
	prefabs *entity.Prefabs
	sim     *system.Simulation
	camera  *system.CameraSystem
}

// New builds the registry and shop, grants the starting loadout and loads
// the first level.
func New(opts Options, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.FirstLevel == "" {
		all := levels.List()
		if len(all) == 0 {
			return nil, fmt.Errorf("session: no levels")
		}
		opts.FirstLevel = all[0]
	}

	shopSpec, err := prefabs.LoadShopSpec()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	registry := gadget.NewRegistry()
	sh, err := shop.New(registry, shopSpec, log.Named("shop"))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		opts:     opts,
		log:      log,
		registry: registry,
		shop:     sh,
		camera:   system.NewCameraSystem(common.BaseWidth, common.BaseHeight),
	}
	s.grantStart()
	if err := s.LoadLevel(opts.FirstLevel); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) grantStart() {
	for p := gadget.PlayerOne; p < gadget.MaxPlayers; p++ {
		s.registry.SetAcorns(p, s.opts.StartingAcorns)
		if s.opts.AllGadgets {
			s.shop.GrantAll(p)
		}
	}
}

// LoadLevel replaces the world with a freshly built one. Controllers, markers,
// timers and status flags start over; the registry is kept. On error the
// current level stays loaded.
func (s *Session) LoadLevel(name string) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	p, err := entity.LoadPrefabs()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildLevel(w, lvl, p)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	for _, e := range scene.Players {
		if _, err := system.AttachGadgets(w, e, s.registry, catalog, p.Artifacts, s.log.Named("gadget")); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	sim, err := system.NewSimulation(s.registry, p.World.NPC.Script, s.opts.Input, s.log.Named("sim"))
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.level = name
	s.world = w
	s.scene = scene
	s.prefabs = p
	s.sim = sim
	s.camera.Update(w)
	s.log.Info("level loaded", zap.String("level", lvl.Name), zap.Int("width", lvl.Width()), zap.Int("height", lvl.Height()))
	return nil
}

func loadCatalog() (*gadget.Catalog, error) {
	spec, err := prefabs.LoadGadgetsSpec()
	if err != nil {
		return nil, err
	}
	return gadget.NewCatalog(spec.Tuning()), nil
}

// NextLevel loads the level after the current one, wrapping to the first.
func (s *Session) NextLevel() error {
	return s.LoadLevel(levels.Next(s.level))
}

// Restart wipes every purchase and acorn and returns to the first level.
func (s *Session) Restart() error {
	s.registry.Reset()
	s.grantStart()
	return s.LoadLevel(s.opts.FirstLevel)
}

// Update advances the simulation one tick and logs the events it raised.
func (s *Session) Update() {
	s.sim.Update(s.world)
	s.camera.Update(s.world)
	for _, evt := range s.world.Events().Drain() {
		s.log.Debug("event",
			zap.String("kind", string(evt.Kind)),
			zap.Stringer("entity", evt.Entity),
			zap.Stringer("source", evt.Source),
			zap.Int("value", evt.Value),
		)
	}
}

// HandleFileChange applies a hot-reloaded prefab or script. name is the
// file's base name as reported by prefabs.Watcher. Failures keep the previous
// values.
func (s *Session) HandleFileChange(name string) error {
	switch {
	case name == prefabs.GadgetsFile:
		return s.ReloadGadgets()
	case name == "shop.yaml":
		return s.ReloadShop()
	case filepath.Ext(name) == ".tengo":
		return s.sim.Patrol.Reload()
	default:
		s.log.Info("prefab changed, applies on next level load", zap.String("file", name))
		return nil
	}
}

// ReloadGadgets rebuilds the catalog from gadgets.yaml and swaps it into the
// live controllers. Phase state is kept.
func (s *Session) ReloadGadgets() error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("reload gadgets: %w", err)
	}
	ecs.ForEach(s.world, component.GadgetsComponent.Kind(), func(_ ecs.Entity, g *component.Gadgets) {
		g.Controller.SetCatalog(catalog)
	})
	s.log.Info("gadget tuning reloaded")
	return nil
}

func (s *Session) ReloadShop() error {
	spec, err := prefabs.LoadShopSpec()
	if err != nil {
		return fmt.Errorf("reload shop: %w", err)
	}
	if err := s.shop.SetItems(spec); err != nil {
		return fmt.Errorf("reload shop: %w", err)
	}
	s.log.Info("shop reloaded", zap.Int("items", len(s.shop.Items())))
	return nil
}

func (s *Session) World() *ecs.World { return s.world }
func (s *Session) Scene() *entity.Scene { return s.scene }
func (s *Session) Level() string { return s.level }
func (s *Session) Registry() *gadget.Registry { return s.registry }
func (s *Session) Shop() *shop.Shop { return s.shop }
func (s *Session) Simulation() *system.Simulation { return s.sim }

// Controller returns player p's gadget controller in the current level.
func (s *Session) Controller(p gadget.Player) (*gadget.Controller, bool) {
	if !p.Valid() {
		return nil, false
	}
	g, ok := ecs.Get(s.world, s.scene.Players[p], component.GadgetsComponent.Kind())
	if !ok {
		return nil, false
	}
	return g.Controller, true
}
