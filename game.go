package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/config"
	"github.com/milk9111/acornrun/ecs/input"
	"github.com/milk9111/acornrun/ecs/render"
	"github.com/milk9111/acornrun/prefabs"
	"github.com/milk9111/acornrun/session"
	"go.uber.org/zap"
)

// errQuit ends ebiten.RunGame without being reported as a failure.
var errQuit = errors.New("quit")

type globalKeys struct {
	shop      ebiten.Key
	nextLevel ebiten.Key
	restart   ebiten.Key
}

type Game struct {
	frames int
	debug  bool
	log    *zap.Logger
	keys   globalKeys

	session  *session.Session
	renderer *render.Renderer
	hud      *render.HUD
	shopUI   *ShopUI
	shopOpen bool
	watcher  *prefabs.Watcher
}

func NewGame(cfg *config.Config, debug bool, log *zap.Logger) (*Game, error) {
	bindings, err := input.ParseAll(cfg.Players)
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	keys, err := parseGlobalKeys(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	sess, err := session.New(session.Options{
		FirstLevel:     cfg.Session.FirstLevel,
		StartingAcorns: cfg.Session.StartingAcorns,
		AllGadgets:     cfg.Session.AllGadgets,
		Input:          input.NewSystem(bindings, nil),
	}, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		log:      log,
		keys:     keys,
		session:  sess,
		renderer: render.NewRenderer(),
		hud:      render.NewHUD(sess.Registry()),
		shopUI:   NewShopUI(sess.Shop(), log.Named("shop_ui")),
	}

	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func parseGlobalKeys(cfg config.GlobalKeys) (globalKeys, error) {
	var k globalKeys
	var err error
	if k.shop, err = input.ParseKey(cfg.Shop); err != nil {
		return k, fmt.Errorf("shop: %w", err)
	}
	if k.nextLevel, err = input.ParseKey(cfg.NextLevel); err != nil {
		return k, fmt.Errorf("next_level: %w", err)
	}
	if k.restart, err = input.ParseKey(cfg.Restart); err != nil {
		return k, fmt.Errorf("restart: %w", err)
	}
	return k, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(g.keys.shop) {
		g.shopOpen = !g.shopOpen
		if g.shopOpen {
			g.shopUI.Refresh()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.shopOpen {
			return errQuit
		}
		g.shopOpen = false
	}
	if g.shopOpen {
		g.shopUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(g.keys.nextLevel) {
		if err := g.session.NextLevel(); err != nil {
			g.log.Error("next level", zap.Error(err))
		}
	}
	if inpututil.IsKeyJustPressed(g.keys.restart) {
		if err := g.session.Restart(); err != nil {
			g.log.Error("restart", zap.Error(err))
		}
	}

	g.session.Update()
	return nil
}

// pollWatcher applies any prefab changes without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.session.HandleFileChange(name); err != nil {
				g.log.Warn("hot reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			if name == "shop.yaml" {
				g.shopUI.Refresh()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World()
	g.renderer.Draw(w, screen)
	g.hud.Draw(w, screen)

	if g.debug {
		view := g.renderer.Camera(w)
		render.DrawPhysicsDebug(g.session.Simulation().Physics.Space(), screen, view)
		render.DrawHitboxes(w, screen, view)
		render.DrawGadgetDebug(w, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  FPS: %.2f", g.session.Level(), ebiten.ActualFPS()), common.BaseWidth/2-80, 4)
	}

	if g.shopOpen {
		g.shopUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
