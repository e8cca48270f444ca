package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/acornrun/common"
	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/ecs/component"
	"github.com/milk9111/acornrun/prefabs"
	"go.uber.org/zap"
)

// PatrolSystem walks patrolling NPCs back and forth. The turn decision comes
// from a tengo script reading globals x, min_x, max_x and dir and writing dir.
type PatrolSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	log        *zap.Logger
	dt         float64
}

// NewPatrolSystem compiles scriptPath. An empty path uses the built-in turn
// rule.
func NewPatrolSystem(scriptPath string, log *zap.Logger) (*PatrolSystem, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &PatrolSystem{scriptPath: scriptPath, log: log, dt: common.TickSeconds}
	if scriptPath == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the patrol script. On failure the previous script stays
// in use.
func (s *PatrolSystem) Reload() error {
	if s.scriptPath == "" {
		return nil
	}
	src, err := prefabs.LoadScript(s.scriptPath)
	if err != nil {
		return fmt.Errorf("patrol: %w", err)
	}
	compiled, err := compilePatrolScript(src)
	if err != nil {
		return fmt.Errorf("patrol: compile %s: %w", s.scriptPath, err)
	}
	s.compiled = compiled
	return nil
}

func compilePatrolScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("min_x", 0.0)
	_ = script.Add("max_x", 0.0)
	_ = script.Add("dir", 1.0)
	script.SetImports(stdlib.GetModuleMap("math"))
	return script.Compile()
}

func (s *PatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PatrolComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Patrol, t *component.Transform) {
		if IsStunned(w, e) {
			setKinematicVelocity(w, e, 0, 0)
			return
		}

		p.Dir = s.decide(e, t.X, p)
		vx := p.Dir * p.Speed
		if !setKinematicVelocity(w, e, vx, 0) {
			t.X += vx * s.dt
		}
	})
}

func (s *PatrolSystem) decide(e ecs.Entity, x float64, p *component.Patrol) float64 {
	if s.compiled != nil {
		dir, err := s.runScript(x, p)
		if err == nil {
			return dir
		}
		s.log.Warn("patrol script failed, using built-in rule", zap.Stringer("entity", e), zap.Error(err))
		s.compiled = nil
	}
	return turnDirection(x, p.MinX, p.MaxX, p.Dir)
}

func (s *PatrolSystem) runScript(x float64, p *component.Patrol) (float64, error) {
	c := s.compiled
	if err := c.Set("x", x); err != nil {
		return 0, err
	}
	if err := c.Set("min_x", p.MinX); err != nil {
		return 0, err
	}
	if err := c.Set("max_x", p.MaxX); err != nil {
		return 0, err
	}
	if err := c.Set("dir", p.Dir); err != nil {
		return 0, err
	}
	if err := c.Run(); err != nil {
		return 0, err
	}
	dir := c.Get("dir").Float()
	if dir < 0 {
		return -1, nil
	}
	return 1, nil
}

func turnDirection(x, minX, maxX, dir float64) float64 {
	switch {
	case x <= minX:
		return 1
	case x >= maxX:
		return -1
	case dir < 0:
		return -1
	default:
		return 1
	}
}

// setKinematicVelocity drives e's body if it has one and reports whether it
// did.
func setKinematicVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) bool {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return false
	}
	pb.Body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
	return true
}
