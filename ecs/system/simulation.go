package system

import (
	"fmt"

	"github.com/milk9111/acornrun/ecs"
	"github.com/milk9111/acornrun/gadget"
	"go.uber.org/zap"
)

// Simulation is the per-scene system set.
type Simulation struct {
	Scheduler *ecs.Scheduler
	Physics   *PhysicsSystem
	Patrol    *PatrolSystem
}

// NewSimulation builds the fixed system order for one scene. input runs
// first and may be nil in headless use.
func NewSimulation(registry *gadget.Registry, patrolScript string, input ecs.System, log *zap.Logger) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	patrol, err := NewPatrolSystem(patrolScript, log.Named("patrol"))
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	physics := NewPhysicsSystem()

	sched := ecs.NewScheduler()
	if input != nil {
		sched.Add(input)
	}
	sched.Add(NewStunSystem())
	sched.Add(NewGadgetSystem())
	sched.Add(NewPlayerControllerSystem())
	sched.Add(patrol)
	sched.Add(NewMovingPlatformSystem())
	sched.Add(physics)
	sched.Add(NewProjectileSystem(log))
	sched.Add(NewDecoySystem(log))
	sched.Add(NewEnemyContactSystem())
	sched.Add(NewPickupSystem(registry, log))
	sched.Add(NewRespawnSystem(log))
	sched.Add(NewTTLSystem())

	return &Simulation{Scheduler: sched, Physics: physics, Patrol: patrol}, nil
}

func (s *Simulation) Update(w *ecs.World) {
	s.Scheduler.Update(w)
}
