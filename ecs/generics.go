package ecs

import "github.com/milk9111/acornrun/ecs/component"

// Add attaches value to e, replacing any component of the same kind. The
// world stores the pointer, so later mutations through it are visible.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	s, err := lookupOrCreate(w, kind)
	if err != nil {
		return err
	}
	s.set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := lookup(w, kind)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := lookup(w, kind)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns the lowest-index entity holding kind. Useful for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := lookup(w, kind)
	if s == nil {
		return 0, false
	}
	best := Entity(0)
	for _, id := range s.dense {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if !best.Valid() || e.id() < best.id() {
			best = e
		}
	}
	return best, best.Valid()
}

// ForEach visits every live entity holding kind. The callback may add,
// remove or destroy entities; entities removed mid-walk are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := lookup(w, kind)
	if s == nil {
		return
	}
	for _, id := range s.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		v, ok := s.get(id)
		if !ok {
			continue
		}
		fn(e, v)
	}
}
