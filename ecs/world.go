package ecs

import "github.com/milk9111/acornrun/ecs/component"

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and every component attached to it. It reports
// false if e was already gone.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Count returns how many entities carry the component kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := lookup(w, kind)
	if s == nil {
		return 0
	}
	return s.len()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func lookup[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	s, ok := w.stores[kind.ID()].(*sparseSet[T])
	if !ok {
		return nil
	}
	return s
}

func lookupOrCreate[T any](w *World, kind component.ComponentKind[T]) (*sparseSet[T], error) {
	if !kind.Valid() {
		return nil, component.ErrInvalidComponentKind
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	existing, ok := w.stores[kind.ID()]
	if !ok {
		s := newSparseSet[T]()
		w.stores[kind.ID()] = s
		return s, nil
	}
	s, ok := existing.(*sparseSet[T])
	if !ok {
		return nil, component.ErrInvalidComponentKind
	}
	return s, nil
}
