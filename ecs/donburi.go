package ecs

import (
	"github.com/phanxgames/typetween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Tween is the component data for an entity driven by System.
type Tween struct {
	Animation typetween.Animation
}

// TweenComponent marks entities whose animation System ticks.
var TweenComponent = donburi.NewComponentType[Tween]()

// FinishedEvent reports that an entity's animation played out and its
// TweenComponent was removed.
type FinishedEvent struct {
	Entity donburi.Entity
}

// FinishedEventType is the Donburi event type for finished animations.
var FinishedEventType = events.NewEventType[FinishedEvent]()

// Attach stores a clone of a on the entry, replacing any animation already
// attached.
func Attach(entry *donburi.Entry, a typetween.Animation) {
	if !entry.HasComponent(TweenComponent) {
		entry.AddComponent(TweenComponent)
	}
	TweenComponent.SetValue(entry, Tween{Animation: a.Clone()})
}

// Detach removes the entry's animation and reports whether it had one.
func Detach(entry *donburi.Entry) bool {
	if !entry.HasComponent(TweenComponent) {
		return false
	}
	entry.RemoveComponent(TweenComponent)
	return true
}

// System ticks every entity that carries a TweenComponent.
type System struct {
	query    *donburi.Query
	finished []donburi.Entity
}

// NewSystem creates a System.
func NewSystem() *System {
	return &System{query: donburi.NewQuery(filter.Contains(TweenComponent))}
}

// Update advances every unfinished animation by dt seconds, then removes
// the component from finished entities and publishes a FinishedEvent for
// each. Removal happens after the query completes, so final-frame observers
// still run this frame.
func (s *System) Update(world donburi.World, dt float32) {
	s.finished = s.finished[:0]
	s.query.Each(world, func(entry *donburi.Entry) {
		a := TweenComponent.Get(entry).Animation
		if a == nil {
			s.finished = append(s.finished, entry.Entity())
			return
		}
		if !a.IsFinished() {
			a.Tick(dt)
		}
		if a.IsFinished() {
			s.finished = append(s.finished, entry.Entity())
		}
	})

	for _, e := range s.finished {
		entry := world.Entry(e)
		if !entry.Valid() || !entry.HasComponent(TweenComponent) {
			continue
		}
		entry.RemoveComponent(TweenComponent)
		FinishedEventType.Publish(world, FinishedEvent{Entity: e})
	}
}
