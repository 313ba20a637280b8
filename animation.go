package typetween

import (
	"gioui.org/f32"
	"golang.org/x/exp/constraints"
)

// Group ticks several animations in lockstep and finishes once all of them
// have. A Group is itself an Animation, so a Manager can own one and drop
// it as a unit.
type Group struct {
	anims []Animation
	alive func() bool
	Done  bool
}

// NewGroup returns a group over anims. The group takes ownership of the
// given instances.
func NewGroup(anims ...Animation) *Group {
	return &Group{anims: anims}
}

// While makes the group stop as soon as alive reports false, without
// ticking its members again. Use it to tie a group to the lifetime of the
// object its tweens write into.
func (g *Group) While(alive func() bool) *Group {
	g.alive = alive
	return g
}

// Tick advances every unfinished member by dt seconds.
func (g *Group) Tick(dt float32) {
	if g.Done {
		return
	}
	if g.alive != nil && !g.alive() {
		g.Done = true
		return
	}

	allDone := true
	for _, a := range g.anims {
		if !a.IsFinished() {
			a.Tick(dt)
		}
		if !a.IsFinished() {
			allDone = false
		}
	}
	g.Done = allDone
}

// IsFinished reports whether every member has finished or the alive check
// failed.
func (g *Group) IsFinished() bool { return g.Done }

// Clone deep-copies the members.
func (g *Group) Clone() Animation {
	c := &Group{anims: make([]Animation, len(g.anims)), alive: g.alive, Done: g.Done}
	for i, a := range g.anims {
		c.anims[i] = a.Clone()
	}
	return c
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.anims) }

// TweenFloat animates *field from its current value to to over duration
// seconds.
func TweenFloat[T constraints.Float](field *T, to T, duration float32, e Ease) *Tween[T] {
	return NewScalar(field).To(to).Duration(duration).Easing(e)
}

// TweenPoint animates *p from its current position to to over duration
// seconds.
func TweenPoint(p *f32.Point, to f32.Point, duration float32, e Ease) *Tween[f32.Point] {
	return NewVector(p).To(to).Duration(duration).Easing(e)
}
