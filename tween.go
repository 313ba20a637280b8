package typetween

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Animation is the capability set a Manager drives. Every *Tween[T]
// implements it regardless of T, so one Manager can own tweens of mixed
// value types.
type Animation interface {
	// Tick advances the animation by dt seconds.
	Tick(dt float32)
	// IsFinished reports whether a non-repeating animation has played out.
	IsFinished() bool
	// Clone returns an independent copy. Bound references are shared.
	Clone() Animation
}

// Vector is satisfied by value types with their own arithmetic, such as
// gioui.org/f32.Point.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float32) T
}

// LerpFunc interpolates from a towards b by t. t may leave [0, 1] for
// overshooting curves.
type LerpFunc[T any] func(a, b T, t float32) T

// ScalarLerp interpolates plain floating-point values.
func ScalarLerp[T constraints.Float](a, b T, t float32) T {
	return a + (b-a)*T(t)
}

// VectorLerp interpolates values that implement Vector.
func VectorLerp[T Vector[T]](a, b T, t float32) T {
	return a.Add(b.Sub(a).Mul(t))
}

// Endpoint is either a literal value captured at configuration time or a
// live reference read on every tick. The referenced storage is never owned;
// the host keeps it valid for the tween's lifetime.
type Endpoint[T any] struct {
	value T
	ref   *T
}

// Literal returns an endpoint fixed at v.
func Literal[T any](v T) Endpoint[T] { return Endpoint[T]{value: v} }

// Live returns an endpoint that tracks *p.
func Live[T any](p *T) Endpoint[T] { return Endpoint[T]{ref: p} }

// Resolve returns the endpoint's current value.
func (e Endpoint[T]) Resolve() T {
	if e.ref != nil {
		return *e.ref
	}
	return e.value
}

// IsLive reports whether the endpoint reads through a reference.
func (e Endpoint[T]) IsLive() bool { return e.ref != nil }

// Tween interpolates a value of type T between two endpoints over time.
// Configuration methods return the receiver so calls can be chained:
//
//	x := float32(0)
//	tw := typetween.NewScalar(&x).To(10).Duration(2).Easing(typetween.OutBounce)
//	tw.Tick(dt)
//
// A Tween is not safe for concurrent use.
type Tween[T any] struct {
	lerp LerpFunc[T]

	duration float32
	delay    float32
	ease     Ease
	repeat   bool
	yoyo     bool

	from Endpoint[T]
	to   Endpoint[T]
	out  *T

	onUpdate        func(value T, t float32)
	onComplete      func(value T)
	onCycleComplete func(value T)

	elapsed  float32
	reversed bool
	current  T
}

// NewFunc creates a tween that interpolates with lerp. When out is non-nil it
// is bound as the output and its current value becomes the start value.
func NewFunc[T any](lerp LerpFunc[T], out *T) *Tween[T] {
	tw := &Tween[T]{lerp: lerp}
	if out != nil {
		tw.out = out
		tw.from = Literal(*out)
		tw.current = *out
	}
	return tw
}

// NewScalar creates a tween over a floating-point type. See NewFunc for out.
func NewScalar[T constraints.Float](out *T) *Tween[T] {
	return NewFunc(ScalarLerp[T], out)
}

// NewVector creates a tween over a Vector type. See NewFunc for out.
func NewVector[T Vector[T]](out *T) *Tween[T] {
	return NewFunc(VectorLerp[T], out)
}

// From sets a literal start value, replacing any live start reference.
func (tw *Tween[T]) From(v T) *Tween[T] {
	tw.from = Literal(v)
	return tw
}

// FromRef makes the start value track *p, replacing any literal.
func (tw *Tween[T]) FromRef(p *T) *Tween[T] {
	tw.from = Live(p)
	return tw
}

// To sets a literal end value, replacing any live end reference.
func (tw *Tween[T]) To(v T) *Tween[T] {
	tw.to = Literal(v)
	return tw
}

// ToRef makes the end value track *p, replacing any literal.
func (tw *Tween[T]) ToRef(p *T) *Tween[T] {
	tw.to = Live(p)
	return tw
}

// Duration sets the length of one forward leg in seconds.
func (tw *Tween[T]) Duration(d float32) *Tween[T] {
	tw.duration = d
	return tw
}

// Delay sets the wait before playback starts, in seconds.
func (tw *Tween[T]) Delay(d float32) *Tween[T] {
	tw.delay = d
	return tw
}

// Easing selects the shaping curve.
func (tw *Tween[T]) Easing(e Ease) *Tween[T] {
	tw.ease = e
	return tw
}

// Repeat loops the tween forever. A repeating tween never finishes.
func (tw *Tween[T]) Repeat(r bool) *Tween[T] {
	tw.repeat = r
	return tw
}

// Yoyo plays each cycle forward then back, doubling the cycle length.
func (tw *Tween[T]) Yoyo(y bool) *Tween[T] {
	tw.yoyo = y
	return tw
}

// Bind writes every computed value through out. Pass nil to unbind.
func (tw *Tween[T]) Bind(out *T) *Tween[T] {
	tw.out = out
	return tw
}

// OnUpdate replaces the per-tick observer. It receives the value and the
// shaped progress t.
func (tw *Tween[T]) OnUpdate(fn func(value T, t float32)) *Tween[T] {
	tw.onUpdate = fn
	return tw
}

// OnComplete replaces the observer called on the terminal tick of a
// non-repeating tween. It fires again on every later tick for as long as
// the caller keeps ticking the finished tween.
func (tw *Tween[T]) OnComplete(fn func(value T)) *Tween[T] {
	tw.onComplete = fn
	return tw
}

// OnCycleComplete replaces the observer called when a yoyo tween returns
// from its reverse leg to the forward leg. Non-yoyo tweens never enter the
// reverse leg, so it does not fire for them.
func (tw *Tween[T]) OnCycleComplete(fn func(value T)) *Tween[T] {
	tw.onCycleComplete = fn
	return tw
}

// Reset rewinds to the beginning, delay included.
func (tw *Tween[T]) Reset() {
	tw.elapsed = 0
}

// Stop jumps to the end of the first forward leg. A plain tween reports
// finished afterwards; yoyo and repeating tweens keep playing from there.
func (tw *Tween[T]) Stop() {
	tw.elapsed = tw.delay + tw.duration
}

// Elapsed returns the seconds accumulated since the last Reset.
func (tw *Tween[T]) Elapsed() float32 { return tw.elapsed }

// Value returns the most recently computed value. Before the first
// effective tick it holds the bound output's initial value, or T's zero
// value when unbound.
func (tw *Tween[T]) Value() T { return tw.current }

// Reversed reports whether the last tick ran the reverse leg of a yoyo.
func (tw *Tween[T]) Reversed() bool { return tw.reversed }

// Validate reports configuration that makes Tick produce undefined values.
// Tick itself never checks.
func (tw *Tween[T]) Validate() error {
	if !(tw.duration > 0) {
		return fmt.Errorf("typetween: duration %v must be positive", tw.duration)
	}
	if tw.delay < 0 {
		return fmt.Errorf("typetween: delay %v must not be negative", tw.delay)
	}
	if tw.lerp == nil {
		return fmt.Errorf("typetween: tween has no interpolation function")
	}
	return nil
}

func (tw *Tween[T]) cycleDuration() float32 {
	if tw.yoyo {
		return tw.duration * 2
	}
	return tw.duration
}

// Tick advances the tween by dt seconds, writes the bound output and
// notifies observers.
func (tw *Tween[T]) Tick(dt float32) {
	tw.elapsed += dt
	if tw.elapsed < tw.delay {
		return
	}

	effective := tw.elapsed - tw.delay
	cycle := tw.cycleDuration()
	if !tw.repeat && effective > cycle {
		effective = cycle
	}
	terminal := !tw.repeat && effective >= cycle

	wasReversed := tw.reversed
	var t float32
	if terminal {
		if tw.yoyo {
			t = 0
		} else {
			t = 1
		}
	} else {
		cycleTime := mod(effective, cycle)
		if tw.yoyo && cycleTime >= tw.duration {
			raw := 1 - (cycleTime-tw.duration)/tw.duration
			t = 1 - Shape(1-raw, tw.ease)
			tw.reversed = true
		} else {
			t = Shape(cycleTime/tw.duration, tw.ease)
			tw.reversed = false
		}
	}

	tw.current = tw.lerp(tw.from.Resolve(), tw.to.Resolve(), t)
	if tw.out != nil {
		*tw.out = tw.current
	}
	if tw.onUpdate != nil {
		tw.onUpdate(tw.current, t)
	}

	if wasReversed != tw.reversed && tw.onCycleComplete != nil {
		// Yoyo tweens report one boundary per round trip, on return to the
		// forward leg.
		if !tw.yoyo || !tw.reversed {
			tw.onCycleComplete(tw.current)
		}
	}

	if terminal && tw.onComplete != nil {
		tw.onComplete(tw.current)
	}
}

// IsFinished reports whether a non-repeating tween has covered its delay and
// a full cycle. Repeating tweens are never finished.
func (tw *Tween[T]) IsFinished() bool {
	if tw.repeat {
		return false
	}
	return tw.elapsed >= tw.delay+tw.cycleDuration()
}

// Clone copies configuration, progress and observers. Live endpoints and the
// output binding still point at the same host storage.
func (tw *Tween[T]) Clone() Animation {
	c := *tw
	return &c
}

// mod is the floating-point remainder with the sign of x, like C's fmod.
func mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
