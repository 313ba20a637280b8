// Package typetween interpolates values over time with the easing curves
// catalogued at [easings.net].
//
// A [Tween] moves a value of any type between two endpoints. Scalars use
// [NewScalar], types with Add/Sub/Mul methods (such as [f32.Point]) use
// [NewVector], and anything else can supply its own [LerpFunc] to [NewFunc].
//
// # Quick start
//
//	x := float32(0)
//	tw := typetween.NewScalar(&x).
//		To(10).
//		Duration(2).
//		Easing(typetween.InOutQuint).
//		OnComplete(func(v float32) { fmt.Println("done at", v) })
//
//	for !tw.IsFinished() {
//		tw.Tick(dt) // x follows the curve
//	}
//
// # Endpoints
//
// Each endpoint is either a literal captured by [Tween.From] / [Tween.To] or
// a live reference set with [Tween.FromRef] / [Tween.ToRef]. Live endpoints
// are read on every tick, so a tween can chase a moving target. The library
// never owns referenced storage; keep it valid for as long as the tween runs.
//
// # Playback
//
// Delay postpones the start. Yoyo plays forward then back within one cycle
// and ends at the start value. Repeat loops forever, so a repeating tween is
// never finished. Duration must be positive; [Tween.Validate] reports bad
// configuration but Tick never checks.
//
// # Managers
//
// A [Manager] owns clones of the tweens added to it, ticks them together and
// drops each one on the tick it finishes. There is no global manager; hosts
// call [Manager.Tick] from their own frame loop with the frame's delta time
// in seconds. Observers may add or remove animations while a tick is in
// progress; those changes take effect once the sweep completes.
//
// Adapters live in sub-packages: [audio] fades beep streams, and the ecs
// module drives tweens stored on [Donburi] entities.
//
// [easings.net]: https://easings.net
// [f32.Point]: https://pkg.go.dev/gioui.org/f32#Point
// [audio]: https://pkg.go.dev/github.com/phanxgames/typetween/audio
// [Donburi]: https://github.com/yohamta/donburi
package typetween
