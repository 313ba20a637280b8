// Package ecs runs typetween animations on [Donburi] entities.
//
// Attach a tween to an entity and call [System.Update] once per frame. The
// system ticks every attached animation, removes the component from entities
// whose animation finished, and publishes a [FinishedEvent] for each one.
// Subscribe to [FinishedEventType] to chain follow-up work:
//
//	sys := ecs.NewSystem()
//	ecs.Attach(world.Entry(e), typetween.TweenFloat(&pos.X, 100, 1, typetween.OutBack))
//	ecs.FinishedEventType.Subscribe(world, onTweenDone)
//
//	// each frame
//	sys.Update(world, dt)
//	ecs.FinishedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
