// Package audio shapes beep streams with tweens.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/phanxgames/typetween"
)

// blockSize is the number of samples streamed between tween ticks.
const blockSize = 64

// Fade scales a stream's amplitude along a tween. Level 1 passes samples
// through unchanged and level 0 is silence. The tween is advanced by the
// audio clock, one block of samples at a time, so the fade follows playback
// rather than the frame loop.
type Fade struct {
	gain  effects.Gain
	level float64
	tween *typetween.Tween[float64]
	sr    beep.SampleRate
}

// NewFade returns a streamer that moves s from level from to level to over d.
func NewFade(s beep.Streamer, sr beep.SampleRate, from, to float64, d time.Duration, e typetween.Ease) *Fade {
	f := &Fade{sr: sr, level: from}
	f.gain = effects.Gain{Streamer: s, Gain: from - 1}
	f.tween = typetween.NewScalar(&f.level).To(to).Duration(float32(d.Seconds())).Easing(e)
	return f
}

// FadeIn ramps s up from silence.
func FadeIn(s beep.Streamer, sr beep.SampleRate, d time.Duration, e typetween.Ease) *Fade {
	return NewFade(s, sr, 0, 1, d, e)
}

// FadeOut ramps s down to silence.
func FadeOut(s beep.Streamer, sr beep.SampleRate, d time.Duration, e typetween.Ease) *Fade {
	return NewFade(s, sr, 1, 0, d, e)
}

// Tween exposes the level tween so callers can add a delay, yoyo or repeat
// (a repeating yoyo fade is a tremolo).
func (f *Fade) Tween() *typetween.Tween[float64] { return f.tween }

// Level returns the current amplitude level.
func (f *Fade) Level() float64 { return f.level }

// Done reports whether the fade has played out. The underlying stream keeps
// playing at the final level.
func (f *Fade) Done() bool { return f.tween.IsFinished() }

// Stream implements beep.Streamer.
func (f *Fade) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		block := samples[n:min(n+blockSize, len(samples))]
		m, more := f.gain.Stream(block)
		if m > 0 {
			f.tween.Tick(float32(m) / float32(f.sr))
			f.gain.Gain = f.level - 1
		}
		n += m
		if !more {
			return n, n > 0
		}
		if m < len(block) {
			break
		}
	}
	return n, true
}

// Err implements beep.Streamer.
func (f *Fade) Err() error { return f.gain.Err() }
