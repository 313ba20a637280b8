package typetween

import (
	"encoding/json"
	"fmt"
)

// scriptTween configures the float32 tween a Script replays.
type scriptTween struct {
	From     float32 `json:"from"`
	To       float32 `json:"to"`
	Duration float32 `json:"duration"`
	Delay    float32 `json:"delay,omitempty"`
	Ease     Ease    `json:"ease,omitempty"`
	Repeat   bool    `json:"repeat,omitempty"`
	Yoyo     bool    `json:"yoyo,omitempty"`
}

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	DT     float32 `json:"dt,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptDoc is the top-level JSON structure for a script.
type scriptDoc struct {
	Tween scriptTween  `json:"tween"`
	Steps []scriptStep `json:"steps"`
}

// Script replays a fixed sequence of ticks against one tween owned by a
// Manager. Scripts make timing scenarios reproducible outside a real frame
// loop:
//
//	{
//	  "tween": {"from": 0, "to": 10, "duration": 2, "ease": "OutBounce"},
//	  "steps": [{"action": "tick", "dt": 0.5, "frames": 4}]
//	}
//
// Actions are "tick" (dt seconds, repeated frames times), "reset" and "stop".
type Script struct {
	tween scriptTween
	steps []scriptStep
}

// Frame records the outcome of one scripted tick.
type Frame struct {
	Step int     // index of the step that produced the frame
	Time float32 // seconds ticked since the script started or last reset

	Value float32 // latest value reported through OnUpdate
	T     float32 // shaped progress of the latest update

	Updated        bool // OnUpdate fired this frame
	Completed      bool // OnComplete fired this frame
	CycleCompleted bool // OnCycleComplete fired this frame
	Finished       bool // the manager dropped the tween this frame
}

// LoadScript parses a JSON script and validates its tween and steps.
func LoadScript(data []byte) (*Script, error) {
	var doc scriptDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("typetween: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("typetween: parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "tick":
			if st.DT < 0 {
				return nil, fmt.Errorf("typetween: parse script: step %d: negative dt %v", i, st.DT)
			}
		case "reset", "stop":
		default:
			return nil, fmt.Errorf("typetween: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	s := &Script{tween: doc.Tween, steps: doc.Steps}
	if err := s.newTween(nil).Validate(); err != nil {
		return nil, fmt.Errorf("typetween: parse script: %w", err)
	}
	return s, nil
}

// Steps returns the number of steps in the script.
func (s *Script) Steps() int { return len(s.steps) }

func (s *Script) newTween(frame *Frame) *Tween[float32] {
	cfg := s.tween
	tw := NewScalar[float32](nil).
		From(cfg.From).
		To(cfg.To).
		Duration(cfg.Duration).
		Delay(cfg.Delay).
		Easing(cfg.Ease).
		Repeat(cfg.Repeat).
		Yoyo(cfg.Yoyo)
	if frame == nil {
		return tw
	}
	return tw.
		OnUpdate(func(v float32, t float32) {
			frame.Value, frame.T, frame.Updated = v, t, true
		}).
		OnComplete(func(float32) { frame.Completed = true }).
		OnCycleComplete(func(float32) { frame.CycleCompleted = true })
}

// Run replays the script into a fresh Manager and returns one Frame per
// tick. A "reset" after the tween was dropped adds a new copy.
func (s *Script) Run() []Frame {
	var cur Frame
	template := s.newTween(&cur)

	m := NewManager()
	id := m.Add(template)

	var frames []Frame
	var clock float32
	for i, st := range s.steps {
		switch st.Action {
		case "tick":
			n := st.Frames
			if n < 1 {
				n = 1
			}
			for range n {
				cur.Step = i
				cur.Updated, cur.Completed, cur.CycleCompleted, cur.Finished = false, false, false, false
				had := m.Has(id)
				m.Tick(st.DT)
				clock += st.DT
				cur.Time = clock
				cur.Finished = had && !m.Has(id)
				frames = append(frames, cur)
			}
		case "reset":
			clock = 0
			if a, ok := m.Get(id); ok {
				a.(*Tween[float32]).Reset()
			} else {
				id = m.Add(template)
			}
		case "stop":
			if a, ok := m.Get(id); ok {
				tw := a.(*Tween[float32])
				tw.Stop()
				clock = tw.Elapsed()
			}
		}
	}
	return frames
}
