package typetween

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const easeTolerance = 1e-4

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestShapeBoundaries(t *testing.T) {
	for _, e := range Eases() {
		t.Run(e.String(), func(t *testing.T) {
			if got := Shape(0, e); !near(got, 0, easeTolerance) {
				t.Errorf("Shape(0) = %v, want 0", got)
			}
			if got := Shape(1, e); !near(got, 1, easeTolerance) {
				t.Errorf("Shape(1) = %v, want 1", got)
			}
		})
	}
}

func TestShapeGuardedBoundariesAreExact(t *testing.T) {
	for _, e := range []Ease{InExpo, OutExpo, InOutExpo, InElastic, OutElastic, InOutElastic} {
		if e != OutExpo {
			if got := Shape(0, e); got != 0 {
				t.Errorf("%v: Shape(0) = %v, want exactly 0", e, got)
			}
		}
		if e != InExpo {
			if got := Shape(1, e); got != 1 {
				t.Errorf("%v: Shape(1) = %v, want exactly 1", e, got)
			}
		}
	}
}

func TestShapeMirrorIdentity(t *testing.T) {
	pairs := []struct{ in, out Ease }{
		{InSine, OutSine},
		{InQuad, OutQuad},
		{InCubic, OutCubic},
		{InQuart, OutQuart},
		{InQuint, OutQuint},
		{InExpo, OutExpo},
		{InCirc, OutCirc},
		{InBack, OutBack},
		{InElastic, OutElastic},
		{InBounce, OutBounce},
	}
	for _, p := range pairs {
		t.Run(p.out.String(), func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				x := float32(i) / 20
				want := 1 - Shape(1-x, p.in)
				if got := Shape(x, p.out); !near(got, want, easeTolerance) {
					t.Errorf("t=%v: %v = %v, 1-%v(1-t) = %v", x, p.out, got, p.in, want)
				}
			}
		})
	}
}

func TestShapeInOutSplitsAtHalf(t *testing.T) {
	families := []struct{ in, out, inOut Ease }{
		{InQuad, OutQuad, InOutQuad},
		{InCubic, OutCubic, InOutCubic},
		{InQuart, OutQuart, InOutQuart},
		{InQuint, OutQuint, InOutQuint},
		{InCirc, OutCirc, InOutCirc},
		{InBounce, OutBounce, InOutBounce},
	}
	for _, f := range families {
		t.Run(f.inOut.String(), func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				x := float32(i) / 20
				var want float32
				if x < 0.5 {
					want = Shape(2*x, f.in) / 2
				} else {
					want = (1 + Shape(2*x-1, f.out)) / 2
				}
				if got := Shape(x, f.inOut); !near(got, want, easeTolerance) {
					t.Errorf("t=%v: got %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestShapeKnownValues(t *testing.T) {
	tests := []struct {
		e    Ease
		t    float32
		want float32
	}{
		{Linear, 0.25, 0.25},
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InCubic, 0.5, 0.125},
		{InOutCubic, 0.25, 0.0625},
		{InQuart, 0.5, 0.0625},
		{InQuint, 0.5, 0.03125},
		{InOutSine, 0.5, 0.5},
		{InExpo, 0.5, 0.03125},
		{OutBounce, 1 / 2.75, 1},
		{OutBounce, 0.5, 0.765625},
		{InOutBack, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := Shape(tt.t, tt.e); !near(got, tt.want, easeTolerance) {
			t.Errorf("%v(%v) = %v, want %v", tt.e, tt.t, got, tt.want)
		}
	}
}

func TestShapeBackOvershoots(t *testing.T) {
	if got := Shape(0.2, InBack); got >= 0 {
		t.Errorf("InBack(0.2) = %v, want negative", got)
	}
	if got := Shape(0.8, OutBack); got <= 1 {
		t.Errorf("OutBack(0.8) = %v, want > 1", got)
	}
	// Out-of-range input is evaluated, not clamped.
	if got := Shape(1.5, Linear); got != 1.5 {
		t.Errorf("Linear(1.5) = %v, want 1.5", got)
	}
}

func TestShapeUnknownKindIsLinear(t *testing.T) {
	bogus := Ease(200)
	if got := Shape(0.3, bogus); got != 0.3 {
		t.Errorf("Shape(0.3, %v) = %v, want 0.3", bogus, got)
	}
	if got := bogus.Func()(0.7); got != 0.7 {
		t.Errorf("Func()(0.7) = %v, want 0.7", got)
	}
}

func TestShapeMatchesGween(t *testing.T) {
	ref := map[Ease]ease.TweenFunc{
		Linear:      ease.Linear,
		InSine:      ease.InSine,
		OutSine:     ease.OutSine,
		InOutSine:   ease.InOutSine,
		InQuad:      ease.InQuad,
		OutQuad:     ease.OutQuad,
		InOutQuad:   ease.InOutQuad,
		InCubic:     ease.InCubic,
		OutCubic:    ease.OutCubic,
		InOutCubic:  ease.InOutCubic,
		InQuart:     ease.InQuart,
		OutQuart:    ease.OutQuart,
		InOutQuart:  ease.InOutQuart,
		InQuint:     ease.InQuint,
		OutQuint:    ease.OutQuint,
		InOutQuint:  ease.InOutQuint,
		InCirc:      ease.InCirc,
		OutCirc:     ease.OutCirc,
		InOutCirc:   ease.InOutCirc,
		InBack:      ease.InBack,
		OutBack:     ease.OutBack,
		InOutBack:   ease.InOutBack,
		InBounce:    ease.InBounce,
		OutBounce:   ease.OutBounce,
		InOutBounce: ease.InOutBounce,
	}
	for e, fn := range ref {
		t.Run(e.String(), func(t *testing.T) {
			for i := 0; i <= 10; i++ {
				x := float32(i) / 10
				want := fn(x, 0, 1, 1)
				if got := Shape(x, e); !near(got, want, 1e-3) {
					t.Errorf("t=%v: got %v, gween %v", x, got, want)
				}
			}
		})
	}
}

func TestTweenFuncDrivesGween(t *testing.T) {
	tw := gween.New(10, 20, 2, OutQuad.TweenFunc())

	v, done := tw.Update(1)
	if done {
		t.Fatal("gween tween finished early")
	}
	if !near(v, 17.5, 1e-3) {
		t.Errorf("value at half time = %v, want 17.5", v)
	}

	v, done = tw.Update(1)
	if !done {
		t.Fatal("expected gween tween to finish")
	}
	if !near(v, 20, 1e-3) {
		t.Errorf("final value = %v, want 20", v)
	}
}

func TestParseEase(t *testing.T) {
	tests := []struct {
		in   string
		want Ease
	}{
		{"Linear", Linear},
		{"InOutQuint", InOutQuint},
		{"IN_OUT_QUINT", InOutQuint},
		{"out-bounce", OutBounce},
		{" inelastic ", InElastic},
	}
	for _, tt := range tests {
		got, err := ParseEase(tt.in)
		if err != nil {
			t.Errorf("ParseEase(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseEase("wobble"); err == nil {
		t.Error("expected error for unknown ease")
	}
}

func TestEaseStringRoundTrip(t *testing.T) {
	for _, e := range Eases() {
		got, err := ParseEase(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEase(%q) = %v, %v", e.String(), got, err)
		}
	}
	if len(Eases()) != 31 {
		t.Errorf("Eases() has %d kinds, want 31", len(Eases()))
	}
	if s := Ease(99).String(); s != "Ease(99)" {
		t.Errorf("String() of invalid kind = %q", s)
	}
}

func TestEaseJSON(t *testing.T) {
	var v struct {
		Ease Ease `json:"ease"`
	}
	if err := json.Unmarshal([]byte(`{"ease":"IN_OUT_BACK"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Ease != InOutBack {
		t.Errorf("decoded %v, want InOutBack", v.Ease)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"ease":"InOutBack"}` {
		t.Errorf("encoded %s", out)
	}

	if err := json.Unmarshal([]byte(`{"ease":"nope"}`), &v); err == nil {
		t.Error("expected error for unknown ease name")
	}
}

func BenchmarkShape(b *testing.B) {
	kinds := Eases()
	for i := 0; i < b.N; i++ {
		_ = Shape(float32(i%100)/100, kinds[i%len(kinds)])
	}
}
