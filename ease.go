package typetween

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease selects one of the shaping curves catalogued at https://easings.net.
type Ease uint8

const (
	Linear Ease = iota
	InSine
	OutSine
	InOutSine
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce

	easeCount
)

// EaseFunc maps normalized time t in [0, 1] to shaped progress. Inputs
// outside that range are not clamped.
type EaseFunc func(t float32) float32

const pi = float32(math.Pi)

// Overshoot and period constants shared by the BACK and ELASTIC families.
const (
	backC1 = float32(1.70158)
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = (2 * pi) / 3
	elasticC5 = (2 * pi) / 4.5
)

var easeFuncs = [easeCount]EaseFunc{
	Linear:       linear,
	InSine:       inSine,
	OutSine:      outSine,
	InOutSine:    inOutSine,
	InQuad:       inQuad,
	OutQuad:      outQuad,
	InOutQuad:    inOutQuad,
	InCubic:      inCubic,
	OutCubic:     outCubic,
	InOutCubic:   inOutCubic,
	InQuart:      inQuart,
	OutQuart:     outQuart,
	InOutQuart:   inOutQuart,
	InQuint:      inQuint,
	OutQuint:     outQuint,
	InOutQuint:   inOutQuint,
	InExpo:       inExpo,
	OutExpo:      outExpo,
	InOutExpo:    inOutExpo,
	InCirc:       inCirc,
	OutCirc:      outCirc,
	InOutCirc:    inOutCirc,
	InBack:       inBack,
	OutBack:      outBack,
	InOutBack:    inOutBack,
	InElastic:    inElastic,
	OutElastic:   outElastic,
	InOutElastic: inOutElastic,
	InBounce:     inBounce,
	OutBounce:    outBounce,
	InOutBounce:  inOutBounce,
}

var easeNames = [easeCount]string{
	Linear:       "Linear",
	InSine:       "InSine",
	OutSine:      "OutSine",
	InOutSine:    "InOutSine",
	InQuad:       "InQuad",
	OutQuad:      "OutQuad",
	InOutQuad:    "InOutQuad",
	InCubic:      "InCubic",
	OutCubic:     "OutCubic",
	InOutCubic:   "InOutCubic",
	InQuart:      "InQuart",
	OutQuart:     "OutQuart",
	InOutQuart:   "InOutQuart",
	InQuint:      "InQuint",
	OutQuint:     "OutQuint",
	InOutQuint:   "InOutQuint",
	InExpo:       "InExpo",
	OutExpo:      "OutExpo",
	InOutExpo:    "InOutExpo",
	InCirc:       "InCirc",
	OutCirc:      "OutCirc",
	InOutCirc:    "InOutCirc",
	InBack:       "InBack",
	OutBack:      "OutBack",
	InOutBack:    "InOutBack",
	InElastic:    "InElastic",
	OutElastic:   "OutElastic",
	InOutElastic: "InOutElastic",
	InBounce:     "InBounce",
	OutBounce:    "OutBounce",
	InOutBounce:  "InOutBounce",
}

// Shape applies the easing curve e to t. Unknown kinds behave as Linear.
func Shape(t float32, e Ease) float32 {
	if e >= easeCount {
		return t
	}
	return easeFuncs[e](t)
}

// Func returns the curve for e so hot loops can skip the table lookup.
func (e Ease) Func() EaseFunc {
	if e >= easeCount {
		return linear
	}
	return easeFuncs[e]
}

// TweenFunc adapts e to gween's (t, begin, change, duration) signature so it
// can drive a gween.Tween or any API accepting ease.TweenFunc.
func (e Ease) TweenFunc() ease.TweenFunc {
	fn := e.Func()
	return func(t, b, c, d float32) float32 {
		return b + c*fn(t/d)
	}
}

// Eases returns every easing kind in declaration order.
func Eases() []Ease {
	out := make([]Ease, easeCount)
	for i := range out {
		out[i] = Ease(i)
	}
	return out
}

func (e Ease) String() string {
	if e >= easeCount {
		return fmt.Sprintf("Ease(%d)", uint8(e))
	}
	return easeNames[e]
}

// ParseEase resolves a kind by name. Matching ignores case, underscores and
// hyphens, so "InOutQuint", "in-out-quint" and "IN_OUT_QUINT" are equivalent.
func ParseEase(name string) (Ease, error) {
	key := normalizeEaseName(name)
	for i, n := range easeNames {
		if strings.ToLower(n) == key {
			return Ease(i), nil
		}
	}
	return Linear, fmt.Errorf("typetween: unknown ease %q", name)
}

func normalizeEaseName(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	if e >= easeCount {
		return nil, fmt.Errorf("typetween: invalid ease %d", uint8(e))
	}
	return []byte(easeNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ease) UnmarshalText(text []byte) error {
	v, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// float32 wrappers over package math.

func pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
func sin(x float32) float32    { return float32(math.Sin(float64(x))) }
func cos(x float32) float32    { return float32(math.Cos(float64(x))) }
func sqrt(x float32) float32   { return float32(math.Sqrt(float64(x))) }

func linear(t float32) float32 { return t }

func inSine(t float32) float32    { return 1 - cos((t*pi)/2) }
func outSine(t float32) float32   { return sin((t * pi) / 2) }
func inOutSine(t float32) float32 { return -(cos(pi*t) - 1) / 2 }

func inQuad(t float32) float32  { return t * t }
func outQuad(t float32) float32 { return 1 - (1-t)*(1-t) }
func inOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - pow(-2*t+2, 2)/2
}

func inCubic(t float32) float32  { return t * t * t }
func outCubic(t float32) float32 { return 1 - pow(1-t, 3) }
func inOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

func inQuart(t float32) float32  { return pow(t, 4) }
func outQuart(t float32) float32 { return 1 - pow(1-t, 4) }
func inOutQuart(t float32) float32 {
	if t < 0.5 {
		return 8 * pow(t, 4)
	}
	return 1 - pow(-2*t+2, 4)/2
}

func inQuint(t float32) float32  { return pow(t, 5) }
func outQuint(t float32) float32 { return 1 - pow(1-t, 5) }
func inOutQuint(t float32) float32 {
	if t < 0.5 {
		return 16 * pow(t, 5)
	}
	return 1 - pow(-2*t+2, 5)/2
}

func inExpo(t float32) float32 {
	if t == 0 {
		return 0
	}
	return pow(2, 10*t-10)
}

func outExpo(t float32) float32 {
	if t == 1 {
		return 1
	}
	return 1 - pow(2, -10*t)
}

func inOutExpo(t float32) float32 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return pow(2, 20*t-10) / 2
	default:
		return (2 - pow(2, -20*t+10)) / 2
	}
}

func inCirc(t float32) float32  { return 1 - sqrt(1-t*t) }
func outCirc(t float32) float32 { return sqrt(1 - pow(t-1, 2)) }
func inOutCirc(t float32) float32 {
	if t < 0.5 {
		return (1 - sqrt(1-pow(2*t, 2))) / 2
	}
	return (sqrt(1-pow(-2*t+2, 2)) + 1) / 2
}

func inBack(t float32) float32 { return backC3*t*t*t - backC1*t*t }
func outBack(t float32) float32 {
	tm := t - 1
	return 1 + backC3*tm*tm*tm + backC1*tm*tm
}
func inOutBack(t float32) float32 {
	if t < 0.5 {
		return (pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	return (pow(2*t-2, 2)*((backC2+1)*(2*t-2)+backC2) + 2) / 2
}

func inElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	return -pow(2, 10*t-10) * sin((t*10-10.75)*elasticC4)
}

func outElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	return pow(2, -10*t)*sin((t*10-0.75)*elasticC4) + 1
}

func inOutElastic(t float32) float32 {
	switch {
	case t == 0 || t == 1:
		return t
	case t < 0.5:
		return -(pow(2, 20*t-10) * sin((20*t-11.125)*elasticC5)) / 2
	default:
		return (pow(2, -20*t+10)*sin((20*t-11.125)*elasticC5))/2 + 1
	}
}

// outBounce is four quadratic arcs; the other bounce forms mirror it.
func outBounce(t float32) float32 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func inBounce(t float32) float32 { return 1 - outBounce(1-t) }
func inOutBounce(t float32) float32 {
	if t < 0.5 {
		return (1 - outBounce(1-2*t)) / 2
	}
	return (1 + outBounce(2*t-1)) / 2
}
