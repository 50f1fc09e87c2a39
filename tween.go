package hierarchy

import (
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenComponentType is the component type name under which tween scripts
// are attached.
const TweenComponentType = "ScriptComponent"

// TweenScript is a configured animation attached to a SceneObject. Type names
// the animated property (alpha, position, scale, ...) and Name is the
// user-assigned label shown in hierarchy dumps.
//
// The script only holds the tween; the host advances it each frame:
//
//	v, done := ts.Tween().Update(dt)
type TweenScript struct {
	Type     string
	Name     string
	From, To float32
	Duration float32
	Easing   ease.TweenFunc

	tween *gween.Tween
}

// NewTweenScript creates a tween script. A nil fn uses ease.Linear.
func NewTweenScript(tweenType, name string, from, to, duration float32, fn ease.TweenFunc) *TweenScript {
	if fn == nil {
		fn = ease.Linear
	}
	t := &TweenScript{
		Type:     tweenType,
		Name:     name,
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   fn,
	}
	t.tween = gween.New(from, to, duration, fn)
	return t
}

// Tween returns the underlying gween tween.
func (t *TweenScript) Tween() *gween.Tween {
	return t.tween
}

// Reset rewinds the tween to its start value.
func (t *TweenScript) Reset() {
	t.tween = gween.New(t.From, t.To, t.Duration, t.Easing)
}

// Component returns the descriptor the printer shows for this script.
func (t *TweenScript) Component() Component {
	return NewTweenComponent(TweenComponentType, t.Type, t.Name)
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// EaseByName returns the easing function registered under name. An empty
// name selects linear.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EaseNames returns the registered easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
