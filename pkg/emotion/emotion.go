package emotion

import "fmt"

// Emotion is the closed set of labels the classifier may produce. Anything
// outside the set renders as the neutral fallback plant, it is never an
// error.
type Emotion string

const (
	Joy     Emotion = "joy"
	Calm    Emotion = "calm"
	Stress  Emotion = "stress"
	Sadness Emotion = "sadness"
	Anger   Emotion = "anger"
)

var known = map[Emotion]struct{}{
	Joy: {}, Calm: {}, Stress: {}, Sadness: {}, Anger: {},
}

// Parse reports whether label names a known emotion.
func Parse(label string) (Emotion, bool) {
	e := Emotion(label)
	_, ok := known[e]
	return e, ok
}

// PlantVisual is the style descriptor the garden renders from: a CSS hsl
// color, a plant shape and an animation name.
type PlantVisual struct {
	Color     string `json:"color"`
	Shape     string `json:"shape"`
	Animation string `json:"animation"`
}

type palette struct {
	hue        int
	saturation int
	baseLight  float64
	slope      float64
	shape      string
	animation  string
}

var palettes = map[Emotion]palette{
	Joy:     {hue: 50, saturation: 95, baseLight: 80, slope: 20, shape: "bloom", animation: "gentle"},
	Calm:    {hue: 120, saturation: 60, baseLight: 85, slope: 15, shape: "sprout", animation: "sway"},
	Stress:  {hue: 30, saturation: 20, baseLight: 70, slope: 30, shape: "wilt", animation: "shake"},
	Sadness: {hue: 210, saturation: 70, baseLight: 80, slope: 30, shape: "droop", animation: "drop"},
	Anger:   {hue: 0, saturation: 80, baseLight: 65, slope: 20, shape: "cactus", animation: "pulse"},
}

// fallback row for labels outside the known set, intensity ignored
var defaultVisual = PlantVisual{
	Color:     "hsl(120, 20%, 80%)",
	Shape:     "default",
	Animation: "none",
}

// PlantFor maps an emotion label and an intensity in [0,1] to a visual
// descriptor. Lightness decreases linearly with intensity so a more intense
// emotion reads as a deeper color. Total over all string inputs: unknown
// labels take the default arm, intensity is clamped.
func PlantFor(label string, intensity float64) PlantVisual {
	e, ok := Parse(label)
	if !ok {
		return defaultVisual
	}

	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}

	p := palettes[e]
	lightness := p.baseLight - p.slope*intensity
	return PlantVisual{
		Color:     fmt.Sprintf("hsl(%d, %d%%, %s%%)", p.hue, p.saturation, trimFloat(lightness)),
		Shape:     p.shape,
		Animation: p.animation,
	}
}

func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
