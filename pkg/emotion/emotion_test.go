package emotion

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PlantForTable(t *testing.T) {
	cases := []struct {
		label     string
		intensity float64
		want      PlantVisual
	}{
		{"joy", 0, PlantVisual{Color: "hsl(50, 95%, 80%)", Shape: "bloom", Animation: "gentle"}},
		{"joy", 1, PlantVisual{Color: "hsl(50, 95%, 60%)", Shape: "bloom", Animation: "gentle"}},
		{"calm", 0.5, PlantVisual{Color: "hsl(120, 60%, 77.5%)", Shape: "sprout", Animation: "sway"}},
		{"stress", 1, PlantVisual{Color: "hsl(30, 20%, 40%)", Shape: "wilt", Animation: "shake"}},
		{"sadness", 0.5, PlantVisual{Color: "hsl(210, 70%, 65%)", Shape: "droop", Animation: "drop"}},
		{"anger", 0.25, PlantVisual{Color: "hsl(0, 80%, 60%)", Shape: "cactus", Animation: "pulse"}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s@%v", c.label, c.intensity), func(t *testing.T) {
			assert.Equal(t, c.want, PlantFor(c.label, c.intensity))
		})
	}
}

func Test_PlantForUnknownLabel(t *testing.T) {
	want := PlantVisual{Color: "hsl(120, 20%, 80%)", Shape: "default", Animation: "none"}

	for _, label := range []string{"", "confused", "JOY", "excitement"} {
		for _, intensity := range []float64{0, 0.3, 1, 5, -1} {
			assert.Equal(t, want, PlantFor(label, intensity), "label %q intensity %v", label, intensity)
		}
	}
}

func Test_LightnessMonotonic(t *testing.T) {
	for label := range palettes {
		low := lightnessOf(t, PlantFor(string(label), 0).Color)
		high := lightnessOf(t, PlantFor(string(label), 1).Color)
		assert.Greater(t, low, high, "lightness must strictly decrease for %s", label)
	}
}

func Test_IntensityClamped(t *testing.T) {
	assert.Equal(t, PlantFor("joy", 1), PlantFor("joy", 12))
	assert.Equal(t, PlantFor("joy", 0), PlantFor("joy", -3))
}

func lightnessOf(t *testing.T, color string) float64 {
	t.Helper()
	parts := strings.Split(strings.TrimSuffix(strings.TrimSuffix(color, ")"), "%"), " ")
	l, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		t.Fatalf("unparseable color %q: %v", color, err)
	}
	return l
}
