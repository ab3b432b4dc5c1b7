package sim

import (
	"errors"
	"math"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// ErrInvalidViewport is returned when the viewport has no positive area.
// Wave sampling divides by the viewport width, so such a tick cannot run.
var ErrInvalidViewport = errors.New("sim: viewport must have positive width and height")

// WaveField maps (x, t) to the ocean surface height and slope.
//
// The surface is a baseline plus a sum of sinusoids whose spatial
// frequency is expressed in cycles per viewport width, so the shape scales
// with the viewport. With integer frequencies the surface repeats every
// viewport width. A WaveField is an immutable value; Height and Slope are
// pure and accept any x, including off-screen spawn positions.
type WaveField struct {
	width    float64
	height   float64
	baseline float64
	epsilon  float64
	layers   []config.WaveLayerConfig
}

// NewWaveField builds the surface for a width x height viewport.
func NewWaveField(width, height float64, cfg config.WaveConfig) (WaveField, error) {
	if !(width > 0) || !(height > 0) || !core.IsFinite(width) || !core.IsFinite(height) {
		return WaveField{}, ErrInvalidViewport
	}
	eps := cfg.SlopeEpsilon
	if eps <= 0 {
		eps = 1
	}
	layers := make([]config.WaveLayerConfig, len(cfg.Layers))
	copy(layers, cfg.Layers)

	return WaveField{
		width:    width,
		height:   height,
		baseline: cfg.BaselineRatio * height,
		epsilon:  eps,
		layers:   layers,
	}, nil
}

// Width returns the viewport width the field was built for.
func (w WaveField) Width() float64 {
	return w.width
}

// Baseline returns the resting waterline.
func (w WaveField) Baseline() float64 {
	return w.baseline
}

// Height returns the surface y at horizontal position x and time t.
func (w WaveField) Height(x, t float64) float64 {
	u := x / w.width
	y := w.baseline
	for _, l := range w.layers {
		y += l.Amplitude * math.Sin(2*math.Pi*l.Frequency*u+l.Speed*t+l.Phase)
	}
	return y
}

// Slope returns dy/dx of the surface by central difference.
func (w WaveField) Slope(x, t float64) float64 {
	return (w.Height(x+w.epsilon, t) - w.Height(x-w.epsilon, t)) / (2 * w.epsilon)
}

// Sample returns the ordered polyline of one render layer across [0, width].
// The last point always lands exactly on the right edge.
func (w WaveField) Sample(layer config.RenderLayerConfig, t, step float64) []core.Vec2 {
	if step <= 0 {
		step = w.width
	}
	n := int(math.Ceil(w.width / step))
	pts := make([]core.Vec2, 0, n+1)
	lt := t - layer.TimeLag
	for i := 0; i <= n; i++ {
		x := math.Min(float64(i)*step, w.width)
		pts = append(pts, core.V(x, w.Height(x, lt)+layer.Offset))
	}
	return pts
}
