package camctl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sampler aggregates the raw input events of a frame.
type Sampler struct {
	// NormalizeWheel replaces each wheel event by WheelStep in its direction.
	// Browsers report wildly different wheel magnitudes.
	NormalizeWheel bool
	WheelStep      float32
}

// Motion returns the accumulated pointer motion.
func (s Sampler) Motion(events []mgl32.Vec2) mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range events {
		sum = sum.Add(d)
	}
	return sum
}

// Scroll returns the accumulated scroll amount.
func (s Sampler) Scroll(events []float32) float32 {
	var sum float32
	for _, y := range events {
		if !s.NormalizeWheel {
			sum += y
			continue
		}
		switch {
		case y > 0:
			sum += s.WheelStep
		case y < 0:
			sum -= s.WheelStep
		}
	}
	return sum
}
