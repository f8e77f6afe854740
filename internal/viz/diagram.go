package viz

import (
	"math"

	"github.com/san-kum/phasorsim/internal/phasor"
)

// PhasorDiagram draws the phasor trace at the current location in the
// complex plane, with the phasor at the current time as a ray from the
// origin.
func PhasorDiagram(sig *phasor.Signal, w, h int) *Canvas {
	c := NewCanvas(w, h)
	r := math.Abs(sig.Magnitude())
	if r == 0 {
		r = 1
	}
	r *= 1.1
	v := Viewport{MinX: -r, MaxX: r, MinY: -r, MaxY: r}

	c.Segment(v, -r, 0, r, 0)
	c.Segment(v, 0, -r, 0, r)

	trace, err := sig.PhasorTrace(sig.CurrentLocIndex())
	if err != nil {
		return c
	}
	re, im := make([]float64, len(trace)), make([]float64, len(trace))
	for i, p := range trace {
		re[i], im[i] = real(p), imag(p)
	}
	c.Polyline(v, re, im)

	p := trace[sig.CurrentTimeIndex()]
	c.Segment(v, 0, 0, real(p), imag(p))
	return c
}

// WaveCanvas draws v(z) at the current time with a tick at the current
// location.
func WaveCanvas(sig *phasor.Signal, w, h int) *Canvas {
	c := NewCanvas(w, h)
	amp := math.Abs(sig.Magnitude())
	if amp == 0 {
		amp = 1
	}
	amp *= 1.1
	v := Viewport{MinX: 0, MaxX: sig.MaxSpace(), MinY: -amp, MaxY: amp}

	c.Segment(v, 0, 0, sig.MaxSpace(), 0)
	c.Polyline(v, sig.Space(), sig.CurrentRow())

	z := sig.Space()[sig.CurrentLocIndex()]
	c.Segment(v, z, -amp, z, amp)
	return c
}
