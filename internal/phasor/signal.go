package phasor

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// GridSize is the number of samples in both the time and space grids.
	GridSize = 1000

	// DefaultSpatialSamples is the number of marker locations along z.
	DefaultSpatialSamples = 8

	DefaultMaxTime  = 10.0
	DefaultMaxSpace = 1.0
)

// Signal holds the phasor of a sinusoid and its sampled space-time field.
//
// time and space are fixed at construction. phasor, field, real and
// currentPhasor are rebuilt whenever magnitude or phase changes.
type Signal struct {
	magnitude, phase float64
	beta, omega      float64
	maxTime          float64
	maxSpace         float64

	time, space   []float64
	sampleIndices []int

	phasor []complex128
	field  *mat.CDense // time x space
	real   *mat.Dense  // time x space

	currentTime, currentLoc float64
	currentTimeIdx          int
	currentLocIdx           int
	currentPhasor           []complex128
}

// Option configures a Signal before its grids are built.
type Option func(*Signal)

// WithMaxTime sets the length of the time window.
func WithMaxTime(v float64) Option {
	return func(s *Signal) { s.maxTime = v }
}

// WithMaxSpace sets the length of the space window.
func WithMaxSpace(v float64) Option {
	return func(s *Signal) { s.maxSpace = v }
}

// New builds a fully initialised Signal. The cursor starts at t = 0, z = 0.
func New(magnitude, phase, beta, omega float64, opts ...Option) (*Signal, error) {
	s := &Signal{
		magnitude: magnitude,
		phase:     phase,
		beta:      beta,
		omega:     omega,
		maxTime:   DefaultMaxTime,
		maxSpace:  DefaultMaxSpace,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"magnitude", s.magnitude},
		{"phase", s.phase},
		{"beta", s.beta},
		{"omega", s.omega},
	} {
		if err := checkFinite(p.name, p.v); err != nil {
			return nil, err
		}
	}
	if err := checkPositive("max_time", s.maxTime); err != nil {
		return nil, err
	}
	if err := checkPositive("max_space", s.maxSpace); err != nil {
		return nil, err
	}

	s.time = linspace(0, s.maxTime, GridSize)
	s.space = linspace(0, s.maxSpace, GridSize)
	s.sampleIndices = s.GenerateSpatialSamples(DefaultSpatialSamples)
	s.field = mat.NewCDense(GridSize, GridSize, nil)
	s.real = mat.NewDense(GridSize, GridSize, nil)
	s.RecomputeFields()

	return s, nil
}

// GenerateSpatialSamples picks n indices into the space grid spread over
// one wavelength, or over the whole window when beta <= 0. It does not
// modify the Signal.
func (s *Signal) GenerateSpatialSamples(n int) []int {
	end := s.maxSpace
	if s.beta > 0 {
		end = 2 * math.Pi / s.beta
	}
	targets := linspace(0, end, n)
	if targets == nil {
		return nil
	}

	idx := make([]int, len(targets))
	for i, z := range targets {
		idx[i] = nearestIndex(s.space, z)
	}
	return idx
}

// RecomputeFields rebuilds phasor, field and real part from the current
// magnitude and phase, then refreshes the current phasor row.
func (s *Signal) RecomputeFields() {
	p0 := complex(s.magnitude, 0) * cmplx.Exp(complex(0, s.phase))

	s.phasor = make([]complex128, GridSize)
	for j, z := range s.space {
		s.phasor[j] = p0 * cmplx.Exp(complex(0, -s.beta*z))
	}

	for i, t := range s.time {
		rot := cmplx.Exp(complex(0, s.omega*t))
		for j, p := range s.phasor {
			v := p * rot
			s.field.Set(i, j, v)
			s.real.Set(i, j, real(v))
		}
	}

	s.refreshCurrentPhasor()
}

func (s *Signal) refreshCurrentPhasor() {
	row := make([]complex128, GridSize)
	for j := range row {
		row[j] = s.field.At(s.currentTimeIdx, j)
	}
	s.currentPhasor = row
}

// SetMagnitude stores m and recomputes every derived field.
func (s *Signal) SetMagnitude(m float64) error {
	if err := checkFinite("magnitude", m); err != nil {
		return err
	}
	s.magnitude = m
	s.RecomputeFields()
	return nil
}

// SetPhase stores phi (radians) and recomputes every derived field.
func (s *Signal) SetPhase(phi float64) error {
	if err := checkFinite("phase", phi); err != nil {
		return err
	}
	s.phase = phi
	s.RecomputeFields()
	return nil
}

// SetCurrentTime moves the time cursor. Values outside [0, MaxTime] snap
// to the nearest end of the grid.
func (s *Signal) SetCurrentTime(t float64) error {
	if err := checkFinite("current_time", t); err != nil {
		return err
	}
	s.currentTime = t
	s.currentTimeIdx = s.NearestTimeIndex(t)
	s.refreshCurrentPhasor()
	return nil
}

// SetCurrentLoc moves the space cursor. Values outside [0, MaxSpace] snap
// to the nearest end of the grid.
func (s *Signal) SetCurrentLoc(z float64) error {
	if err := checkFinite("current_loc", z); err != nil {
		return err
	}
	s.currentLoc = z
	s.currentLocIdx = s.NearestSpaceIndex(z)
	return nil
}

// NearestTimeIndex returns the time grid index closest to t. Ties go to
// the lower index.
func (s *Signal) NearestTimeIndex(t float64) int { return nearestIndex(s.time, t) }

// NearestSpaceIndex is NearestTimeIndex for the space grid.
func (s *Signal) NearestSpaceIndex(z float64) int { return nearestIndex(s.space, z) }

func (s *Signal) Magnitude() float64 { return s.magnitude }
func (s *Signal) Phase() float64     { return s.phase }
func (s *Signal) Beta() float64      { return s.beta }
func (s *Signal) Omega() float64     { return s.omega }
func (s *Signal) MaxTime() float64   { return s.maxTime }
func (s *Signal) MaxSpace() float64  { return s.maxSpace }

func (s *Signal) Time() []float64  { return append([]float64(nil), s.time...) }
func (s *Signal) Space() []float64 { return append([]float64(nil), s.space...) }

func (s *Signal) SpaceSampleIndices() []int {
	return append([]int(nil), s.sampleIndices...)
}

func (s *Signal) Phasor() []complex128 {
	return append([]complex128(nil), s.phasor...)
}

// SpaceTimeField returns a read-only view indexed [time][space].
func (s *Signal) SpaceTimeField() mat.CMatrix { return s.field }

// RealField returns v(z,t) as a read-only view indexed [time][space].
func (s *Signal) RealField() mat.Matrix { return s.real }

func (s *Signal) CurrentTime() float64  { return s.currentTime }
func (s *Signal) CurrentLoc() float64   { return s.currentLoc }
func (s *Signal) CurrentTimeIndex() int { return s.currentTimeIdx }
func (s *Signal) CurrentLocIndex() int  { return s.currentLocIdx }

// CurrentPhasor is the space-time field row at the current time index.
func (s *Signal) CurrentPhasor() []complex128 {
	return append([]complex128(nil), s.currentPhasor...)
}

// CurrentValue is v at the current (time, location) cursor.
func (s *Signal) CurrentValue() float64 {
	return s.real.At(s.currentTimeIdx, s.currentLocIdx)
}

// CurrentRow is v(z) at the current time index.
func (s *Signal) CurrentRow() []float64 {
	return append([]float64(nil), s.real.RawRowView(s.currentTimeIdx)...)
}

// TimeSeries returns v(t) at space index j.
func (s *Signal) TimeSeries(j int) ([]float64, error) {
	if err := checkIndex(j); err != nil {
		return nil, err
	}
	return mat.Col(nil, j, s.real), nil
}

// SampleTimeSeries returns v(t) for each spatial sample index, in order.
func (s *Signal) SampleTimeSeries() [][]float64 {
	out := make([][]float64, len(s.sampleIndices))
	for k, j := range s.sampleIndices {
		out[k] = mat.Col(nil, j, s.real)
	}
	return out
}

// PhasorTrace returns the rotating phasor at space index j over the time
// grid. Plotted in the complex plane it traces the phasor circle.
func (s *Signal) PhasorTrace(j int) ([]complex128, error) {
	if err := checkIndex(j); err != nil {
		return nil, err
	}
	trace := make([]complex128, GridSize)
	for i := range trace {
		trace[i] = s.field.At(i, j)
	}
	return trace, nil
}

// Wavelength is 2π/|beta|, or +Inf for a non-propagating signal.
func (s *Signal) Wavelength() float64 {
	if s.beta == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(s.beta)
}

// Period is 2π/|omega|, or +Inf when omega is zero.
func (s *Signal) Period() float64 {
	if s.omega == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(s.omega)
}

// PhaseVelocity is omega/beta; negative when the wave travels towards -z.
func (s *Signal) PhaseVelocity() float64 {
	if s.beta == 0 {
		return math.Inf(1)
	}
	return s.omega / s.beta
}
