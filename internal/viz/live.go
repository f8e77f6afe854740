package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/phasorsim/internal/phasor"
)

const (
	canvasWidth  = 40
	canvasHeight = 10
	phaseStep    = math.Pi / 16
	gainStep     = 1.1
)

type TickMsg time.Time

// LiveModel animates a Signal: each tick advances the time cursor by one
// frame, wrapping at the end of the time window.
type LiveModel struct {
	sig     *phasor.Signal
	fps     int
	speed   float64 // signal time per wall-clock second
	running bool
	err     error
}

func NewLiveModel(sig *phasor.Signal, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	speed := 1.0
	if p := sig.Period(); !math.IsInf(p, 0) {
		speed = p / 2
	}
	return LiveModel{sig: sig, fps: fps, speed: speed, running: true}
}

func (m LiveModel) Signal() *phasor.Signal { return m.sig }

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd { return m.tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.sig.SetCurrentTime(0)
		case "left", "h":
			m.moveLoc(-1)
		case "right", "l":
			m.moveLoc(1)
		case "+", "=":
			m.err = m.sig.SetMagnitude(m.sig.Magnitude() * gainStep)
		case "-", "_":
			m.err = m.sig.SetMagnitude(m.sig.Magnitude() / gainStep)
		case "[":
			m.err = m.sig.SetPhase(m.sig.Phase() - phaseStep)
		case "]":
			m.err = m.sig.SetPhase(m.sig.Phase() + phaseStep)
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) advance() {
	t := m.sig.CurrentTime() + m.speed/float64(m.fps)
	if t > m.sig.MaxTime() {
		t = 0
	}
	m.err = m.sig.SetCurrentTime(t)
}

// markerSpacing is the distance between adjacent spatial sample markers.
func markerSpacing(sig *phasor.Signal) float64 {
	idx, space := sig.SpaceSampleIndices(), sig.Space()
	if len(idx) >= 2 {
		if d := space[idx[1]] - space[idx[0]]; d > 0 {
			return d
		}
	}
	return sig.MaxSpace() / float64(phasor.DefaultSpatialSamples-1)
}

// moveLoc steps the location cursor by one marker spacing.
func (m *LiveModel) moveLoc(dir int) {
	step := markerSpacing(m.sig)
	z := math.Max(0, math.Min(m.sig.MaxSpace(), m.sig.CurrentLoc()+float64(dir)*step))
	m.err = m.sig.SetCurrentLoc(z)
}

func (m LiveModel) View() string {
	sig := m.sig
	left := canvasStyle.Render(
		WaveCanvas(sig, canvasWidth, canvasHeight).String() + "\n" +
			PhasorDiagram(sig, canvasWidth/2, canvasHeight).String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PHASOR") + "\n")
	if m.running {
		s.WriteString(runStyle.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	}
	s.WriteString(label("t", fmt.Sprintf("%.3f", sig.Time()[sig.CurrentTimeIndex()])))
	s.WriteString(label("z", fmt.Sprintf("%.3f", sig.Space()[sig.CurrentLocIndex()])))
	s.WriteString(label("v(z,t)", fmt.Sprintf("%+.3f", sig.CurrentValue())))
	s.WriteString(label("magnitude", fmt.Sprintf("%.3f", sig.Magnitude())))
	s.WriteString(label("phase", fmt.Sprintf("%.3f rad", sig.Phase())))
	s.WriteString(label("beta", fmt.Sprintf("%.3f", sig.Beta())))
	s.WriteString(label("omega", fmt.Sprintf("%.3f", sig.Omega())))
	s.WriteString(label("wavelength", fmt.Sprintf("%.3f", sig.Wavelength())))
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Restart Q:Quit\n←→:Move  +-:Gain  []:Phase"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(s.String()))
}
