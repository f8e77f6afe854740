package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/phasorsim/internal/phasor"
)

func TestWaveformSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, -1}

	svg, err := WaveformSVG(xs, ys, 200, 100, "#00ff00")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing svg envelope")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if got := strings.Count(svg, " L"); got != len(xs)-1 {
		t.Errorf("expected %d line segments, got %d", len(xs)-1, got)
	}
	if !strings.Contains(svg, "d=\"M0.0,") || !strings.Contains(svg, "L200.0,") {
		t.Error("path does not span the full width")
	}
}

func TestWaveformSVG_Errors(t *testing.T) {
	if _, err := WaveformSVG([]float64{0}, []float64{0}, 10, 10, "#fff"); err == nil {
		t.Error("expected error for a single point")
	}
	if _, err := WaveformSVG([]float64{0, 1}, []float64{0}, 10, 10, "#fff"); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestWaveformSVG_FlatLine(t *testing.T) {
	if _, err := WaveformSVG([]float64{0, 1, 2}, []float64{2, 2, 2}, 10, 10, "#fff"); err != nil {
		t.Errorf("flat line: %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	sig, err := phasor.New(2, 0, 2*math.Pi, 1)
	if err != nil {
		t.Fatal(err)
	}
	_ = sig.SetCurrentTime(1)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, sig); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got SignalData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Magnitude != 2 || got.TimeIndex != sig.CurrentTimeIndex() {
		t.Errorf("unexpected header: %+v", got)
	}
	if got.Wavelength == nil || math.Abs(*got.Wavelength-1) > 1e-12 {
		t.Errorf("wavelength = %v", got.Wavelength)
	}
	if len(got.CurrentRow) != phasor.GridSize || len(got.SampleSeries) != phasor.DefaultSpatialSamples {
		t.Errorf("shape: row %d, series %d", len(got.CurrentRow), len(got.SampleSeries))
	}
}

func TestWriteJSON_StandingWaveOmitsWavelength(t *testing.T) {
	sig, err := phasor.New(1, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sig); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), `"wavelength"`) {
		t.Error("infinite wavelength should be omitted")
	}
}
