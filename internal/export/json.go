package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/phasorsim/internal/phasor"
)

type SignalData struct {
	Magnitude     float64     `json:"magnitude"`
	Phase         float64     `json:"phase"`
	Beta          float64     `json:"beta"`
	Omega         float64     `json:"omega"`
	MaxTime       float64     `json:"max_time"`
	MaxSpace      float64     `json:"max_space"`
	Wavelength    *float64    `json:"wavelength,omitempty"`
	CurrentTime   float64     `json:"current_time"`
	CurrentLoc    float64     `json:"current_loc"`
	TimeIndex     int         `json:"current_time_index"`
	LocIndex      int         `json:"current_loc_index"`
	Time          []float64   `json:"time"`
	Space         []float64   `json:"space"`
	SampleIndices []int       `json:"space_sample_indices"`
	CurrentRow    []float64   `json:"current_row"`
	SampleSeries  [][]float64 `json:"sample_series"`
}

func NewSignalData(sig *phasor.Signal) SignalData {
	data := SignalData{
		Magnitude:     sig.Magnitude(),
		Phase:         sig.Phase(),
		Beta:          sig.Beta(),
		Omega:         sig.Omega(),
		MaxTime:       sig.MaxTime(),
		MaxSpace:      sig.MaxSpace(),
		CurrentTime:   sig.CurrentTime(),
		CurrentLoc:    sig.CurrentLoc(),
		TimeIndex:     sig.CurrentTimeIndex(),
		LocIndex:      sig.CurrentLocIndex(),
		Time:          sig.Time(),
		Space:         sig.Space(),
		SampleIndices: sig.SpaceSampleIndices(),
		CurrentRow:    sig.CurrentRow(),
		SampleSeries:  sig.SampleTimeSeries(),
	}
	// encoding/json rejects Inf
	if wl := sig.Wavelength(); !math.IsInf(wl, 0) {
		data.Wavelength = &wl
	}
	return data
}

func WriteJSON(w io.Writer, sig *phasor.Signal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSignalData(sig))
}
