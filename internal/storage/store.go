package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/phasorsim/internal/phasor"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

// ErrInvalidName indicates a snapshot name or id that would resolve
// outside the store directory.
var ErrInvalidName = errors.New("storage: invalid snapshot name")

// checkName accepts a single path element only.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Metadata is everything needed to rebuild a saved Signal.
type Metadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Timestamp   time.Time `json:"timestamp"`
	Magnitude   float64   `json:"magnitude"`
	Phase       float64   `json:"phase"`
	Beta        float64   `json:"beta"`
	Omega       float64   `json:"omega"`
	MaxTime     float64   `json:"max_time"`
	MaxSpace    float64   `json:"max_space"`
	CurrentTime float64   `json:"current_time"`
	CurrentLoc  float64   `json:"current_loc"`
	SampleLocs  []float64 `json:"sample_locs"`
}

// Signal rebuilds the saved Signal with its cursor.
func (m *Metadata) Signal() (*phasor.Signal, error) {
	sig, err := phasor.New(m.Magnitude, m.Phase, m.Beta, m.Omega,
		phasor.WithMaxTime(m.MaxTime), phasor.WithMaxSpace(m.MaxSpace))
	if err != nil {
		return nil, err
	}
	if err := sig.SetCurrentTime(m.CurrentTime); err != nil {
		return nil, err
	}
	if err := sig.SetCurrentLoc(m.CurrentLoc); err != nil {
		return nil, err
	}
	return sig, nil
}

// Save writes the signal parameters and v(t) at each spatial sample.
func (s *Store) Save(name string, sig *phasor.Signal) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	id := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	space := sig.Space()
	indices := sig.SpaceSampleIndices()
	locs := make([]float64, len(indices))
	for k, j := range indices {
		locs[k] = space[j]
	}

	meta := Metadata{
		ID:          id,
		Name:        name,
		Timestamp:   time.Now(),
		Magnitude:   sig.Magnitude(),
		Phase:       sig.Phase(),
		Beta:        sig.Beta(),
		Omega:       sig.Omega(),
		MaxTime:     sig.MaxTime(),
		MaxSpace:    sig.MaxSpace(),
		CurrentTime: sig.CurrentTime(),
		CurrentLoc:  sig.CurrentLoc(),
		SampleLocs:  locs,
	}
	if err := writeMetadata(filepath.Join(dir, metadataFile), &meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(dir, samplesFile), sig.Time(), sig.SampleTimeSeries()); err != nil {
		return "", err
	}
	return id, nil
}

func writeMetadata(path string, meta *Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeSamples(path string, times []float64, series [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"time"}
	for k := range series {
		header = append(header, fmt.Sprintf("z%d", k))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, col := range series {
			row = append(row, strconv.FormatFloat(col[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns saved snapshots, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	if err := checkName(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	return &meta, nil
}

// LoadSamples returns the time column and one series per spatial sample.
func (s *Store) LoadSamples(id string) ([]float64, [][]float64, error) {
	if err := checkName(id); err != nil {
		return nil, nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, id, samplesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	cols := len(records[0]) - 1
	times := make([]float64, 0, len(records)-1)
	series := make([][]float64, cols)
	for _, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot %s: %w", id, err)
		}
		times = append(times, t)
		for k := 0; k < cols; k++ {
			v, err := strconv.ParseFloat(record[k+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("snapshot %s: %w", id, err)
			}
			series[k] = append(series[k], v)
		}
	}
	return times, series, nil
}
