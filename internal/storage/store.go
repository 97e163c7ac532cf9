package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/solarsim/internal/gravity"
	"github.com/san-kum/solarsim/internal/sim"
)

// Store persists completed runs under a base directory, one subdirectory
// per run holding metadata.json and trajectories.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Bodies        []string           `json:"bodies"`
	Steps         int                `json:"steps"`
	Dt            float64            `json:"dt"`
	Integrator    string             `json:"integrator"`
	TrackCentroid bool               `json:"track_centroid"`
	Diagnostics   map[string]float64 `json:"diagnostics"`
}

// Save writes one run to disk and returns its generated id. The CSV holds
// time plus an x/y column pair per body, with the body name in the header;
// the centroid, when tracked, occupies the trailing cog_x/cog_y columns.
func (s *Store) Save(names []string, integrator string, cfg sim.Config, result *sim.Result, diagnostics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%dbody_%s_%d", len(names), integrator, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Bodies:        names,
		Steps:         cfg.Steps,
		Dt:            cfg.Dt,
		Integrator:    integrator,
		TrackCentroid: cfg.TrackCentroid,
		Diagnostics:   diagnostics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range names {
		header = append(header, name+"_x", name+"_y")
	}
	if result.Centroid != nil {
		header = append(header, "cog_x", "cog_y")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Times {
		row := []string{formatFloat(result.Times[i])}
		for b := range result.Trajectories {
			p := result.Trajectories[b][i]
			row = append(row, formatFloat(p.X), formatFloat(p.Y))
		}
		if result.Centroid != nil {
			row = append(row, formatFloat(result.Centroid[i].X), formatFloat(result.Centroid[i].Y))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectories reads a run's CSV back into per-body trajectories.
// The centroid track is nil when the run did not record one.
func (s *Store) LoadTrajectories(runID string) (times []float64, trajectories [][]gravity.Vec2, centroid []gravity.Vec2, err error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]gravity.Vec2{}, nil, nil
	}

	n := len(meta.Bodies)
	trajectories = make([][]gravity.Vec2, n)
	for i := range trajectories {
		trajectories[i] = make([]gravity.Vec2, 0, len(records)-1)
	}
	if meta.TrackCentroid {
		centroid = make([]gravity.Vec2, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		want := 1 + 2*n
		if meta.TrackCentroid {
			want += 2
		}
		if len(record) != want {
			return nil, nil, nil, fmt.Errorf("storage: malformed row in %s: %d columns, want %d", runID, len(record), want)
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		times = append(times, t)

		for b := 0; b < n; b++ {
			x, err := strconv.ParseFloat(record[1+2*b], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			y, err := strconv.ParseFloat(record[2+2*b], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			trajectories[b] = append(trajectories[b], gravity.Vec2{X: x, Y: y})
		}

		if meta.TrackCentroid {
			x, err := strconv.ParseFloat(record[1+2*n], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			y, err := strconv.ParseFloat(record[2+2*n], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			centroid = append(centroid, gravity.Vec2{X: x, Y: y})
		}
	}

	return times, trajectories, centroid, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}
