// Package storage persists resolved states and saturation sweeps under a
// data directory: one subdirectory per entry, JSON metadata plus a CSV
// table.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// EntryMetadata describes one saved entry: either a single resolved state
// ("state") or a saturation-curve sweep ("sat").
type EntryMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Substance  string             `json:"substance"`
	Pair       string             `json:"pair,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Tolerance  float64            `json:"tolerance,omitempty"`
	Properties map[string]float64 `json:"properties,omitempty"`
}

// SaveState writes one resolved state: metadata holding the full property
// map, plus a one-row CSV for tooling that expects tabular output.
func (s *Store) SaveState(substance, pair string, tol float64, props map[string]float64) (string, error) {
	id := fmt.Sprintf("%s_%s_%d", substance, pair, time.Now().Unix())
	meta := EntryMetadata{
		ID: id, Kind: "state", Substance: substance, Pair: pair,
		Timestamp: time.Now(), Tolerance: tol, Properties: props,
	}

	cols := make([]string, 0, len(props))
	for name := range props {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	row := make([]string, len(cols))
	for i, name := range cols {
		row[i] = strconv.FormatFloat(props[name], 'g', 12, 64)
	}
	return id, s.write(id, meta, cols, [][]string{row})
}

// SaveSweep writes a saturation sweep: one CSV row per temperature sample.
func (s *Store) SaveSweep(substance string, temps, pressures, rhoLiq, rhoVap []float64) (string, error) {
	id := fmt.Sprintf("%s_sat_%d", substance, time.Now().Unix())
	meta := EntryMetadata{
		ID: id, Kind: "sat", Substance: substance, Timestamp: time.Now(),
	}

	rows := make([][]string, len(temps))
	for i := range temps {
		rows[i] = []string{
			strconv.FormatFloat(temps[i], 'g', 12, 64),
			strconv.FormatFloat(pressures[i], 'g', 12, 64),
			strconv.FormatFloat(rhoLiq[i], 'g', 12, 64),
			strconv.FormatFloat(rhoVap[i], 'g', 12, 64),
		}
	}
	return id, s.write(id, meta, []string{"temperature", "pressure", "rho_liquid", "rho_vapor"}, rows)
}

func (s *Store) write(id string, meta EntryMetadata, header []string, rows [][]string) error {
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, "data.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]EntryMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []EntryMetadata{}, nil
		}
		return nil, err
	}

	out := make([]EntryMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta EntryMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		out = append(out, meta)
	}
	return out, nil
}

func (s *Store) Load(id string) (*EntryMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta EntryMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTable reads the CSV of one entry: header plus numeric rows.
func (s *Store) LoadTable(id string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "data.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return []string{}, [][]float64{}, nil
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
