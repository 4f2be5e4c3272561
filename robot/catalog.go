package robot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogEntry bundles a named movement distribution with the sensor
// model used when studying it.
type CatalogEntry struct {
	Name     string
	Movement MoveDistribution
	Sensor   SensorModel
}

// Validate checks the catalog invariants: unit-sum movement
// probabilities and correctness probabilities inside [0,1].
func (e CatalogEntry) Validate() error {
	if err := e.Movement.Check(); err != nil {
		return fmt.Errorf("entry %q: %w", e.Name, err)
	}
	for name, p := range map[string]float64{
		"p_correct_wall":   e.Sensor.PCorrectWall,
		"p_correct_window": e.Sensor.PCorrectWindow,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("entry %q: %s is %v, want [0,1]", e.Name, name, p)
		}
	}
	return nil
}

// DefaultCatalog returns the six reference movement distributions: the
// permutations of the weights 0.1/0.2/0.7 over distances {0,1,2}, all
// with perfect sensing. It builds a fresh slice on every call so the
// catalog stays read-only in effect.
func DefaultCatalog() []CatalogEntry {
	perfect := PerfectSensor()
	return []CatalogEntry{
		{Name: "mostly idle", Movement: MoveDistribution{0: 0.7, 1: 0.2, 2: 0.1}, Sensor: perfect},
		{Name: "favors distance 1", Movement: MoveDistribution{0: 0.2, 1: 0.7, 2: 0.1}, Sensor: perfect},
		{Name: "favors distance 2", Movement: MoveDistribution{0: 0.2, 1: 0.1, 2: 0.7}, Sensor: perfect},
		{Name: "mostly idle, long tail", Movement: MoveDistribution{0: 0.7, 1: 0.1, 2: 0.2}, Sensor: perfect},
		{Name: "favors distance 2, rarely idle", Movement: MoveDistribution{0: 0.1, 1: 0.2, 2: 0.7}, Sensor: perfect},
		{Name: "reference", Movement: MoveDistribution{0: 0.1, 1: 0.7, 2: 0.2}, Sensor: perfect},
	}
}

// catalogEntryYAML mirrors CatalogEntry on disk. Sensor probabilities
// are pointers so that an omitted field defaults to 1.0 (always
// correct) rather than 0.
type catalogEntryYAML struct {
	Name           string           `yaml:"name"`
	Movement       MoveDistribution `yaml:"movement"`
	PCorrectWall   *float64         `yaml:"p_correct_wall"`
	PCorrectWindow *float64         `yaml:"p_correct_window"`
}

// LoadCatalog reads a YAML catalog file: a sequence of entries, each
// with a name, a movement mapping of distance to probability, and
// optional p_correct_wall / p_correct_window. Every entry is validated
// before the catalog is returned.
func LoadCatalog(path string) ([]CatalogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var onDisk []catalogEntryYAML
	if err := yaml.Unmarshal(raw, &onDisk); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	entries := make([]CatalogEntry, 0, len(onDisk))
	for i, d := range onDisk {
		if d.Movement == nil {
			return nil, fmt.Errorf("load catalog %s: entry %d (%q) has no movement distribution", path, i, d.Name)
		}
		e := CatalogEntry{
			Name:     d.Name,
			Movement: d.Movement,
			Sensor:   PerfectSensor(),
		}
		if d.PCorrectWall != nil {
			e.Sensor.PCorrectWall = *d.PCorrectWall
		}
		if d.PCorrectWindow != nil {
			e.Sensor.PCorrectWindow = *d.PCorrectWindow
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
