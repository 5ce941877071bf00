package sim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the YAML description of one simulation scenario:
// a policy configuration plus a run request. Loaded via LoadScenario.
type ScenarioSpec struct {
	SafetyStock   uint64  `yaml:"safety_stock"`
	LeadTime      int     `yaml:"lead_time"`
	OrderQuantity uint64  `yaml:"order_quantity"`
	DemandShape   float64 `yaml:"demand_shape,omitempty"`
	TrafficShape  float64 `yaml:"traffic_shape,omitempty"`
	TableSize     int     `yaml:"table_size,omitempty"`
	Horizon       int     `yaml:"horizon,omitempty"`
	Seed          int64   `yaml:"seed"`

	StartingStock uint64 `yaml:"starting_stock"`
	Trials        int    `yaml:"trials"`
	Mode          string `yaml:"mode,omitempty"`
	Lanes         int    `yaml:"lanes,omitempty"`
}

// LoadScenario reads and decodes a scenario YAML file. Decoding is
// strict: unknown fields are an error, catching typoed keys early.
func LoadScenario(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var spec ScenarioSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if spec.Mode == "" {
		logrus.Warnf("scenario %s does not set mode; defaulting to %q", path, ModeSequential)
		spec.Mode = string(ModeSequential)
	}
	return &spec, nil
}

// Config maps the scenario onto a simulator Config. Defaulting and
// validation stay with NewSimulator.
func (s *ScenarioSpec) Config() Config {
	return Config{
		SafetyStock:   s.SafetyStock,
		LeadTime:      s.LeadTime,
		OrderQuantity: s.OrderQuantity,
		DemandShape:   s.DemandShape,
		TrafficShape:  s.TrafficShape,
		TableSize:     s.TableSize,
		Horizon:       s.Horizon,
		Seed:          s.Seed,
	}
}

// RunSpec maps the scenario onto a run request.
func (s *ScenarioSpec) RunSpec() RunSpec {
	return RunSpec{
		StartingStock: s.StartingStock,
		Trials:        s.Trials,
		Mode:          Mode(s.Mode),
		Lanes:         s.Lanes,
	}
}
