package scenario

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/oliverbestmann/arena/physics"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var builtinFS embed.FS

// Decode reads a scenario. Missing physics tunables keep their default values.
func Decode(r io.Reader) (*Scenario, error) {
	scenario := &Scenario{
		Physics:  physics.DefaultConfig(),
		StepRate: 64,
	}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(scenario); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}

		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return scenario, nil
}

// LoadFile reads a scenario from disk.
func LoadFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", filename, err)
	}

	scenario, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", filename, err)
	}

	return scenario, nil
}

// LoadBuiltin reads one of the scenarios compiled into the binary, e.g. "duel".
func LoadBuiltin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("scenarios", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("load builtin scenario %q: %w", name, err)
	}

	scenario, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load builtin scenario %q: %w", name, err)
	}

	return scenario, nil
}

// Validate checks the scenario for values the engine can not work with.
func (s *Scenario) Validate() error {
	if s.StepRate <= 0 {
		return fmt.Errorf("%w: step rate must be positive", ErrInvalidScenario)
	}

	if s.Physics.Margin < 0 || s.Physics.HorizonScale <= 0 {
		return fmt.Errorf("%w: physics margin and horizon scale must be positive", ErrInvalidScenario)
	}

	names := map[string]bool{}

	for _, spec := range s.Obstacles {
		if _, err := spec.ArenaElement(); err != nil {
			return err
		}
	}

	for _, spec := range s.Bodies {
		if _, err := spec.Body(); err != nil {
			return err
		}

		if spec.Name == "" {
			continue
		}

		if names[spec.Name] {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalidScenario, spec.Name)
		}

		names[spec.Name] = true
	}

	for idx, shot := range s.Shots {
		if !names[shot.Shooter] {
			return fmt.Errorf("%w: shot %d: unknown shooter %q", ErrInvalidScenario, idx, shot.Shooter)
		}
	}

	return nil
}
