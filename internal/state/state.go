// Package state remembers the browser's selection and filters between
// runs.
package state

import (
	"os"

	"gopkg.in/yaml.v3"
)

type State struct {
	Selected string `yaml:"selected,omitempty"`
	Query    string `yaml:"query,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Sort     string `yaml:"sort,omitempty"`
}

// Load reads the state file. A missing file is an empty state.
func Load(path string) (State, error) {
	if path == "" {
		return State{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, err
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Save writes st to path. An empty path does nothing.
func Save(path string, st State) error {
	if path == "" {
		return nil
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
