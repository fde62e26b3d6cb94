// Package store persists commit counters and learned configuration as JSON
// files. Loading never fails: a missing file means defaults, and a file that
// cannot be read or parsed is reported as a warning and replaced by defaults.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	CounterFileName = "commit_counters.json"
	ConfigFileName  = "gca_config.json"
)

// Counters maps a counter key to the number of confirmed commits under it.
type Counters map[string]int

// Increment adds one to key and returns the new value.
func (c Counters) Increment(key string) int {
	c[key]++
	return c[key]
}

type State struct {
	Counters Counters
	Config   *Config
	// Warnings describes files that were unreadable and replaced by defaults.
	Warnings []string
}

type Store struct {
	counterPath string
	configPath  string
	logger      *zap.Logger
}

func New(counterPath, configPath string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{counterPath: counterPath, configPath: configPath, logger: logger}
}

func (s *Store) CounterPath() string { return s.counterPath }
func (s *Store) ConfigPath() string  { return s.configPath }

func (s *Store) Load() *State {
	state := &State{Counters: Counters{}, Config: DefaultConfig()}

	var counters Counters
	if err := s.readJSON(s.counterPath, &counters); err != nil {
		state.Warnings = append(state.Warnings, s.degraded(s.counterPath, err))
	} else {
		if err := validateCounters(counters); err != nil {
			state.Warnings = append(state.Warnings, s.degraded(s.counterPath, err))
		} else if counters != nil {
			state.Counters = counters
		}
	}

	cfg := DefaultConfig()
	if err := s.readJSON(s.configPath, cfg); err != nil {
		state.Warnings = append(state.Warnings, s.degraded(s.configPath, err))
	} else {
		state.Config = cfg
	}

	return state
}

func (s *Store) SaveCounters(c Counters) error {
	if c == nil {
		c = Counters{}
	}
	return s.writeJSON(s.counterPath, c)
}

func (s *Store) SaveConfig(cfg *Config) error {
	return s.writeJSON(s.configPath, cfg)
}

// readJSON decodes path into v. A missing file leaves v untouched and is not
// an error.
func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("state file not found, using defaults", zap.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Debug("state file saved", zap.String("path", path))
	return nil
}

func (s *Store) degraded(path string, err error) string {
	s.logger.Warn("state file unusable, falling back to defaults",
		zap.String("path", path), zap.Error(err))
	return fmt.Sprintf("%s could not be loaded (%v); starting from defaults", path, err)
}

func validateCounters(c Counters) error {
	for key, n := range c {
		if n < 0 {
			return fmt.Errorf("counter %q is negative", key)
		}
	}
	return nil
}
