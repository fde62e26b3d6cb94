// Package config reads the optional per-repository .gca.yaml file that a team
// commits alongside its code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = ".gca.yaml"

var ErrNoProjectFile = errors.New("no " + FileName + " found")

// Project holds repository-level overrides. Unset fields leave the user's
// settings in charge.
type Project struct {
	Remote     string              `yaml:"remote,omitempty"`
	DateBucket *bool               `yaml:"dateBucket,omitempty"`
	Templates  map[string][]string `yaml:"templates,omitempty"`

	Path string `yaml:"-"`
}

// Find looks for FileName in dir and each parent up to stop (inclusive). An
// empty stop searches up to the filesystem root.
func Find(dir, stop string) (*Project, error) {
	dir = filepath.Clean(dir)
	if stop != "" {
		stop = filepath.Clean(stop)
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		if dir == stop {
			return nil, ErrNoProjectFile
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			return nil, ErrNoProjectFile
		}
		dir = parentDir
	}
}

func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse yaml project file %s: %w", path, err)
	}
	project.Path = path
	return &project, nil
}
