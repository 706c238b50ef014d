// Package batch generates several datasets in one go from a YAML plan.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the top-level structure of a plan file.
type Plan struct {
	OutputDir string  `yaml:"output_dir"`
	Datasets  []Entry `yaml:"datasets"`
}

// Entry is one dataset of a plan. A nil Seed picks a random one at run time.
type Entry struct {
	Rows int    `yaml:"rows"`
	Seed *int64 `yaml:"seed"`
}

var ErrEmptyPlan = errors.New("plan lists no datasets")

// LoadPlan reads and parses a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes a plan, rejecting unknown keys.
func ParsePlan(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var plan Plan
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if len(plan.Datasets) == 0 {
		return nil, ErrEmptyPlan
	}
	return &plan, nil
}
