package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultWeightsPath = "weights.yaml"

// Weights are the scoring coefficients shared by every request.
// ContextMatchWeight and PreferredTags are accepted but no formula reads them yet.
type Weights struct {
	EnergyWeight        float64        `yaml:"energy_weight" json:"energy_weight"`
	ExecutiveCostWeight float64        `yaml:"executive_cost_weight" json:"executive_cost_weight"`
	ContextMatchWeight  float64        `yaml:"context_match_weight" json:"context_match_weight"`
	PreferredTags       map[string]any `yaml:"preferred_tags" json:"preferred_tags"`
}

func DefaultWeights() Weights {
	return Weights{
		EnergyWeight:        1.0,
		ExecutiveCostWeight: 1.5,
		ContextMatchWeight:  0.5,
		PreferredTags:       map[string]any{},
	}
}

// LoadWeights reads the weights document at path. It never fails: a missing or
// broken document yields DefaultWeights, and bad individual values fall back
// to their defaults. Every fallback is logged.
func LoadWeights(path string, logger *slog.Logger) Weights {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("weights file not found, using defaults", "path", path)
		} else {
			logger.Warn("weights file unreadable, using defaults", "path", path, "error", err)
		}
		return DefaultWeights()
	}

	w, problems, err := ParseWeights(data)
	if err != nil {
		logger.Warn("weights file malformed, using defaults", "path", path, "error", err)
		return DefaultWeights()
	}
	for _, p := range problems {
		logger.Warn("weights value ignored, using default", "path", path, "problem", p)
	}

	logger.Info("weights loaded",
		"path", path,
		"energy_weight", w.EnergyWeight,
		"executive_cost_weight", w.ExecutiveCostWeight,
		"context_match_weight", w.ContextMatchWeight,
	)
	return w
}

// ParseWeights overlays a YAML mapping onto DefaultWeights key by key.
// It returns an error only when data is not a well-formed mapping; per-key
// type problems are reported in problems and the default is kept.
func ParseWeights(data []byte) (Weights, []string, error) {
	w := DefaultWeights()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Weights{}, nil, fmt.Errorf("parsing weights YAML: %w", err)
	}

	var problems []string
	number := func(key string, dst *float64) {
		v, ok := raw[key]
		if !ok {
			problems = append(problems, key+": missing")
			return
		}
		f, ok := toFloat(v)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: expected a number, got %T", key, v))
			return
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			problems = append(problems, fmt.Sprintf("%s: expected a finite number, got %v", key, f))
			return
		}
		*dst = f
	}

	number("energy_weight", &w.EnergyWeight)
	number("executive_cost_weight", &w.ExecutiveCostWeight)
	number("context_match_weight", &w.ContextMatchWeight)

	switch tags := raw["preferred_tags"].(type) {
	case map[string]any:
		w.PreferredTags = tags
	case nil:
		// absent or explicit null
	default:
		problems = append(problems, fmt.Sprintf("preferred_tags: expected a mapping, got %T", tags))
	}

	return w, problems, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
