// Package engine derives tags, ranks tasks and picks prompt categories from a
// user's energy, mood and context. Every method is a pure function of its
// arguments and the weights fixed at construction, so one Engine can serve
// concurrent requests.
package engine

import "activation-engine/internal/config"

type Engine struct {
	weights config.Weights
}

func New(w config.Weights) *Engine {
	return &Engine{weights: w}
}

// Weights returns the coefficients the engine was built with.
func (e *Engine) Weights() config.Weights {
	return e.weights
}

func lowEnergy(energy int) bool  { return energy <= 2 }
func highEnergy(energy int) bool { return energy >= 4 }
