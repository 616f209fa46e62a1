package engine

// Optional text fields are "absent" when empty.

type Context struct {
	Weather        string   `json:"weather,omitempty"`
	Music          string   `json:"music,omitempty"`
	Location       string   `json:"location,omitempty"`
	LastActivity   string   `json:"last_activity,omitempty"`
	TimeOfDay      string   `json:"time_of_day,omitempty"`
	ProjectsActive []string `json:"projects_active,omitempty"`
}

type UserState struct {
	Energy  int      `json:"energy" validate:"required,min=1,max=5"`
	Mood    string   `json:"mood,omitempty"`
	Context *Context `json:"context,omitempty"`
}

// Task is a ranking candidate. Effort and Tags are carried but not scored.
type Task struct {
	Name          string   `json:"name" validate:"required"`
	Project       string   `json:"project" validate:"required"`
	Effort        string   `json:"effort,omitempty"`
	EnergyCost    *int     `json:"energy_cost,omitempty"`
	ExecutiveCost *int     `json:"executive_cost,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type RankedCandidate struct {
	Task    string  `json:"task"`
	Project string  `json:"project"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}
