package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activation-engine/internal/config"
)

func newTestEngine() *Engine {
	return New(config.DefaultWeights())
}

func intp(v int) *int { return &v }

func TestTags_EnergyBands(t *testing.T) {
	e := newTestEngine()

	for _, energy := range []int{1, 2} {
		tags := e.Tags(UserState{Energy: energy})
		assert.Contains(t, tags, TagLowEnergy, "energy=%d", energy)
		assert.NotContains(t, tags, TagHighEnergy, "energy=%d", energy)
	}
	for _, energy := range []int{4, 5} {
		tags := e.Tags(UserState{Energy: energy})
		assert.Contains(t, tags, TagHighEnergy, "energy=%d", energy)
		assert.NotContains(t, tags, TagLowEnergy, "energy=%d", energy)
	}

	assert.Empty(t, e.Tags(UserState{Energy: 3}))
}

func TestTags_MoodAndContext(t *testing.T) {
	e := newTestEngine()

	tags := e.Tags(UserState{
		Energy: 5,
		Mood:   "Focused",
		Context: &Context{
			Weather:        "Rainy",
			Music:          "LoFi",
			Location:       "Home Office",
			LastActivity:   "Went for a run",
			TimeOfDay:      "Morning",
			ProjectsActive: []string{"p1"},
		},
	})

	assert.Equal(t, []string{
		"high-energy", "focused", "rainy", "lofi", "morning", "home office", "recent-activity",
	}, tags)
	assert.NotContains(t, tags, "went for a run")
}

func TestTags_Deduplicates(t *testing.T) {
	e := newTestEngine()

	tags := e.Tags(UserState{
		Energy:  3,
		Mood:    "Happy",
		Context: &Context{Location: "HAPPY", Weather: "happy"},
	})
	assert.Equal(t, []string{"happy"}, tags)
}

func TestTags_EmptyContext(t *testing.T) {
	e := newTestEngine()
	assert.Empty(t, e.Tags(UserState{Energy: 3, Context: &Context{}}))
}

func TestRankTasks_DefaultWeightsExample(t *testing.T) {
	e := newTestEngine()

	got := e.RankTasks(UserState{Energy: 3}, []Task{
		{Name: "write", Project: "blog", EnergyCost: intp(3), ExecutiveCost: intp(3)},
	})

	require.Len(t, got, 1)
	assert.Equal(t, RankedCandidate{
		Task:    "write",
		Project: "blog",
		Score:   8.0,
		Reason:  "Ranked using energy and executive fit",
	}, got[0])
}

func TestRankTasks_MissingCostsDefaultToThree(t *testing.T) {
	e := newTestEngine()

	got := e.RankTasks(UserState{Energy: 3}, []Task{
		{Name: "nil costs", Project: "p"},
		{Name: "zero costs", Project: "p", EnergyCost: intp(0), ExecutiveCost: intp(0)},
	})

	require.Len(t, got, 2)
	assert.Equal(t, 8.0, got[0].Score)
	assert.Equal(t, 8.0, got[1].Score)
}

func TestRankTasks_SortsDescendingAndStable(t *testing.T) {
	e := newTestEngine()
	us := UserState{Energy: 1}

	got := e.RankTasks(us, []Task{
		{Name: "a", Project: "p", EnergyCost: intp(5), ExecutiveCost: intp(5)}, // 1*(5-4) + 1.5*0 = 1
		{Name: "b", Project: "p", EnergyCost: intp(1), ExecutiveCost: intp(1)}, // 1*5 + 1.5*4 = 11
		{Name: "c", Project: "p", EnergyCost: intp(2), ExecutiveCost: intp(3)}, // 1*4 + 1.5*2 = 7
		{Name: "d", Project: "p", EnergyCost: intp(1), ExecutiveCost: intp(3)}, // 1*5 + 1.5*2 = 8
		{Name: "e", Project: "p", EnergyCost: intp(2), ExecutiveCost: intp(3)}, // 7, after c
	})

	var names []string
	var scores []float64
	for _, c := range got {
		names = append(names, c.Task)
		scores = append(scores, c.Score)
	}
	assert.Equal(t, []string{"b", "d", "c", "e", "a"}, names)
	assert.Equal(t, []float64{11, 8, 7, 7, 1}, scores)
}

func TestRankTasks_EqualScoresKeepInputOrder(t *testing.T) {
	e := newTestEngine()

	var tasks []Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, Task{Name: fmt.Sprintf("t%02d", i), Project: "p"})
	}

	got := e.RankTasks(UserState{Energy: 3}, tasks)
	require.Len(t, got, len(tasks))
	for i, c := range got {
		assert.Equal(t, tasks[i].Name, c.Task)
	}
}

func TestRankTasks_CustomWeightsAndRounding(t *testing.T) {
	e := New(config.Weights{EnergyWeight: 0.333, ExecutiveCostWeight: 0.1})

	got := e.RankTasks(UserState{Energy: 4}, []Task{
		{Name: "x", Project: "p", EnergyCost: intp(2), ExecutiveCost: intp(4)},
	})

	// 0.333*3 + 0.1*1 = 1.099
	require.Len(t, got, 1)
	assert.Equal(t, 1.1, got[0].Score)
	assert.InDelta(t, 1.099, e.Score(UserState{Energy: 4}, Task{EnergyCost: intp(2), ExecutiveCost: intp(4)}), 1e-9)
}

func TestRankTasks_RoundsHalvesToEven(t *testing.T) {
	tests := []struct {
		energyWeight float64
		want         float64
	}{
		{0.025, 0.12}, // 0.125
		{0.075, 0.38}, // 0.375
		{0.1, 0.5},
	}
	for _, tt := range tests {
		e := New(config.Weights{EnergyWeight: tt.energyWeight})
		got := e.RankTasks(UserState{Energy: 3}, []Task{{Name: "t", Project: "p"}})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].Score, "energy_weight=%v", tt.energyWeight)
	}
}

func TestRankTasks_Empty(t *testing.T) {
	e := newTestEngine()
	got := e.RankTasks(UserState{Energy: 2}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankTasks_IgnoresContextWeight(t *testing.T) {
	a := New(config.Weights{EnergyWeight: 1, ExecutiveCostWeight: 1.5, ContextMatchWeight: 0})
	b := New(config.Weights{EnergyWeight: 1, ExecutiveCostWeight: 1.5, ContextMatchWeight: 100,
		PreferredTags: map[string]any{"rainy": 10}})

	us := UserState{Energy: 2, Context: &Context{Weather: "rainy"}}
	tasks := []Task{{Name: "t", Project: "p", Tags: []string{"rainy"}}}
	assert.Equal(t, a.RankTasks(us, tasks), b.RankTasks(us, tasks))
}

func TestPickPromptCategory(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name       string
		mood       string
		energy     int
		categories []string
		want       string
		wantOK     bool
	}{
		{"mood beats energy", "Calm", 5, []string{"High Energy", "Calm Focus"}, "Calm Focus", true},
		{"low energy keyword", "", 1, []string{"Workout", "Relax Time"}, "Relax Time", true},
		{"neutral falls back to first", "", 3, []string{"Foo", "Bar"}, "Foo", true},
		{"empty list", "", 1, nil, "", false},
		{"empty list with mood", "calm", 3, []string{}, "", false},
		{"first mood match wins", "focus", 3, []string{"Deep FOCUS", "Focus Lite"}, "Deep FOCUS", true},
		{"unmatched mood uses energy", "grumpy", 5, []string{"Reading", "Party Mix"}, "Party Mix", true},
		{"unmatched mood neutral energy", "grumpy", 3, []string{"Reading", "Party Mix"}, "Reading", true},
		{"high energy keyword order", "", 4, []string{"Chill", "Intense Run", "Workout"}, "Intense Run", true},
		{"low energy no keyword", "", 2, []string{"Foo", "Bar"}, "Foo", true},
		{"keyword as substring", "", 1, []string{"Flow", "Yellow"}, "Flow", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.PickPromptCategory(tt.mood, tt.energy, tt.categories)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
