package engine

import "strings"

const (
	TagLowEnergy      = "low-energy"
	TagHighEnergy     = "high-energy"
	TagRecentActivity = "recent-activity"
)

// Tags maps a user state to a deduplicated set of lowercase tags, in the order
// each tag was first produced. Energy 3 contributes no tag.
func (e *Engine) Tags(us UserState) []string {
	tags := make([]string, 0, 7)
	seen := make(map[string]struct{}, 7)
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	switch {
	case lowEnergy(us.Energy):
		add(TagLowEnergy)
	case highEnergy(us.Energy):
		add(TagHighEnergy)
	}

	if us.Mood != "" {
		add(strings.ToLower(us.Mood))
	}

	if ctx := us.Context; ctx != nil {
		for _, v := range []string{ctx.Weather, ctx.Music, ctx.TimeOfDay, ctx.Location} {
			if v != "" {
				add(strings.ToLower(v))
			}
		}
		// the activity itself is free text; only its presence is a signal
		if ctx.LastActivity != "" {
			add(TagRecentActivity)
		}
	}

	return tags
}
