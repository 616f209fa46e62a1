package engine

import "strings"

var (
	lowEnergyKeywords  = []string{"low", "rest", "relax", "chill", "calm"}
	highEnergyKeywords = []string{"high", "active", "intense", "workout", "party"}
)

// PickPromptCategory chooses one of categories. Matching is case-insensitive
// but the caller's spelling is returned. Rules, first hit wins at each step:
//
//  1. the first category containing mood;
//  2. energy <= 2: the first category containing a low-energy keyword,
//     energy >= 4: the first containing a high-energy keyword;
//  3. the first category.
//
// Step 2 runs whenever step 1 found nothing, whether or not a mood was given.
// ok is false only when categories is empty.
func (e *Engine) PickPromptCategory(mood string, energy int, categories []string) (category string, ok bool) {
	if len(categories) == 0 {
		return "", false
	}

	lowered := make([]string, len(categories))
	for i, c := range categories {
		lowered[i] = strings.ToLower(c)
	}

	if mood != "" {
		m := strings.ToLower(mood)
		for i, c := range lowered {
			if strings.Contains(c, m) {
				return categories[i], true
			}
		}
	}

	var keywords []string
	switch {
	case lowEnergy(energy):
		keywords = lowEnergyKeywords
	case highEnergy(energy):
		keywords = highEnergyKeywords
	}
	if keywords != nil {
		for i, c := range lowered {
			if containsAny(c, keywords) {
				return categories[i], true
			}
		}
	}

	return categories[0], true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
