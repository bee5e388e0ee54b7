package match

import (
	"sort"
)

// SuggestThreshold is the minimum similarity for a name to be suggested.
const SuggestThreshold = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest ranks known names by similarity to name and returns at most limit
// of them, best first. Names scoring below SuggestThreshold are dropped.
// Ties are broken alphabetically so output is deterministic.
func Suggest(name string, known []string, limit int) []string {
	if limit <= 0 || len(known) == 0 {
		return nil
	}

	var candidates []scored

	for _, k := range known {
		if k == name {
			continue
		}

		s := NameSimilarity(name, k)
		if s < SuggestThreshold {
			continue
		}

		candidates = append(candidates, scored{name: k, score: s})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}

	return out
}
