package search

import (
	"sort"
	"strings"
)

// SortRanked sorts results by score (descending), then by case-insensitive
// name (ascending). Entries that still tie keep their corpus order.
func SortRanked(results []Ranked) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return strings.ToLower(results[i].Skill.Name) < strings.ToLower(results[j].Skill.Name)
		}
		return results[i].Score > results[j].Score
	})
}
