package search

import "sort"

// Stats summarises a corpus. Sizes are body lengths in bytes.
type Stats struct {
	Total       int
	Largest     *Skill
	Smallest    *Skill
	ExtraDocs   int
	AverageSize int
	WithTags    int
	UniqueTags  []string
}

// ComputeStats gathers corpus statistics. Largest and Smallest are nil for an
// empty corpus; on equal sizes the earlier skill wins.
func ComputeStats(skills []*Skill) Stats {
	st := Stats{Total: len(skills), UniqueTags: []string{}}
	seen := map[string]struct{}{}
	size := 0
	for _, s := range skills {
		if st.Largest == nil || len(s.Body) > len(st.Largest.Body) {
			st.Largest = s
		}
		if st.Smallest == nil || len(s.Body) < len(st.Smallest.Body) {
			st.Smallest = s
		}
		st.ExtraDocs += len(s.Extras)
		size += len(s.Body)
		if len(s.Tags) > 0 {
			st.WithTags++
		}
		for _, tag := range s.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			st.UniqueTags = append(st.UniqueTags, tag)
		}
	}
	if len(skills) > 0 {
		st.AverageSize = size / len(skills)
	}
	sort.Strings(st.UniqueTags)
	return st
}
