package search

import (
	"sort"
	"strings"
)

// Rank scores every skill against query and returns the best topN, best
// first. topN <= 0 yields an empty slice; a topN larger than the corpus
// yields every skill.
func Rank(query string, skills []*Skill, topN int) []Ranked {
	if topN <= 0 {
		return []Ranked{}
	}

	q := NewQuery(query)
	ranked := make([]Ranked, len(skills))
	for i, s := range skills {
		sig := ComputeSignals(q, s)
		ranked[i] = Ranked{Skill: s, Signals: sig, Score: sig.Total()}
	}
	SortRanked(ranked)

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// ClosestNames returns up to limit skill names ordered by raw name
// similarity to query. Names with no similarity at all are left out.
func ClosestNames(query string, skills []*Skill, limit int) []string {
	q := NewQuery(query)

	type candidate struct {
		name string
		sim  float64
	}
	var out []candidate
	for _, s := range skills {
		sim := Similarity(q.Phrase, s.name.Phrase)
		if sim <= 0 {
			continue
		}
		out = append(out, candidate{name: s.Name, sim: sim})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].sim == out[j].sim {
			return strings.ToLower(out[i].name) < strings.ToLower(out[j].name)
		}
		return out[i].sim > out[j].sim
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	names := make([]string, len(out))
	for i, c := range out {
		names[i] = c.name
	}
	return names
}
