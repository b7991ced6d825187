package search

// Signal weights used by Signals.Total.
const (
	WeightName       = 8
	WeightSummary    = 5
	WeightTag        = 4
	WeightBody       = 1
	WeightPhrase     = 1
	WeightNameSim    = 2
	WeightSummarySim = 1
)

// Similarity values at or above these count even without token overlap.
const (
	NameSimGate    = 0.92
	SummarySimGate = 0.94
)

// Signals is the per (query, skill) measurement bundle. NameSimRaw and
// SummarySimRaw are always populated; NameSim and SummarySim hold the gated
// values that feed Total.
type Signals struct {
	NameHits    int
	SummaryHits int
	TagHits     int
	BodyHits    int
	Phrase      bool

	NameSimRaw    float64
	SummarySimRaw float64
	NameSim       float64
	SummarySim    float64
}

// TokenHits is the sum of the four token-overlap counts.
func (s Signals) TokenHits() int {
	return s.NameHits + s.SummaryHits + s.TagHits + s.BodyHits
}

// PhraseBonus is 1 when the query phrase occurs verbatim in the skill.
func (s Signals) PhraseBonus() int {
	if s.Phrase {
		return 1
	}
	return 0
}

// Total is the weighted sum of every signal.
func (s Signals) Total() float64 {
	hits := WeightName*s.NameHits +
		WeightSummary*s.SummaryHits +
		WeightTag*s.TagHits +
		WeightBody*s.BodyHits +
		WeightPhrase*s.PhraseBonus()
	return float64(hits) + WeightNameSim*s.NameSim + WeightSummarySim*s.SummarySim
}

// ComputeSignals measures how well skill matches q. It reads nothing but its
// arguments.
func ComputeSignals(q Query, skill *Skill) Signals {
	s := Signals{
		NameHits:    skill.name.Overlap(q.Text),
		SummaryHits: skill.summary.Overlap(q.Text),
		TagHits:     skill.tags.Overlap(q.Text),
		BodyHits:    skill.body.Overlap(q.Text),
		Phrase:      skill.name.Contains(q.Phrase) || skill.summary.Contains(q.Phrase) || skill.body.Contains(q.Phrase),
	}
	// An empty query resembles nothing, not even an empty field.
	if q.Phrase != "" {
		s.NameSimRaw = Similarity(q.Phrase, skill.name.Phrase)
		s.SummarySimRaw = Similarity(q.Phrase, skill.summary.Phrase)
	}
	s.applyGates()
	return s
}

// applyGates copies each raw similarity into its scored slot only when there
// is lexical corroboration or the raw value clears its threshold.
func (s *Signals) applyGates() {
	corroborated := s.TokenHits() > 0
	s.NameSim = gate(s.NameSimRaw, NameSimGate, corroborated)
	s.SummarySim = gate(s.SummarySimRaw, SummarySimGate, corroborated)
}

func gate(raw, threshold float64, corroborated bool) float64 {
	if corroborated || raw >= threshold {
		return raw
	}
	return 0
}
