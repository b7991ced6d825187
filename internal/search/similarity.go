package search

// Jaro-Winkler parameters.
const (
	winklerScale          = 0.1
	winklerPrefixCap      = 4
	winklerBoostThreshold = 0.7
)

// Similarity returns the Jaro-Winkler similarity of a and b in [0, 1].
// Identical strings score 1; strings with no matching character inside the
// Jaro window score 0. Comparison is rune-wise and case-sensitive, so callers
// pass normalized phrases.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	sim := jaro(ra, rb)
	if sim <= winklerBoostThreshold {
		return sim
	}

	prefix := 0
	for prefix < winklerPrefixCap && prefix < len(ra) && prefix < len(rb) && ra[prefix] == rb[prefix] {
		prefix++
	}
	return sim + winklerScale*float64(prefix)*(1-sim)
}

func jaro(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := max(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i, r := range a {
		lo := max(0, i-window)
		hi := min(len(b), i+window+1)
		for j := lo; j < hi; j++ {
			if bMatched[j] || b[j] != r {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Half-transpositions: matched characters that appear in a different order.
	half := 0
	k := 0
	for i := range a {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			half++
		}
		k++
	}

	m := float64(matches)
	t := float64(half) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}
