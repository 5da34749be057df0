package sentiment

import "sort"

// Default caps for the voted list fields
const (
	MaxCategories = 5
	MaxKeywords   = 8
	MaxEntities   = 5
)

// Aggregate combines the verdicts of several models into one Analysis.
// Scores take the median over successful results, list fields the most voted
// items, and the crypto gate a simple majority. With no successful result the
// neutral verdict is returned.
func Aggregate(results []ModelResult) *Analysis {
	var valid []Analysis
	for _, r := range results {
		if r.Err == nil {
			valid = append(valid, r.Analysis)
		}
	}

	if len(valid) == 0 {
		return Neutral()
	}

	sentimentScores := make([]float64, 0, len(valid))
	impactScores := make([]float64, 0, len(valid))
	var allCategories, allKeywords, allEntities []string
	cryptoVotes := 0

	for _, a := range valid {
		sentimentScores = append(sentimentScores, a.SentimentScore)
		impactScores = append(impactScores, a.ImpactScore)
		allCategories = append(allCategories, a.Categories...)
		allKeywords = append(allKeywords, a.Keywords...)
		allEntities = append(allEntities, a.EntitiesMentioned...)
		if a.IsCryptoRelated {
			cryptoVotes++
		}
	}

	categories := topItems(allCategories, MaxCategories)
	if len(categories) == 0 {
		categories = []string{"general"}
	}

	return &Analysis{
		SentimentScore:    median(sentimentScores),
		ImpactScore:       median(impactScores),
		Categories:        categories,
		Keywords:          topItems(allKeywords, MaxKeywords),
		EntitiesMentioned: topItems(allEntities, MaxEntities),
		IsCryptoRelated:   float64(cryptoVotes) >= float64(len(valid))/2,
	}
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// topItems returns the up-to-max most frequent items, ties broken alphabetically
func topItems(items []string, max int) []string {
	if len(items) == 0 {
		return []string{}
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item]++
	}

	unique := make([]string, 0, len(counts))
	for item := range counts {
		unique = append(unique, item)
	}

	sort.Slice(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return unique[i] < unique[j]
	})

	if len(unique) > max {
		unique = unique[:max]
	}
	return unique
}
