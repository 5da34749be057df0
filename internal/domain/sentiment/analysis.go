package sentiment

// Analysis holds the aggregated sentiment verdict for one piece of content
type Analysis struct {
	SentimentScore    float64  `json:"sentiment_score"`
	ImpactScore       float64  `json:"impact_score"`
	Categories        []string `json:"categories"`
	Keywords          []string `json:"keywords"`
	EntitiesMentioned []string `json:"entities_mentioned"`
	IsCryptoRelated   bool     `json:"is_crypto_related"`
}

// ModelResult is the verdict of a single model in the ensemble
type ModelResult struct {
	Model    string
	Analysis Analysis
	Err      error
}

// Neutral returns the fallback verdict used when every model fails
func Neutral() *Analysis {
	return &Analysis{
		SentimentScore:    0,
		ImpactScore:       0,
		Categories:        []string{},
		Keywords:          []string{},
		EntitiesMentioned: []string{},
		IsCryptoRelated:   false,
	}
}
