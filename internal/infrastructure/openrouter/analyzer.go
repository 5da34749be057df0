package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xLang1234/PythonBE/internal/domain/sentiment"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

const analysisPromptTemplate = `You are a cryptocurrency analysis algorithm. Your only task is to analyze the following crypto-related tweet and output a standardized JSON object.

Tweet: "%s"

IMPORTANT: You must ONLY output valid JSON. Do not include any explanations, notes, or text outside the JSON object. Your entire response must be parseable as JSON.

Return this exact JSON structure with appropriate values:
{
  "sentiment_score": [number between -1.0 and 1.0 where -1 is very negative, 0 is neutral, and 1 is very positive],
  "impact_score": [number between 0.0 and 1.0 representing potential market impact],
  "categories": [array of string categories like "market", "technology", "regulation", "security", etc.],
  "keywords": [array of up to 8 important string keywords from the text],
  "entities_mentioned": [array of string cryptocurrencies or crypto entities mentioned],
  "is_crypto_related": [boolean - true if crypto-related, false if not]
}

REMINDER: Output ONLY the JSON object without any markdown formatting, explanations, or additional text.`

const summaryPromptTemplate = `You are a financial analyst writing concise crypto market intelligence.

Content: "%s"

Analysis data (for context only):
- Sentiment: %.2f
- Impact: %.2f
- Categories: %s
- Entities: %s
- Keywords: %s

Write ONE SHORT SENTENCE that begins with "Market Intelligence:" capturing the most essential insight.
Be extremely concise (under 80 characters if possible).
Focus on the most significant aspect of the content.
NO explanations, markdown, or trailing dots.`

const summaryPrefix = "Market Intelligence:"

// analysisPayload is the JSON shape a model is asked to produce. Pointer
// fields distinguish absent keys so defaults can be filled in.
type analysisPayload struct {
	SentimentScore    *float64 `json:"sentiment_score"`
	ImpactScore       *float64 `json:"impact_score"`
	Categories        []string `json:"categories"`
	Keywords          []string `json:"keywords"`
	EntitiesMentioned []string `json:"entities_mentioned"`
	IsCryptoRelated   *bool    `json:"is_crypto_related"`
}

// Ensemble fans one text out to several models and aggregates their
// verdicts. It also writes the one-line market intelligence summary,
// satisfying both sentiment.Analyzer and sentiment.Summarizer.
type Ensemble struct {
	client       *Client
	models       []string
	summaryModel string
	logger       logger.Logger
}

// NewEnsemble creates a model-ensemble analyzer and summarizer
func NewEnsemble(client *Client, models []string, summaryModel string, log logger.Logger) *Ensemble {
	return &Ensemble{
		client:       client,
		models:       models,
		summaryModel: summaryModel,
		logger:       log,
	}
}

// Analyze queries every configured model concurrently and aggregates the
// successful verdicts. Individual model failures are tolerated.
func (a *Ensemble) Analyze(ctx context.Context, text string) (*sentiment.Analysis, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, text)

	results := make([]sentiment.ModelResult, len(a.models))
	var wg sync.WaitGroup
	for i, model := range a.models {
		wg.Add(1)
		go func(i int, model string) {
			defer wg.Done()
			results[i] = a.queryModel(ctx, model, prompt)
		}(i, model)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Warn("Model ", r.Model, " failed: ", r.Err)
		}
	}
	if failed == len(results) {
		a.logger.Warn("All models failed to analyze content")
	}

	return sentiment.Aggregate(results), nil
}

func (a *Ensemble) queryModel(ctx context.Context, model, prompt string) sentiment.ModelResult {
	content, err := a.client.ChatCompletion(ctx, model, prompt, 0.1)
	if err != nil {
		return sentiment.ModelResult{Model: model, Err: err}
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return sentiment.ModelResult{Model: model, Err: fmt.Errorf("failed to parse model output: %w", err)}
	}

	return sentiment.ModelResult{Model: model, Analysis: payload.toAnalysis()}
}

// toAnalysis converts the payload, filling defaults for keys the model
// left out: neutral sentiment, medium impact, crypto-related.
func (p *analysisPayload) toAnalysis() sentiment.Analysis {
	a := sentiment.Analysis{
		SentimentScore:    0,
		ImpactScore:       0.5,
		Categories:        []string{},
		Keywords:          []string{},
		EntitiesMentioned: []string{},
		IsCryptoRelated:   true,
	}

	if p.SentimentScore != nil {
		a.SentimentScore = *p.SentimentScore
	}
	if p.ImpactScore != nil {
		a.ImpactScore = *p.ImpactScore
	}
	if p.Categories != nil {
		a.Categories = p.Categories
	}
	if p.Keywords != nil {
		a.Keywords = p.Keywords
	}
	if p.EntitiesMentioned != nil {
		a.EntitiesMentioned = p.EntitiesMentioned
	}
	if p.IsCryptoRelated != nil {
		a.IsCryptoRelated = *p.IsCryptoRelated
	}
	return a
}

// Summarize writes the one-line market intelligence summary for text,
// appending sourceURL as a markdown link when present.
func (a *Ensemble) Summarize(ctx context.Context, text string, analysis *sentiment.Analysis, sourceURL string) (string, error) {
	keywords := analysis.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	prompt := fmt.Sprintf(summaryPromptTemplate,
		text,
		analysis.SentimentScore,
		analysis.ImpactScore,
		strings.Join(analysis.Categories, ", "),
		strings.Join(analysis.EntitiesMentioned, ", "),
		strings.Join(keywords, ", "),
	)

	content, err := a.client.ChatCompletion(ctx, a.summaryModel, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	summary := strings.TrimSpace(content)
	summary = strings.Trim(summary, `"`)
	if !strings.HasPrefix(summary, summaryPrefix) {
		summary = summaryPrefix + " " + summary
	}

	if sourceURL != "" {
		summary = fmt.Sprintf("%s [Source](%s)", summary, sourceURL)
	}

	return summary, nil
}
