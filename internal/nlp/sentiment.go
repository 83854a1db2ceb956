package nlp

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Sentiment 情感分析结果
type Sentiment struct {
	Compound     float64 `json:"compound"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	Neutral      float64 `json:"neutral"`
	Subjectivity float64 `json:"subjectivity"`
}

// SentimentAnalyzer 情感估计器，生产实现基于 VADER 词典
type SentimentAnalyzer interface {
	Analyze(text string) Sentiment
}

type vaderAnalyzer struct{}

func NewSentimentAnalyzer() SentimentAnalyzer {
	return vaderAnalyzer{}
}

func (vaderAnalyzer) Analyze(text string) Sentiment {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	return Sentiment{
		Compound: score.Compound,
		Positive: score.Positive,
		Negative: score.Negative,
		Neutral:  score.Neutral,
		// 中性占比越高主观性越低
		Subjectivity: 1 - score.Neutral,
	}
}
