package nlp

import (
	"errors"
	"testing"
)

type fixedAnalyzer struct {
	sentiment Sentiment
}

func (a fixedAnalyzer) Analyze(string) Sentiment { return a.sentiment }

type stubAnnotator struct {
	annotation *Annotation
	err        error
}

func (a stubAnnotator) Annotate(string) (*Annotation, error) { return a.annotation, a.err }

func TestProcessCombinesStages(t *testing.T) {
	classifier := NewClassifier(map[string][]string{
		"task_management": {"create task"},
	}, 0.5)
	processor := NewProcessor(classifier,
		fixedAnalyzer{Sentiment{Compound: 0.4}},
		stubAnnotator{annotation: &Annotation{
			Spans:       []Span{{Text: "tomorrow", Label: LabelDate}},
			Tokens:      []string{"create", "task"},
			NounPhrases: []string{"task"},
		}})

	result, err := processor.Process("create task for tomorrow", "")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Intent.Type != "task_management" {
		t.Errorf("unexpected intent: %v", result.Intent)
	}
	if result.Sentiment.Compound != 0.4 {
		t.Errorf("unexpected sentiment: %v", result.Sentiment)
	}
	if len(result.Entities.Dates) != 1 {
		t.Errorf("unexpected entities: %v", result.Entities)
	}
}

func TestProcessDegradesOnAnnotatorFailure(t *testing.T) {
	classifier := NewClassifier(map[string][]string{
		"academic_query": {"explain"},
	}, 0.5)
	processor := NewProcessor(classifier,
		fixedAnalyzer{Sentiment{Compound: -0.2}},
		stubAnnotator{err: errors.New("model unavailable")})

	result, err := processor.Process("explain recursion", "")
	if err == nil {
		t.Fatal("expected error from annotator")
	}
	if result == nil {
		t.Fatal("expected partial result on failure")
	}
	if result.Intent.Type != "academic_query" {
		t.Errorf("intent must survive annotator failure, got %v", result.Intent)
	}
	if result.Sentiment.Compound != -0.2 {
		t.Errorf("sentiment must survive annotator failure, got %v", result.Sentiment)
	}
	if len(result.Entities.Dates)+len(result.Entities.Subjects)+len(result.Entities.Named) != 0 {
		t.Errorf("expected empty entities, got %v", result.Entities)
	}
}
