package nlp

import "testing"

func containsSpan(spans []Span, text, label string) bool {
	for _, s := range spans {
		if s.Text == text && s.Label == label {
			return true
		}
	}
	return false
}

func TestAnnotateRuleSpans(t *testing.T) {
	ann, err := NewAnnotator().Annotate("I need to study IT01 tomorrow at 10:30")
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}

	if !containsSpan(ann.Spans, "tomorrow", LabelDate) {
		t.Errorf("expected tomorrow date span, got %v", ann.Spans)
	}
	if !containsSpan(ann.Spans, "10:30", LabelTime) {
		t.Errorf("expected 10:30 time span, got %v", ann.Spans)
	}
	if !containsSpan(ann.Spans, "Programming Fundamentals", LabelSubject) {
		t.Errorf("expected subject span for IT01, got %v", ann.Spans)
	}
	if len(ann.Tokens) == 0 {
		t.Error("expected tokens")
	}
}

func TestAnnotateSubjectByName(t *testing.T) {
	ann, err := NewAnnotator().Annotate("Can you explain web development basics?")
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if !containsSpan(ann.Spans, "Web Development", LabelSubject) {
		t.Errorf("expected subject span by name, got %v", ann.Spans)
	}
}

func TestBucketSpans(t *testing.T) {
	entities := BucketSpans([]Span{
		{Text: "tomorrow", Label: LabelDate},
		{Text: "14:00", Label: LabelTime},
		{Text: "Cybersecurity", Label: LabelSubject},
		{Text: "Naira", Label: "PERSON"},
	})

	if len(entities.Dates) != 2 {
		t.Errorf("expected date and time bucketed together, got %v", entities.Dates)
	}
	if len(entities.Subjects) != 1 || entities.Subjects[0] != "Cybersecurity" {
		t.Errorf("unexpected subjects: %v", entities.Subjects)
	}
	if len(entities.Named) != 1 {
		t.Errorf("unexpected named entities: %v", entities.Named)
	}
}
