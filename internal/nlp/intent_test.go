package nlp

import "testing"

func TestDetectScoresByTriggerRatio(t *testing.T) {
	c := NewClassifier(map[string][]string{
		"broad":  {"plan", "organize"},
		"narrow": {"plan"},
	}, 0.5)

	// "plan" hits 1/2 for broad and 1/1 for narrow
	intent := c.Detect("Help me plan my week", "")
	if intent.Type != "narrow" {
		t.Fatalf("expected narrow to win, got %q", intent.Type)
	}
	if intent.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", intent.Confidence)
	}
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	c := NewClassifier(map[string][]string{
		"academic_query": {"explain"},
	}, 0.5)

	intent := c.Detect("EXPLAIN recursion to me", "")
	if intent.Type != "academic_query" {
		t.Fatalf("expected academic_query, got %q", intent.Type)
	}
}

func TestDetectTieBreaksAlphabetically(t *testing.T) {
	c := NewClassifier(map[string][]string{
		"beta":  {"plan"},
		"alpha": {"plan"},
	}, 0.5)

	for i := 0; i < 10; i++ {
		intent := c.Detect("plan something", "")
		if intent.Type != "alpha" {
			t.Fatalf("expected alpha on tie, got %q", intent.Type)
		}
	}
}

func TestDetectFallsBackToContext(t *testing.T) {
	c := NewClassifier(map[string][]string{
		"academic_query": {"explain"},
	}, 0.5)

	intent := c.Detect("blah blah", "study_planning")
	if intent.Type != "study_planning" {
		t.Fatalf("expected context fallback, got %q", intent.Type)
	}
	if intent.Confidence != 0.5 {
		t.Errorf("expected fallback confidence 0.5, got %v", intent.Confidence)
	}
}

func TestDetectFallsBackToGeneralQuery(t *testing.T) {
	c := NewClassifier(map[string][]string{
		"academic_query": {"explain"},
	}, 0.5)

	intent := c.Detect("blah blah", "")
	if intent.Type != "general_query" {
		t.Fatalf("expected general_query fallback, got %q", intent.Type)
	}
}
