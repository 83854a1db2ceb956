package nlp

import (
	"sort"
	"strings"
)

// Intent 识别结果
type Intent struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Classifier 基于触发词子串匹配的意图分类器。
// 每个意图的得分为命中触发词数除以触发词总数，取最高分；
// 同分时按意图名字典序取最小，保证结果稳定。
type Classifier struct {
	labels             []string
	patterns           map[string][]string
	fallbackConfidence float64
}

func NewClassifier(patterns map[string][]string, fallbackConfidence float64) *Classifier {
	labels := make([]string, 0, len(patterns))
	for label := range patterns {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	if fallbackConfidence == 0 {
		fallbackConfidence = 0.5
	}

	return &Classifier{
		labels:             labels,
		patterns:           patterns,
		fallbackConfidence: fallbackConfidence,
	}
}

// Detect 识别意图；无命中时回落到会话上下文，再回落到 general_query
func (c *Classifier) Detect(text, context string) Intent {
	lowered := strings.ToLower(text)

	best := Intent{}
	matched := false
	for _, label := range c.labels {
		triggers := c.patterns[label]
		if len(triggers) == 0 {
			continue
		}
		hits := 0
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(triggers))
		if !matched || score > best.Confidence {
			best = Intent{Type: label, Confidence: score}
			matched = true
		}
	}

	if matched {
		return best
	}

	fallback := context
	if fallback == "" {
		fallback = "general_query"
	}
	return Intent{Type: fallback, Confidence: c.fallbackConfidence}
}
