package nlp

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// 标注标签
const (
	LabelDate       = "DATE"
	LabelTime       = "TIME"
	LabelSubject    = "SUBJECT"
	LabelNounPhrase = "NOUN_PHRASE"
)

// Span 文本片段及其标签
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation 标注结果：片段、分词与名词短语
type Annotation struct {
	Spans       []Span
	Tokens      []string
	NounPhrases []string
}

// Annotator 语言学标注器，外部能力，可替换实现
type Annotator interface {
	Annotate(text string) (*Annotation, error)
}

var (
	dateRe = regexp.MustCompile(`(?i)\b(today|tomorrow|tonight|monday|tuesday|wednesday|thursday|friday|saturday|sunday|next week|\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})\b`)
	timeRe = regexp.MustCompile(`\b([01]?\d|2[0-3]):[0-5]\d\b`)
)

type proseAnnotator struct{}

func NewAnnotator() Annotator {
	return proseAnnotator{}
}

func (proseAnnotator) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	ann := &Annotation{}

	// 连续 NN* 词组合并为名词短语
	var phrase []string
	flush := func() {
		if len(phrase) > 0 {
			ann.NounPhrases = append(ann.NounPhrases, strings.Join(phrase, " "))
			phrase = nil
		}
	}
	for _, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, tok.Text)
		if strings.HasPrefix(tok.Tag, "NN") {
			phrase = append(phrase, tok.Text)
		} else {
			flush()
		}
	}
	flush()

	for _, ent := range doc.Entities() {
		ann.Spans = append(ann.Spans, Span{Text: ent.Text, Label: ent.Label})
	}

	// 课程关键词与日期/时间的规则标注
	lowered := strings.ToLower(text)
	for i := range Subjects {
		s := &Subjects[i]
		if strings.Contains(lowered, strings.ToLower(s.Code)) || strings.Contains(lowered, strings.ToLower(s.Name)) {
			ann.Spans = append(ann.Spans, Span{Text: s.Name, Label: LabelSubject})
		}
	}
	for _, m := range dateRe.FindAllString(text, -1) {
		ann.Spans = append(ann.Spans, Span{Text: m, Label: LabelDate})
	}
	for _, m := range timeRe.FindAllString(text, -1) {
		ann.Spans = append(ann.Spans, Span{Text: m, Label: LabelTime})
	}

	return ann, nil
}
