package nlp

// Result 单条消息的完整分析结果
type Result struct {
	Intent      Intent    `json:"intent"`
	Entities    Entities  `json:"entities"`
	Sentiment   Sentiment `json:"sentiment"`
	Tokens      []string  `json:"tokens"`
	NounPhrases []string  `json:"noun_phrases"`
}

// Processor 组合意图分类、情感分析与标注
type Processor struct {
	classifier *Classifier
	analyzer   SentimentAnalyzer
	annotator  Annotator
}

func NewProcessor(classifier *Classifier, analyzer SentimentAnalyzer, annotator Annotator) *Processor {
	return &Processor{
		classifier: classifier,
		analyzer:   analyzer,
		annotator:  annotator,
	}
}

// Process 分析消息；标注失败时降级为空实体，意图与情感照常返回
func (p *Processor) Process(text, context string) (*Result, error) {
	result := &Result{
		Intent:    p.classifier.Detect(text, context),
		Sentiment: p.analyzer.Analyze(text),
	}

	ann, err := p.annotator.Annotate(text)
	if err != nil {
		return result, err
	}

	result.Entities = BucketSpans(ann.Spans)
	result.Tokens = ann.Tokens
	result.NounPhrases = ann.NounPhrases

	return result, nil
}
