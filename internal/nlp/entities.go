package nlp

// Entities 按用途分桶后的实体
type Entities struct {
	Dates    []Span   `json:"dates"`
	Subjects []string `json:"subjects"`
	Named    []Span   `json:"named_entities"`
}

// BucketSpans 将标注片段归入日期、课程与其他命名实体
func BucketSpans(spans []Span) Entities {
	entities := Entities{}
	for _, span := range spans {
		switch span.Label {
		case LabelDate, LabelTime:
			entities.Dates = append(entities.Dates, span)
		case LabelSubject:
			entities.Subjects = append(entities.Subjects, span.Text)
		default:
			entities.Named = append(entities.Named, span)
		}
	}
	return entities
}
