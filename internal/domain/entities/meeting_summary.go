package entities

// MeetingSummary is the structured result extracted from one transcript.
// Field names match the JSON the model is instructed to return. A summary
// is built once per call and replaced wholesale by the next one.
type MeetingSummary struct {
	Highlights  []string     `json:"highlights" yaml:"highlights"`
	ActionItems []ActionItem `json:"actionItems" yaml:"actionItems" validate:"dive"`
	Decisions   []string     `json:"decisions" yaml:"decisions"`
	Speakers    []string     `json:"speakers" yaml:"speakers"`
	Topics      []string     `json:"topics" yaml:"topics"`
}

// SummaryFields lists the keys every summary must carry
var SummaryFields = []string{"highlights", "actionItems", "decisions", "speakers", "topics"}

// CountByPriority returns the number of action items per priority.
// Unknown priorities are counted under their literal value.
func (s *MeetingSummary) CountByPriority() map[Priority]int {
	counts := map[Priority]int{
		PriorityHigh:   0,
		PriorityMedium: 0,
		PriorityLow:    0,
	}
	for _, item := range s.ActionItems {
		counts[item.Priority]++
	}
	return counts
}
