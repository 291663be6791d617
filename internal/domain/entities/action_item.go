package entities

// Priority of an action item
type Priority string

const (
	// PriorityHigh covers urgent tasks, mentioned deadlines and critical issues
	PriorityHigh Priority = "high"
	// PriorityMedium covers important but not urgent tasks
	PriorityMedium Priority = "medium"
	// PriorityLow covers general and nice-to-have tasks
	PriorityLow Priority = "low"
)

// Valid reports whether p is one of the three known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ActionItem is a task extracted from the meeting
type ActionItem struct {
	Task     string   `json:"task" yaml:"task" validate:"required"`
	Assignee string   `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Priority Priority `json:"priority" yaml:"priority" validate:"oneof=high medium low"`
}
