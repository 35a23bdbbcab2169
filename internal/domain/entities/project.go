package entities

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type KanbanColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// Project.Status holds the id of the KanbanColumn it sits in.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	CustomerName string   `json:"customer_name"`
	Status       string   `json:"status"`
	Priority     Priority `json:"priority"`
	Deadline     string   `json:"deadline,omitempty"`
	Description  string   `json:"description,omitempty"`
	Responsible  string   `json:"responsible,omitempty"`
}
