package model

// DefaultActivityPriority is applied when an activity is created without a priority.
const DefaultActivityPriority = "low"

// Activity is a todo item of the activity API variant.
type Activity struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Priority   string `json:"priority"`
	IsComplete bool   `json:"isComplete"`
	IsFun      *bool  `json:"isFun,omitempty"`
}
