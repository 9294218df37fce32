package model

// DefaultTaskPriority is applied when a task is created without a priority.
const DefaultTaskPriority = "medium"

// Task is a todo item of the task API variant.
type Task struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Task      string `json:"task" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
	Priority  string `json:"priority" gorm:"not null;default:'medium'"`
}

// TableName pins the table name used by the SQLite task store.
func (Task) TableName() string {
	return "todos"
}
