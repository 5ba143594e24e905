package domain

// Task represents a single task on the shared list.
// The ID is assigned by the store on creation. Tasks carry no ownership
// link: any authenticated principal may mutate any task.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// NewTask creates a new Task with the given description.
// Returns an error if validation fails.
func NewTask(description string) (*Task, error) {
	task := &Task{
		Description: description,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}
