package statuses

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)
