package model

// TaskStatus represents the status of a download attempt
type TaskStatus string

const (
	// TaskStatusPending means the request was accepted but the worker has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the engine is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the engine wrote the output file
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the engine failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task still occupies the single download slot
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
