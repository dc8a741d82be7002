package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every generated task ID.
const TaskIDPrefix = "task-"

// DownloadTask records one download attempt. The coordinator owns the live
// value; everything handed to the UI is a copy.
type DownloadTask struct {
	ID         string
	Request    DownloadRequest
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	LastError  string    // last error message if any
	OutputPath string    // path to downloaded file
	Title      string    // video title
	FileSize   int64     // file size in bytes, 0 if unknown
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// NewDownloadTask creates a pending task for req.
func NewDownloadTask(req DownloadRequest) *DownloadTask {
	return &DownloadTask{
		ID:        GenerateTaskID(),
		Request:   req,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// GenerateTaskID generates a unique task ID
func GenerateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}

// Duration returns how long the attempt took, or so far if still running.
func (dt *DownloadTask) Duration() time.Duration {
	if dt.StartedAt.IsZero() {
		return 0
	}
	if dt.FinishedAt.IsZero() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		// Support both / and \ separators regardless of host OS
		filename := filepath.Base(strings.ReplaceAll(dt.OutputPath, "\\", "/"))
		if idx := strings.LastIndex(filename, "."); idx > 0 {
			filename = filename[:idx]
		}
		if filename != "" && filename != "." && filename != "/" {
			return filename
		}
	}

	return dt.Request.URL
}

// String returns a short description used in logs.
func (dt *DownloadTask) String() string {
	return fmt.Sprintf("%s[%s %s]", dt.ID, dt.Status, dt.Request.URL)
}
