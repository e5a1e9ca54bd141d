package migrate

import "time"

type Status string

const (
	StatusInfo    Status = "INFO"
	StatusSuccess Status = "SUCCESS"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// Entry is one audited API action.  Details are free-form but kept short;
// anything bulky belongs in the exported payload files, not the log.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Status    Status `json:"status"`
	Endpoint  string `json:"endpoint"`
	Details   string `json:"details"`
}

// RunLog accumulates the audit trail of one pipeline run.  A nil *RunLog is
// a valid sink that records nothing, so components can log unconditionally.
type RunLog struct {
	entries []Entry
	now     func() time.Time
}

func NewRunLog() *RunLog {
	return &RunLog{now: time.Now}
}

const maxDetailLen = 500

func (l *RunLog) Add(action string, status Status, endpoint string, details string) {
	if l == nil {
		return
	}
	if len(details) > maxDetailLen {
		details = details[:maxDetailLen] + "..."
	}
	l.entries = append(l.entries, Entry{
		Timestamp: l.now().Format("15:04:05"),
		Action:    action,
		Status:    status,
		Endpoint:  endpoint,
		Details:   details,
	})
}

func (l *RunLog) Entries() []Entry {
	if l == nil {
		return nil
	}
	return l.entries
}
