package models

// Status is a project's lifecycle state
type Status string

const (
	StatusActive    Status = "Active"
	StatusInReview  Status = "In Review"
	StatusCompleted Status = "Completed"
	StatusOnHold    Status = "On Hold"
)

// Priority is a project's urgency level
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// NotificationType classifies a notification's origin
type NotificationType string

const (
	NotifUpdate  NotificationType = "update"
	NotifMention NotificationType = "mention"
	NotifSystem  NotificationType = "system"
	NotifAlert   NotificationType = "alert"
)

// CalendarNote is a dated note attached to a project
type CalendarNote struct {
	ID     string
	Date   string // YYYY-MM-DD
	Note   string
	Author string
}

// Project represents a tracked enterprise initiative
type Project struct {
	ID               string
	Name             string
	Company          string
	Status           Status
	Progress         int // 0-100
	Owner            string
	UpdatedAt        string // relative label, e.g. "2h ago"
	Priority         Priority
	TeamSize         int
	Budget           float64
	MarketValue      float64
	BusinessRequests int
	Deadline         string // YYYY-MM-DD
	CalendarNotes    []CalendarNote
}

// AppNotification is one entry in the notification panel
type AppNotification struct {
	ID        string
	Type      NotificationType
	Message   string
	Timestamp string
	IsRead    bool
	User      string // optional
}

// Activity is one entry in the team activity feed
type Activity struct {
	ID        string
	User      string
	Action    string
	Target    string
	Timestamp string
}

// ClampProgress keeps a progress value inside 0-100
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
