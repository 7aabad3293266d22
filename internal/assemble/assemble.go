// Package assemble turns the raw creation-form payload into a fully
// populated project record. Build is total: missing or unparseable
// fields degrade to fixed fallbacks instead of failing.
package assemble

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pcnlabs/pcn/internal/dates"
	"github.com/pcnlabs/pcn/internal/models"
)

// Form is the creation form's payload. All fields are optional.
type Form struct {
	Name     string
	Company  string
	Leader   string
	Staff    string // comma-separated names
	Deadline string // YYYY-MM-DD
	Priority models.Priority
	Budget   string // decimal text
}

// Build assembles a new project from the form. now supplies the default
// deadline when none was chosen.
func Build(f Form, now time.Time) models.Project {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "Untitled Project"
	}

	company := strings.TrimSpace(f.Company)
	if company == "" {
		company = "Unknown Client"
	}

	owner := strings.TrimSpace(f.Leader)
	if owner == "" {
		owner = "Unassigned"
	}

	deadline := strings.TrimSpace(f.Deadline)
	if deadline == "" {
		deadline = dates.FormatISODate(now)
	}

	budget, err := strconv.ParseFloat(strings.TrimSpace(f.Budget), 64)
	if err != nil {
		budget = 0
	}

	priority := f.Priority
	if priority == "" {
		priority = models.PriorityLow
	}

	return models.Project{
		ID:               uuid.NewString(),
		Name:             name,
		Company:          company,
		Status:           models.StatusActive,
		Progress:         models.ClampProgress(0),
		Owner:            owner,
		UpdatedAt:        "Just now",
		Priority:         priority,
		TeamSize:         countStaff(f.Staff),
		Budget:           budget,
		MarketValue:      0,
		BusinessRequests: 0,
		Deadline:         deadline,
		CalendarNotes:    []models.CalendarNote{},
	}
}

// countStaff counts non-empty comma-separated entries, with a minimum
// of one implicit member when the field is blank.
func countStaff(staff string) int {
	count := 0
	for _, part := range strings.Split(staff, ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}
