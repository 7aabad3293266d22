package assemble

import (
	"testing"
	"time"

	"github.com/pcnlabs/pcn/internal/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func TestBuildDefaults(t *testing.T) {
	p := Build(Form{Name: "X"}, now)

	assert.Equal(t, "X", p.Name)
	assert.Equal(t, "Unknown Client", p.Company)
	assert.Equal(t, "Unassigned", p.Owner)
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, 1, p.TeamSize)
	assert.Equal(t, 0.0, p.Budget)
	assert.Equal(t, 0, p.Progress)
	assert.Equal(t, 0.0, p.MarketValue)
	assert.Equal(t, 0, p.BusinessRequests)
	assert.Equal(t, "2025-06-01", p.Deadline)
	assert.Equal(t, "Just now", p.UpdatedAt)
	assert.Empty(t, p.CalendarNotes)
	assert.NotEmpty(t, p.ID)
}

func TestBuildEmptyForm(t *testing.T) {
	p := Build(Form{}, now)

	assert.Equal(t, "Untitled Project", p.Name)
	assert.Equal(t, "Unknown Client", p.Company)
	assert.Equal(t, "Unassigned", p.Owner)
	assert.Equal(t, models.PriorityLow, p.Priority)
}

func TestBuildFullForm(t *testing.T) {
	p := Build(Form{
		Name:     "Q4 Infrastructure Scaling",
		Company:  "TechCorp Solutions",
		Leader:   "Dana Voss",
		Staff:    "Ann, Ben, Cara",
		Deadline: "2025-10-15",
		Priority: models.PriorityHigh,
		Budget:   "250000.50",
	}, now)

	assert.Equal(t, "Q4 Infrastructure Scaling", p.Name)
	assert.Equal(t, "TechCorp Solutions", p.Company)
	assert.Equal(t, "Dana Voss", p.Owner)
	assert.Equal(t, 3, p.TeamSize)
	assert.Equal(t, "2025-10-15", p.Deadline)
	assert.Equal(t, models.PriorityHigh, p.Priority)
	assert.Equal(t, 250000.50, p.Budget)
}

func TestBuildStaffCounting(t *testing.T) {
	tests := []struct {
		staff string
		want  int
	}{
		{"", 1},
		{"   ", 1},
		{"Ann", 1},
		{"Ann,Ben", 2},
		{"Ann, Ben, , Cara,", 3}, // blank entries don't count
	}
	for _, tc := range tests {
		p := Build(Form{Staff: tc.staff}, now)
		assert.Equal(t, tc.want, p.TeamSize, "staff %q", tc.staff)
	}
}

func TestBuildUnparseableBudget(t *testing.T) {
	p := Build(Form{Budget: "lots of money"}, now)
	assert.Equal(t, 0.0, p.Budget)
}

func TestBuildUniqueIDs(t *testing.T) {
	a := Build(Form{Name: "A"}, now)
	b := Build(Form{Name: "B"}, now)
	assert.NotEqual(t, a.ID, b.ID)
}
