package derive

import (
	"strings"
	"testing"

	"github.com/pcnlabs/pcn/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []models.Project {
	return []models.Project{
		{ID: "1", Name: "Cloud Migration Phase 2", Company: "SkyNet Systems", Owner: "Sarah Chen",
			Status: models.StatusActive, Priority: models.PriorityHigh, Budget: 450000, Progress: 65},
		{ID: "2", Name: "Q3 Brand Identity Refresh", Company: "Lumina Group", Owner: "Marc Ramos",
			Status: models.StatusInReview, Priority: models.PriorityMedium, Budget: 85000, Progress: 92},
		{ID: "3", Name: "Internal HR Portal", Company: "PCN Internal", Owner: "Lena Weber",
			Status: models.StatusActive, Priority: models.PriorityLow, Budget: 120000, Progress: 40},
		{ID: "4", Name: "API Security Audit", Company: "CyberGuard Inc", Owner: "Kevin Smith",
			Status: models.StatusOnHold, Priority: models.PriorityHigh, Budget: 35000, Progress: 15},
	}
}

func ids(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestDisplayNoQueryNoSort(t *testing.T) {
	projects := fixture()
	result := Display(projects, "", nil)
	assert.Equal(t, ids(projects), ids(result))
}

func TestFilterMatchesAnyField(t *testing.T) {
	projects := fixture()

	// name
	assert.Equal(t, []string{"1"}, ids(Display(projects, "cloud", nil)))
	// company
	assert.Equal(t, []string{"2"}, ids(Display(projects, "lumina", nil)))
	// owner
	assert.Equal(t, []string{"4"}, ids(Display(projects, "kevin", nil)))
	// status
	assert.Equal(t, []string{"2"}, ids(Display(projects, "review", nil)))
	// priority
	assert.Equal(t, []string{"1", "4"}, ids(Display(projects, "high", nil)))
}

func TestFilterTrimsAndLowercases(t *testing.T) {
	projects := fixture()
	assert.Equal(t, []string{"1"}, ids(Display(projects, "  CLOUD  ", nil)))
}

func TestFilterProperty(t *testing.T) {
	projects := fixture()
	query := "in"

	result := Display(projects, query, nil)
	matched := map[string]bool{}
	for _, p := range result {
		matched[p.ID] = true
		assert.True(t, matchesQuery(p, query), "project %s in result must match", p.ID)
	}
	for _, p := range projects {
		if !matched[p.ID] {
			assert.False(t, matchesQuery(p, query), "project %s outside result must not match", p.ID)
		}
	}
}

func matchesQuery(p models.Project, q string) bool {
	q = strings.ToLower(q)
	for _, f := range []string{p.Name, p.Company, p.Owner, string(p.Status), string(p.Priority)} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func TestFilterNoMatches(t *testing.T) {
	assert.Empty(t, Display(fixture(), "zzz-nothing", nil))
}

func TestSortByBudget(t *testing.T) {
	projects := fixture()

	asc := Display(projects, "", &SortConfig{Key: SortByBudget, Direction: Asc})
	budgets := make([]float64, len(asc))
	for i, p := range asc {
		budgets[i] = p.Budget
	}
	assert.Equal(t, []float64{35000, 85000, 120000, 450000}, budgets)

	desc := Display(projects, "", &SortConfig{Key: SortByBudget, Direction: Desc})
	for i, p := range desc {
		assert.Equal(t, asc[len(asc)-1-i].ID, p.ID)
	}
}

func TestSortByName(t *testing.T) {
	result := Display(fixture(), "", &SortConfig{Key: SortByName, Direction: Asc})
	assert.Equal(t, []string{"4", "1", "3", "2"}, ids(result))
}

func TestSortUnknownKeyLeavesOrder(t *testing.T) {
	projects := fixture()
	result := Display(projects, "", &SortConfig{Key: SortKey("bogus"), Direction: Asc})
	assert.Equal(t, ids(projects), ids(result))
}

func TestSortStableOnTies(t *testing.T) {
	// Two High projects: sorting by priority must keep their input order.
	result := Display(fixture(), "", &SortConfig{Key: SortByPriority, Direction: Asc})
	var highs []string
	for _, p := range result {
		if p.Priority == models.PriorityHigh {
			highs = append(highs, p.ID)
		}
	}
	assert.Equal(t, []string{"1", "4"}, highs)
}

func TestDisplayDoesNotMutateInput(t *testing.T) {
	projects := fixture()
	before := ids(projects)

	Display(projects, "cloud", &SortConfig{Key: SortByBudget, Direction: Desc})
	assert.Equal(t, before, ids(projects))
}

func TestRequestSortCycle(t *testing.T) {
	// First click: ascending
	first := RequestSort(nil, SortByBudget)
	require.Equal(t, SortConfig{Key: SortByBudget, Direction: Asc}, first)

	// Second click on the same column: descending
	second := RequestSort(&first, SortByBudget)
	require.Equal(t, SortConfig{Key: SortByBudget, Direction: Desc}, second)

	// Third click: back to ascending, never to unsorted
	third := RequestSort(&second, SortByBudget)
	require.Equal(t, SortConfig{Key: SortByBudget, Direction: Asc}, third)
}

func TestRequestSortSwitchingColumnsResetsToAsc(t *testing.T) {
	current := SortConfig{Key: SortByBudget, Direction: Desc}
	next := RequestSort(&current, SortByName)
	assert.Equal(t, SortConfig{Key: SortByName, Direction: Asc}, next)
}
