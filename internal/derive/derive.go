// Package derive computes the view-ready project list: free-text
// filtering, column sorting and the header-click sort cycle. Every
// result is recomputed from the full source slice, never patched.
package derive

import (
	"sort"
	"strings"

	"github.com/pcnlabs/pcn/internal/models"
)

// SortKey names a sortable Project column
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByCompany   SortKey = "company"
	SortByStatus    SortKey = "status"
	SortByOwner     SortKey = "owner"
	SortByPriority  SortKey = "priority"
	SortByProgress  SortKey = "progress"
	SortByTeamSize  SortKey = "teamSize"
	SortByBudget    SortKey = "budget"
	SortByDeadline  SortKey = "deadline"
	SortByUpdatedAt SortKey = "updatedAt"
)

// Direction of a sort
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig is an active column sort. A nil *SortConfig means unsorted.
type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// RequestSort returns the config resulting from clicking a column header:
// a second click on an ascending column flips it to descending, anything
// else sorts ascending on the clicked column. Once a column has been
// clicked the list never returns to its unsorted order.
func RequestSort(current *SortConfig, key SortKey) SortConfig {
	if current != nil && current.Key == key && current.Direction == Asc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// Display filters and sorts projects for presentation. The input slice
// is never mutated; the result is always a fresh slice.
func Display(projects []models.Project, query string, cfg *SortConfig) []models.Project {
	items := make([]models.Project, len(projects))
	copy(items, projects)

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		filtered := items[:0]
		for _, p := range items {
			if matches(p, q) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	if cfg != nil {
		sort.SliceStable(items, func(i, j int) bool {
			c := compare(items[i], items[j], cfg.Key)
			if cfg.Direction == Desc {
				return c > 0
			}
			return c < 0
		})
	}

	return items
}

func matches(p models.Project, q string) bool {
	fields := []string{
		p.Name,
		p.Company,
		p.Owner,
		string(p.Status),
		string(p.Priority),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// compare orders two projects by one column: lexicographic for text,
// numeric for numbers. An unknown key compares equal, which leaves the
// affected entries where the stable sort found them.
func compare(a, b models.Project, key SortKey) int {
	switch key {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByCompany:
		return strings.Compare(a.Company, b.Company)
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case SortByOwner:
		return strings.Compare(a.Owner, b.Owner)
	case SortByPriority:
		return strings.Compare(string(a.Priority), string(b.Priority))
	case SortByDeadline:
		return strings.Compare(a.Deadline, b.Deadline)
	case SortByUpdatedAt:
		return strings.Compare(a.UpdatedAt, b.UpdatedAt)
	case SortByProgress:
		return compareInt(a.Progress, b.Progress)
	case SortByTeamSize:
		return compareInt(a.TeamSize, b.TeamSize)
	case SortByBudget:
		return compareFloat(a.Budget, b.Budget)
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
