package store

import (
	"github.com/pcnlabs/pcn/internal/models"
)

// InsertProject adds a project at the head of the list. Progress is
// clamped before it reaches the table.
func (s *Store) InsertProject(p models.Project) error {
	_, err := s.Exec(`
		INSERT INTO projects (id, name, company, status, progress, owner,
			updated_at, priority, team_size, budget, market_value,
			business_requests, deadline, pos)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MIN(pos), 0) - 10 FROM projects))
	`, p.ID, p.Name, p.Company, string(p.Status), models.ClampProgress(p.Progress),
		p.Owner, p.UpdatedAt, string(p.Priority), p.TeamSize, p.Budget,
		p.MarketValue, p.BusinessRequests, p.Deadline)
	if err != nil {
		return err
	}

	for _, n := range p.CalendarNotes {
		if err := s.AddNote(p.ID, n); err != nil {
			return err
		}
	}
	return nil
}

// GetProject retrieves one project with its calendar notes
func (s *Store) GetProject(id string) (*models.Project, error) {
	p := &models.Project{}
	var status, priority string
	err := s.QueryRow(`
		SELECT id, name, company, status, progress, owner, updated_at,
			priority, team_size, budget, market_value, business_requests, deadline
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Company, &status, &p.Progress, &p.Owner,
		&p.UpdatedAt, &priority, &p.TeamSize, &p.Budget, &p.MarketValue,
		&p.BusinessRequests, &p.Deadline)
	if err != nil {
		return nil, err
	}
	p.Status = models.Status(status)
	p.Priority = models.Priority(priority)

	notes, err := s.ListNotes(p.ID)
	if err != nil {
		return nil, err
	}
	p.CalendarNotes = notes
	return p, nil
}

// ListProjects returns all projects, newest head first
func (s *Store) ListProjects() ([]models.Project, error) {
	rows, err := s.Query(`
		SELECT id, name, company, status, progress, owner, updated_at,
			priority, team_size, budget, market_value, business_requests, deadline
		FROM projects ORDER BY pos ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var status, priority string
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &status, &p.Progress,
			&p.Owner, &p.UpdatedAt, &priority, &p.TeamSize, &p.Budget,
			&p.MarketValue, &p.BusinessRequests, &p.Deadline); err != nil {
			return nil, err
		}
		p.Status = models.Status(status)
		p.Priority = models.Priority(priority)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProjectStatus changes a project's status
func (s *Store) UpdateProjectStatus(id string, status models.Status) error {
	_, err := s.Exec(`UPDATE projects SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// UpdateProjectPriority changes a project's priority
func (s *Store) UpdateProjectPriority(id string, priority models.Priority) error {
	_, err := s.Exec(`UPDATE projects SET priority = ? WHERE id = ?`, string(priority), id)
	return err
}

// ProjectCount returns the number of projects
func (s *Store) ProjectCount() (int, error) {
	var count int
	err := s.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

// CountByStatus returns how many projects carry the given status
func (s *Store) CountByStatus(status models.Status) (int, error) {
	var count int
	err := s.QueryRow("SELECT COUNT(*) FROM projects WHERE status = ?", string(status)).Scan(&count)
	return count, err
}
