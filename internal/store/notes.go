package store

import (
	"github.com/pcnlabs/pcn/internal/models"
)

// AddNote appends a calendar note to a project
func (s *Store) AddNote(projectID string, n models.CalendarNote) error {
	_, err := s.Exec(`
		INSERT INTO calendar_notes (id, project_id, date, note, author)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID, projectID, n.Date, n.Note, n.Author)
	return err
}

// ListNotes returns a project's calendar notes in insertion order
func (s *Store) ListNotes(projectID string) ([]models.CalendarNote, error) {
	rows, err := s.Query(`
		SELECT id, date, note, author FROM calendar_notes
		WHERE project_id = ? ORDER BY rowid ASC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.CalendarNote{}
	for rows.Next() {
		var n models.CalendarNote
		if err := rows.Scan(&n.ID, &n.Date, &n.Note, &n.Author); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
