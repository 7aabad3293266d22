package store

import (
	"github.com/pcnlabs/pcn/internal/models"
)

// AppendActivity adds an entry to the end of the activity feed
func (s *Store) AppendActivity(a models.Activity) error {
	_, err := s.Exec(`
		INSERT INTO activity (id, user, action, target, timestamp, pos)
		VALUES (?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(pos), 0) + 10 FROM activity))
	`, a.ID, a.User, a.Action, a.Target, a.Timestamp)
	return err
}

// ListActivity returns the team activity feed in display order
func (s *Store) ListActivity() ([]models.Activity, error) {
	rows, err := s.Query(`
		SELECT id, user, action, target, timestamp
		FROM activity ORDER BY pos ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.User, &a.Action, &a.Target, &a.Timestamp); err != nil {
			return nil, err
		}
		feed = append(feed, a)
	}
	return feed, rows.Err()
}
