package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pcnlabs/pcn/internal/models"
)

// PushNotification inserts a notification at the head of the panel
func (s *Store) PushNotification(n models.AppNotification) error {
	read := 0
	if n.IsRead {
		read = 1
	}
	_, err := s.Exec(`
		INSERT INTO notifications (id, type, message, timestamp, is_read, user, pos)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MIN(pos), 0) - 10 FROM notifications))
	`, n.ID, string(n.Type), n.Message, n.Timestamp, read, n.User)
	return err
}

// NotifyProjectCreated records the system notification for a freshly
// created project. It is unread and becomes the new head.
func (s *Store) NotifyProjectCreated(projectName string) error {
	return s.PushNotification(models.AppNotification{
		ID:        uuid.NewString(),
		Type:      models.NotifSystem,
		Message:   fmt.Sprintf("Entity %q has been successfully initiated.", projectName),
		Timestamp: "Just now",
		IsRead:    false,
	})
}

// ListNotifications returns all notifications, most recent first
func (s *Store) ListNotifications() ([]models.AppNotification, error) {
	rows, err := s.Query(`
		SELECT id, type, message, timestamp, is_read, user
		FROM notifications ORDER BY pos ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []models.AppNotification
	for rows.Next() {
		var n models.AppNotification
		var typ string
		var read int
		if err := rows.Scan(&n.ID, &typ, &n.Message, &n.Timestamp, &read, &n.User); err != nil {
			return nil, err
		}
		n.Type = models.NotificationType(typ)
		n.IsRead = read != 0
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkAllRead flags every notification as read. Running it again is a
// no-op; order is untouched either way.
func (s *Store) MarkAllRead() error {
	_, err := s.Exec(`UPDATE notifications SET is_read = 1`)
	return err
}

// HasUnread reports whether any notification is still unread
func (s *Store) HasUnread() (bool, error) {
	var n int
	err := s.QueryRow(`SELECT COUNT(*) FROM notifications WHERE is_read = 0`).Scan(&n)
	return n > 0, err
}
