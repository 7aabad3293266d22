package store

import (
	"testing"

	"github.com/pcnlabs/pcn/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Seed())
	return s
}

func TestSeedOrder(t *testing.T) {
	s := newStore(t)

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 4)
	assert.Equal(t, "Cloud Migration Phase 2", projects[0].Name)
	assert.Equal(t, "API Security Audit", projects[3].Name)
}

func TestInsertProjectPrepends(t *testing.T) {
	s := newStore(t)

	p := models.Project{
		ID: "p-new", Name: "New Thing", Company: "Acme",
		Status: models.StatusActive, Owner: "Pat", UpdatedAt: "Just now",
		Priority: models.PriorityLow, TeamSize: 1, Deadline: "2025-09-01",
	}
	require.NoError(t, s.InsertProject(p))

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 5)
	assert.Equal(t, "p-new", projects[0].ID)
}

func TestInsertProjectClampsProgress(t *testing.T) {
	s := newStore(t)

	p := models.Project{
		ID: "p-over", Name: "Over", Company: "Acme",
		Status: models.StatusActive, Owner: "Pat", UpdatedAt: "Just now",
		Priority: models.PriorityLow, TeamSize: 1, Deadline: "2025-09-01",
		Progress: 140,
	}
	require.NoError(t, s.InsertProject(p))

	got, err := s.GetProject("p-over")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
}

func TestGetProjectLoadsNotes(t *testing.T) {
	s := newStore(t)

	p, err := s.GetProject("1")
	require.NoError(t, err)
	require.Len(t, p.CalendarNotes, 2)
	assert.Equal(t, "Finalize server architecture", p.CalendarNotes[0].Note)
	assert.Equal(t, "Security handshake protocol review", p.CalendarNotes[1].Note)
}

func TestAddNoteAppends(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.AddNote("1", models.CalendarNote{
		ID: "n-x", Date: "2025-06-01", Note: "Kickoff follow-up", Author: "Sarah",
	}))

	notes, err := s.ListNotes("1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "n-x", notes[2].ID)
}

func TestUpdateProjectStatusAndPriority(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.UpdateProjectStatus("4", models.StatusCompleted))
	require.NoError(t, s.UpdateProjectPriority("4", models.PriorityLow))

	p, err := s.GetProject("4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, p.Status)
	assert.Equal(t, models.PriorityLow, p.Priority)
}

func TestCountByStatus(t *testing.T) {
	s := newStore(t)

	n, err := s.CountByStatus(models.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNotificationSeedOrder(t *testing.T) {
	s := newStore(t)

	notifs, err := s.ListNotifications()
	require.NoError(t, err)
	require.Len(t, notifs, 5)
	assert.Equal(t, "nt1", notifs[0].ID)
	assert.Equal(t, "nt5", notifs[4].ID)
}

func TestPushNotificationBecomesHead(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.PushNotification(models.AppNotification{
		ID: "nt-x", Type: models.NotifAlert, Message: "New alert", Timestamp: "Just now",
	}))

	notifs, err := s.ListNotifications()
	require.NoError(t, err)
	assert.Equal(t, "nt-x", notifs[0].ID)
	assert.Equal(t, "nt1", notifs[1].ID)
}

func TestNotifyProjectCreated(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.NotifyProjectCreated("Orbital Uplink"))

	notifs, err := s.ListNotifications()
	require.NoError(t, err)
	head := notifs[0]
	assert.Equal(t, models.NotifSystem, head.Type)
	assert.False(t, head.IsRead)
	assert.Contains(t, head.Message, `"Orbital Uplink"`)
	assert.Contains(t, head.Message, "successfully initiated")
}

func TestMarkAllReadIdempotent(t *testing.T) {
	s := newStore(t)

	unread, err := s.HasUnread()
	require.NoError(t, err)
	assert.True(t, unread)

	require.NoError(t, s.MarkAllRead())
	once, err := s.ListNotifications()
	require.NoError(t, err)

	require.NoError(t, s.MarkAllRead())
	twice, err := s.ListNotifications()
	require.NoError(t, err)

	// Same collection both times: order untouched, everything read.
	assert.Equal(t, once, twice)
	for _, n := range twice {
		assert.True(t, n.IsRead)
	}

	unread, err = s.HasUnread()
	require.NoError(t, err)
	assert.False(t, unread)
}

func TestActivityFeedOrder(t *testing.T) {
	s := newStore(t)

	feed, err := s.ListActivity()
	require.NoError(t, err)
	require.Len(t, feed, 4)
	assert.Equal(t, "Sarah Chen", feed[0].User)
	assert.Equal(t, "Lena Weber", feed[3].User)
}
