package store

import (
	"github.com/pcnlabs/pcn/internal/models"
)

// The fixed demo dataset the dashboard starts with.
var seedProjects = []models.Project{
	{
		ID: "1", Name: "Cloud Migration Phase 2", Company: "SkyNet Systems",
		Status: models.StatusActive, Progress: 65, Owner: "Sarah Chen",
		UpdatedAt: "2h ago", Priority: models.PriorityHigh, TeamSize: 12,
		Budget: 450000, MarketValue: 1200000, BusinessRequests: 24,
		Deadline: "2025-10-15",
		CalendarNotes: []models.CalendarNote{
			{ID: "n1", Date: "2025-05-10", Note: "Finalize server architecture", Author: "Sarah"},
			{ID: "n2", Date: "2025-05-12", Note: "Security handshake protocol review", Author: "Kevin"},
		},
	},
	{
		ID: "2", Name: "Q3 Brand Identity Refresh", Company: "Lumina Group",
		Status: models.StatusInReview, Progress: 92, Owner: "Marc Ramos",
		UpdatedAt: "5h ago", Priority: models.PriorityMedium, TeamSize: 5,
		Budget: 85000, MarketValue: 250000, BusinessRequests: 8,
		Deadline: "2025-06-01",
		CalendarNotes: []models.CalendarNote{
			{ID: "n3", Date: "2025-05-15", Note: "Client presentation for color palette", Author: "Marc"},
		},
	},
	{
		ID: "3", Name: "Internal HR Portal", Company: "PCN Internal",
		Status: models.StatusActive, Progress: 40, Owner: "Lena Weber",
		UpdatedAt: "1d ago", Priority: models.PriorityLow, TeamSize: 8,
		Budget: 120000, MarketValue: 0, BusinessRequests: 45,
		Deadline: "2025-12-20",
	},
	{
		ID: "4", Name: "API Security Audit", Company: "CyberGuard Inc",
		Status: models.StatusOnHold, Progress: 15, Owner: "Kevin Smith",
		UpdatedAt: "3d ago", Priority: models.PriorityHigh, TeamSize: 3,
		Budget: 35000, MarketValue: 500000, BusinessRequests: 12,
		Deadline: "2025-07-30",
		CalendarNotes: []models.CalendarNote{
			{ID: "n4", Date: "2025-05-20", Note: "Wait for firewall clearance", Author: "Kevin"},
		},
	},
}

var seedNotifications = []models.AppNotification{
	{ID: "nt1", Type: models.NotifMention, Message: "Sarah Chen mentioned you in Cloud Migration documentation.", Timestamp: "5m ago", IsRead: false, User: "Sarah Chen"},
	{ID: "nt2", Type: models.NotifUpdate, Message: "The status of Internal HR Portal was changed to Active.", Timestamp: "1h ago", IsRead: false},
	{ID: "nt3", Type: models.NotifSystem, Message: "Weekly enterprise backup completed successfully.", Timestamp: "3h ago", IsRead: true},
	{ID: "nt4", Type: models.NotifAlert, Message: "High priority: Security handshake protocol review scheduled for tomorrow.", Timestamp: "5h ago", IsRead: true},
	{ID: "nt5", Type: models.NotifMention, Message: "Marc Ramos tagged you in Q3 Brand Refresh.", Timestamp: "1d ago", IsRead: true, User: "Marc Ramos"},
}

var seedActivity = []models.Activity{
	{ID: "1", User: "Sarah Chen", Action: "uploaded 4 new assets to", Target: "Cloud Migration", Timestamp: "12m ago"},
	{ID: "2", User: "Marc Ramos", Action: "requested a review for", Target: "Brand Refresh", Timestamp: "45m ago"},
	{ID: "3", User: "System", Action: "automated backup completed for", Target: "HR Portal", Timestamp: "2h ago"},
	{ID: "4", User: "Lena Weber", Action: "commented on", Target: "Security Audit", Timestamp: "5h ago"},
}

// Seed loads the demo dataset. Inserts prepend, so the seed lists are
// walked back to front to preserve their display order.
func (s *Store) Seed() error {
	for i := len(seedProjects) - 1; i >= 0; i-- {
		if err := s.InsertProject(seedProjects[i]); err != nil {
			return err
		}
	}
	for i := len(seedNotifications) - 1; i >= 0; i-- {
		if err := s.PushNotification(seedNotifications[i]); err != nil {
			return err
		}
	}
	for _, a := range seedActivity {
		if err := s.AppendActivity(a); err != nil {
			return err
		}
	}
	return nil
}
