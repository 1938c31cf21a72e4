package services

import (
	"reflect"
	"testing"

	"github.com/jhachhotu/feedback/internal/models"
)

type fakeUserReader struct {
	reports map[uint][]models.User
}

func (reader *fakeUserReader) ListDirectReports(managerID uint) ([]models.User, error) {
	return reader.reports[managerID], nil
}

type fakeFeedbackReader struct {
	feedbacks []models.Feedback
}

func (reader *fakeFeedbackReader) FindByScope(scope FeedbackScope) ([]models.Feedback, error) {
	matched := make([]models.Feedback, 0)
	for _, feedback := range reader.feedbacks {
		if scope.ManagerID != nil && feedback.ManagerID != *scope.ManagerID {
			continue
		}
		if scope.EmployeeID != nil && feedback.EmployeeID != *scope.EmployeeID {
			continue
		}
		matched = append(matched, feedback)
	}
	return matched, nil
}

func uintRef(value uint) *uint {
	return &value
}

func TestBuildManagerDashboardScenario(t *testing.T) {
	manager := &models.User{ID: 1, Username: "manager1", Role: models.RoleManager}
	users := &fakeUserReader{reports: map[uint][]models.User{
		1: {
			{ID: 10, Username: "employee1", Role: models.RoleEmployee, ManagerID: uintRef(1)},
			{ID: 11, Username: "employee2", Role: models.RoleEmployee, ManagerID: uintRef(1)},
		},
	}}
	feedbacks := &fakeFeedbackReader{feedbacks: []models.Feedback{
		{ID: 1, ManagerID: 1, EmployeeID: 10, Sentiment: models.SentimentPositive},
		{ID: 2, ManagerID: 1, EmployeeID: 10, Sentiment: models.SentimentNegative, Acknowledged: true},
		{ID: 3, ManagerID: 1, EmployeeID: 11, Sentiment: models.SentimentNeutral},
		{ID: 4, ManagerID: 2, EmployeeID: 10, Sentiment: models.SentimentPositive},
	}}

	dashboard, err := NewDashboardService(users, feedbacks).BuildManagerDashboard(manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TeamMemberOverview{
		{
			EmployeeID:        10,
			Username:          "employee1",
			FeedbackCount:     2,
			AcknowledgedCount: 1,
			SentimentCounts:   SentimentCounts{Positive: 1, Negative: 1},
		},
		{
			EmployeeID:      11,
			Username:        "employee2",
			FeedbackCount:   1,
			SentimentCounts: SentimentCounts{Neutral: 1},
		},
	}
	if !reflect.DeepEqual(dashboard.TeamOverview, expected) {
		t.Fatalf("unexpected overview:\n got %+v\nwant %+v", dashboard.TeamOverview, expected)
	}

	if dashboard.Totals.TeamSize != 2 || dashboard.Totals.FeedbackCount != 3 {
		t.Fatalf("unexpected totals: %+v", dashboard.Totals)
	}
	if dashboard.Totals.AcknowledgedCount != 1 || dashboard.Totals.PendingCount != 2 {
		t.Fatalf("unexpected acknowledge totals: %+v", dashboard.Totals)
	}
	if dashboard.Totals.SentimentCounts != (SentimentCounts{Positive: 1, Neutral: 1, Negative: 1}) {
		t.Fatalf("unexpected sentiment totals: %+v", dashboard.Totals.SentimentCounts)
	}
}

func TestBuildManagerDashboardZeroFeedbackMemberStaysListed(t *testing.T) {
	manager := &models.User{ID: 1, Username: "manager1", Role: models.RoleManager}
	users := &fakeUserReader{reports: map[uint][]models.User{
		1: {{ID: 10, Username: "quiet", Role: models.RoleEmployee, ManagerID: uintRef(1)}},
	}}

	dashboard, err := NewDashboardService(users, &fakeFeedbackReader{}).BuildManagerDashboard(manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dashboard.TeamOverview) != 1 {
		t.Fatalf("expected one entry, got %d", len(dashboard.TeamOverview))
	}

	entry := dashboard.TeamOverview[0]
	if entry.FeedbackCount != 0 || entry.SentimentCounts != (SentimentCounts{}) {
		t.Fatalf("expected zero-valued entry, got %+v", entry)
	}
}

func TestBuildManagerDashboardEmptyRoster(t *testing.T) {
	manager := &models.User{ID: 9, Username: "solo", Role: models.RoleManager}

	dashboard, err := NewDashboardService(&fakeUserReader{}, &fakeFeedbackReader{}).BuildManagerDashboard(manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dashboard.TeamOverview) != 0 {
		t.Fatalf("expected empty overview, got %+v", dashboard.TeamOverview)
	}
}

func TestBuildManagerDashboardRejectsEmployee(t *testing.T) {
	employee := &models.User{ID: 3, Role: models.RoleEmployee}

	_, err := NewDashboardService(&fakeUserReader{}, &fakeFeedbackReader{}).BuildManagerDashboard(employee)
	if !IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestBuildEmployeeDashboard(t *testing.T) {
	employee := &models.User{ID: 10, Username: "employee1", Role: models.RoleEmployee, ManagerID: uintRef(1)}
	feedbacks := &fakeFeedbackReader{feedbacks: []models.Feedback{
		{ID: 2, ManagerID: 1, EmployeeID: 10, Sentiment: models.SentimentNegative},
		{ID: 1, ManagerID: 1, EmployeeID: 10, Sentiment: models.SentimentPositive},
		{ID: 3, ManagerID: 1, EmployeeID: 11, Sentiment: models.SentimentNeutral},
	}}

	dashboard, err := NewDashboardService(&fakeUserReader{}, feedbacks).BuildEmployeeDashboard(employee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dashboard.Timeline) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(dashboard.Timeline))
	}
	for _, feedback := range dashboard.Timeline {
		if feedback.EmployeeID != 10 {
			t.Fatalf("timeline leaked a foreign record: %+v", feedback)
		}
	}
	if dashboard.SentimentCounts != (SentimentCounts{Positive: 1, Negative: 1}) {
		t.Fatalf("unexpected sentiment counts: %+v", dashboard.SentimentCounts)
	}
}

func TestBuildEmployeeDashboardRejectsManager(t *testing.T) {
	manager := &models.User{ID: 1, Role: models.RoleManager}

	_, err := NewDashboardService(&fakeUserReader{}, &fakeFeedbackReader{}).BuildEmployeeDashboard(manager)
	if !IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
