package services

import "github.com/jhachhotu/feedback/internal/models"

type DashboardUserReader interface {
	ListDirectReports(managerID uint) ([]models.User, error)
}

type DashboardFeedbackReader interface {
	FindByScope(scope FeedbackScope) ([]models.Feedback, error)
}

type DashboardService struct {
	users     DashboardUserReader
	feedbacks DashboardFeedbackReader
}

func NewDashboardService(users DashboardUserReader, feedbacks DashboardFeedbackReader) *DashboardService {
	return &DashboardService{
		users:     users,
		feedbacks: feedbacks,
	}
}

type TeamMemberOverview struct {
	EmployeeID        uint            `json:"employee_id"`
	Username          string          `json:"username"`
	FeedbackCount     int             `json:"feedback_count"`
	AcknowledgedCount int             `json:"acknowledged_count"`
	SentimentCounts   SentimentCounts `json:"sentiment_counts"`
}

type DashboardTotals struct {
	TeamSize          int             `json:"team_size"`
	FeedbackCount     int             `json:"feedback_count"`
	AcknowledgedCount int             `json:"acknowledged_count"`
	PendingCount      int             `json:"pending_count"`
	SentimentCounts   SentimentCounts `json:"sentiment_counts"`
}

type ManagerDashboard struct {
	TeamOverview []TeamMemberOverview `json:"team_overview"`
	Totals       DashboardTotals      `json:"totals"`
}

type EmployeeDashboard struct {
	Timeline        []models.Feedback `json:"timeline"`
	SentimentCounts SentimentCounts   `json:"sentiment_counts"`
}

// BuildManagerDashboard summarizes the requester's own-authored feedback per
// roster member, in roster order. Members without feedback yield zero-valued
// entries; an empty roster yields an empty overview, not an error.
func (service *DashboardService) BuildManagerDashboard(requester *models.User) (ManagerDashboard, error) {
	if err := CanViewManagerDashboard(requester); err != nil {
		return ManagerDashboard{}, err
	}

	roster, err := service.users.ListDirectReports(requester.ID)
	if err != nil {
		return ManagerDashboard{}, err
	}

	managerID := requester.ID
	authored, err := service.feedbacks.FindByScope(FeedbackScope{ManagerID: &managerID})
	if err != nil {
		return ManagerDashboard{}, err
	}

	byEmployee := make(map[uint][]models.Feedback, len(roster))
	for _, feedback := range authored {
		byEmployee[feedback.EmployeeID] = append(byEmployee[feedback.EmployeeID], feedback)
	}

	overview := make([]TeamMemberOverview, 0, len(roster))
	for _, member := range roster {
		memberFeedbacks := byEmployee[member.ID]
		acknowledgedCount, _ := CountAcknowledged(memberFeedbacks)
		overview = append(overview, TeamMemberOverview{
			EmployeeID:        member.ID,
			Username:          member.Username,
			FeedbackCount:     len(memberFeedbacks),
			AcknowledgedCount: acknowledgedCount,
			SentimentCounts:   CountSentiments(memberFeedbacks),
		})
	}

	acknowledgedTotal, pendingTotal := CountAcknowledged(authored)
	return ManagerDashboard{
		TeamOverview: overview,
		Totals: DashboardTotals{
			TeamSize:          len(roster),
			FeedbackCount:     len(authored),
			AcknowledgedCount: acknowledgedTotal,
			PendingCount:      pendingTotal,
			SentimentCounts:   CountSentiments(authored),
		},
	}, nil
}

// BuildEmployeeDashboard returns the requester's received feedback newest
// first, with the sentiment rollup over that same set.
func (service *DashboardService) BuildEmployeeDashboard(requester *models.User) (EmployeeDashboard, error) {
	if err := CanViewEmployeeDashboard(requester); err != nil {
		return EmployeeDashboard{}, err
	}

	employeeID := requester.ID
	received, err := service.feedbacks.FindByScope(FeedbackScope{EmployeeID: &employeeID})
	if err != nil {
		return EmployeeDashboard{}, err
	}

	return EmployeeDashboard{
		Timeline:        received,
		SentimentCounts: CountSentiments(received),
	}, nil
}
