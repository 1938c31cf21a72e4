package models

import "time"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Feedback is authored by a manager about one of their direct reports.
// ManagerID and CreatedAt are immutable after creation; Acknowledged only
// ever transitions false to true, by the subject employee.
type Feedback struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ManagerID        uint       `gorm:"not null;index" json:"manager"`
	EmployeeID       uint       `gorm:"not null;index" json:"employee"`
	Strengths        string     `gorm:"not null" json:"strengths"`
	ImprovementAreas string     `gorm:"not null" json:"improvement_areas"`
	Sentiment        string     `gorm:"not null" json:"sentiment"`
	Acknowledged     bool       `gorm:"not null;default:false" json:"acknowledged"`
	AcknowledgedAt   *time.Time `json:"acknowledged_at"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
}

func IsKnownSentiment(sentiment string) bool {
	switch sentiment {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}
