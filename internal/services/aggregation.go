package services

import "github.com/jhachhotu/feedback/internal/models"

// SentimentCounts is the closed three-bucket rollup used by both dashboards.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// CountSentiments tallies feedback records into sentiment buckets. The
// taxonomy is closed, but a value outside it counts toward no bucket rather
// than faulting. Order of the input does not matter.
func CountSentiments(feedbacks []models.Feedback) SentimentCounts {
	counts := SentimentCounts{}
	for _, feedback := range feedbacks {
		switch feedback.Sentiment {
		case models.SentimentPositive:
			counts.Positive++
		case models.SentimentNeutral:
			counts.Neutral++
		case models.SentimentNegative:
			counts.Negative++
		}
	}
	return counts
}

// CountAcknowledged splits a feedback set into acknowledged and still-pending
// totals.
func CountAcknowledged(feedbacks []models.Feedback) (acknowledged int, pending int) {
	for _, feedback := range feedbacks {
		if feedback.Acknowledged {
			acknowledged++
		} else {
			pending++
		}
	}
	return acknowledged, pending
}
