package services

import (
	"strings"

	"github.com/jhachhotu/feedback/internal/models"
)

// FeedbackInput is the write payload for a new feedback record, before the
// authoring manager is attached.
type FeedbackInput struct {
	EmployeeID       uint   `json:"employee"`
	Strengths        string `json:"strengths"`
	ImprovementAreas string `json:"improvement_areas"`
	Sentiment        string `json:"sentiment"`
}

// ValidateFeedbackInput normalizes the payload and reports field-level
// problems. An empty map means the input is acceptable.
func ValidateFeedbackInput(input *FeedbackInput) map[string]string {
	fieldErrors := make(map[string]string)

	input.Strengths = strings.TrimSpace(input.Strengths)
	input.ImprovementAreas = strings.TrimSpace(input.ImprovementAreas)
	input.Sentiment = strings.ToLower(strings.TrimSpace(input.Sentiment))

	if input.EmployeeID == 0 {
		fieldErrors["employee"] = "employee is required"
	}
	if input.Strengths == "" {
		fieldErrors["strengths"] = "strengths is required"
	}
	if input.ImprovementAreas == "" {
		fieldErrors["improvement_areas"] = "improvement_areas is required"
	}
	if !models.IsKnownSentiment(input.Sentiment) {
		fieldErrors["sentiment"] = "sentiment must be positive, neutral or negative"
	}

	return fieldErrors
}
