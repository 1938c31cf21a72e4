package services

import (
	"errors"

	"github.com/jhachhotu/feedback/internal/models"
)

// ForbiddenError is the single denial outcome of the access policy. It carries
// the human-readable reason the boundary returns to the client unchanged.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

func IsForbidden(err error) bool {
	var denial *ForbiddenError
	return errors.As(err, &denial)
}

// FeedbackScope describes the record set a requester may read. The zero value
// is unrestricted; the repository applies it without any authorization
// knowledge of its own.
type FeedbackScope struct {
	ManagerID  *uint
	EmployeeID *uint
}

func (scope FeedbackScope) Unrestricted() bool {
	return scope.ManagerID == nil && scope.EmployeeID == nil
}

// ListFeedbackScope decides what a requester may list. Managers see what they
// authored, or the full system-wide set when includeAll is requested; the
// elevated mode is deliberately not limited to the requester's own team.
// Employees see what was addressed to them.
func ListFeedbackScope(requester *models.User, includeAll bool) (FeedbackScope, error) {
	if requester == nil {
		return FeedbackScope{}, forbidden("authentication required")
	}

	switch requester.Role {
	case models.RoleManager:
		if includeAll {
			return FeedbackScope{}, nil
		}
		managerID := requester.ID
		return FeedbackScope{ManagerID: &managerID}, nil
	case models.RoleEmployee:
		employeeID := requester.ID
		return FeedbackScope{EmployeeID: &employeeID}, nil
	default:
		return FeedbackScope{}, forbidden("unknown role")
	}
}

// CanCreateFeedback allows a manager to author feedback for a direct report
// only. The direct-report check is non-transitive.
func CanCreateFeedback(requester *models.User, employee *models.User) error {
	if requester == nil || requester.Role != models.RoleManager {
		return forbidden("Only managers can give feedback.")
	}
	if employee == nil || employee.ManagerID == nil || *employee.ManagerID != requester.ID {
		return forbidden("You can only give feedback to your own team.")
	}
	return nil
}

// CanAcknowledge allows only the subject employee to acknowledge a record.
func CanAcknowledge(requester *models.User, feedback *models.Feedback) error {
	if requester == nil || feedback == nil || requester.ID != feedback.EmployeeID {
		return forbidden("Only the addressed employee can acknowledge feedback.")
	}
	return nil
}

func CanViewTeamRoster(requester *models.User) error {
	if requester == nil || requester.Role != models.RoleManager {
		return forbidden("Only managers can view their team.")
	}
	return nil
}

func CanViewManagerDashboard(requester *models.User) error {
	if requester == nil || requester.Role != models.RoleManager {
		return forbidden("Only managers can view the manager dashboard.")
	}
	return nil
}

func CanViewEmployeeDashboard(requester *models.User) error {
	if requester == nil || requester.Role != models.RoleEmployee {
		return forbidden("Only employees can view the employee dashboard.")
	}
	return nil
}
