package funding

import (
	"strings"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// CreateEventInput holds the parameters for creating a crowdfunding event.
type CreateEventInput struct {
	Name         string
	Description  string
	FundingGoal  uint64
	DurationDays int
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > domain.MaxEventNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(i.Description) > domain.MaxEventDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}

	if i.FundingGoal == 0 {
		errs = append(errs, domain.FieldError{Field: "funding_goal", Message: "must be positive"})
	}
	if i.FundingGoal > domain.MaxFundingGoal {
		errs = append(errs, domain.FieldError{Field: "funding_goal", Message: "max 1000 units"})
	}

	if i.DurationDays <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration_days", Message: "must be positive"})
	}
	if i.DurationDays > domain.MaxDurationDays {
		errs = append(errs, domain.FieldError{Field: "duration_days", Message: "max 365 days"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddMilestoneInput holds the parameters for adding a milestone.
type AddMilestoneInput struct {
	EventID uint64
	Name    string
	Target  uint64
}

// Validate checks all fields and collects all errors.
func (i AddMilestoneInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Target == 0 {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
