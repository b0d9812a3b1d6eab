package module

import (
	"strings"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// AddModuleInput holds the parameters for creating a module.
type AddModuleInput struct {
	Title       string
	Description *string // nil or "" = domain.DefaultModuleDescription
	SkillID     string
}

// Validate checks all fields and collects all errors.
func (i AddModuleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.SkillID) == "" {
		errs = append(errs, domain.FieldError{Field: "skillId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i AddModuleInput) description() string {
	if i.Description == nil || *i.Description == "" {
		return domain.DefaultModuleDescription
	}
	return *i.Description
}
