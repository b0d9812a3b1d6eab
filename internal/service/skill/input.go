package skill

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// ListSkillsInput holds the optional listing parameters. Nil means default.
type ListSkillsInput struct {
	Title     *string
	Status    *string
	SortBy    *string
	SortOrder *int
	Page      *int
	Limit     *int
}

// Validate checks all fields and collects all errors.
func (i ListSkillsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && *i.Status != "" && !domain.SkillStatus(*i.Status).IsValid() {
		errs = append(errs, statusError("filter.status"))
	}
	if i.SortBy != nil && !domain.SkillSortField(*i.SortBy).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "must be one of: title, status"})
	}
	if i.SortOrder != nil && !domain.SortOrder(*i.SortOrder).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be 1 or -1"})
	}
	if i.Page != nil && *i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.Limit != nil && (*i.Limit < 1 || *i.Limit > MaxLimit) {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// filter converts validated input into a repository filter, applying defaults.
func (i ListSkillsInput) filter() domain.SkillFilter {
	f := domain.SkillFilter{
		SortBy:    domain.SkillSortTitle,
		SortOrder: domain.SortAsc,
	}

	if i.Title != nil && *i.Title != "" {
		f.Title = i.Title
	}
	if i.Status != nil && *i.Status != "" {
		status := domain.SkillStatus(*i.Status)
		f.Status = &status
	}
	if i.SortBy != nil {
		f.SortBy = domain.SkillSortField(*i.SortBy)
	}
	if i.SortOrder != nil {
		f.SortOrder = domain.SortOrder(*i.SortOrder)
	}

	page, limit := DefaultPage, DefaultLimit
	if i.Page != nil {
		page = *i.Page
	}
	if i.Limit != nil {
		limit = *i.Limit
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit

	return f
}

// AddSkillInput holds the parameters for creating a skill.
type AddSkillInput struct {
	Title  string
	Status *string // nil or empty = Planned
}

// Validate checks all fields and collects all errors.
func (i AddSkillInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Status != nil && *i.Status != "" && !domain.SkillStatus(*i.Status).IsValid() {
		errs = append(errs, statusError("status"))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSkillInput holds the parameters for a partial skill update.
// Empty strings are treated the same as absent fields.
type UpdateSkillInput struct {
	ID     string
	Title  *string
	Status *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSkillInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status != nil && *i.Status != "" && !domain.SkillStatus(*i.Status).IsValid() {
		errs = append(errs, statusError("status"))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// params converts validated input into repository update params,
// skipping empty values.
func (i UpdateSkillInput) params() domain.SkillUpdateParams {
	var p domain.SkillUpdateParams
	p.Title = nonEmpty(i.Title)
	if status := nonEmpty(i.Status); status != nil {
		s := domain.SkillStatus(*status)
		p.Status = &s
	}
	return p
}

func statusError(field string) domain.FieldError {
	return domain.FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s, %s, %s", domain.SkillStatusPlanned, domain.SkillStatusInProgress, domain.SkillStatusCompleted),
	}
}
