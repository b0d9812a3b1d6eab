package domain

// SkillStatus is the progress state of a Skill.
type SkillStatus string

const (
	SkillStatusPlanned    SkillStatus = "Planned"
	SkillStatusInProgress SkillStatus = "In Progress"
	SkillStatusCompleted  SkillStatus = "Completed"
)

func (s SkillStatus) String() string { return string(s) }

func (s SkillStatus) IsValid() bool {
	switch s {
	case SkillStatusPlanned, SkillStatusInProgress, SkillStatusCompleted:
		return true
	}
	return false
}

// SkillSortField names a Skill field that listings may be ordered by.
type SkillSortField string

const (
	SkillSortTitle  SkillSortField = "title"
	SkillSortStatus SkillSortField = "status"
)

func (f SkillSortField) String() string { return string(f) }

func (f SkillSortField) IsValid() bool {
	switch f {
	case SkillSortTitle, SkillSortStatus:
		return true
	}
	return false
}

// SortOrder follows the document store convention: 1 ascending, -1 descending.
type SortOrder int

const (
	SortAsc  SortOrder = 1
	SortDesc SortOrder = -1
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
