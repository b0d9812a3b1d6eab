package domain

// Skill is a top-level learning topic.
type Skill struct {
	ID     string
	Title  string
	Status SkillStatus
}

// SkillUpdateParams holds the fields applied by a partial update.
// A nil field is left unchanged.
type SkillUpdateParams struct {
	Title  *string
	Status *SkillStatus
}

// IsEmpty reports whether no field would be changed.
func (p SkillUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Status == nil
}
