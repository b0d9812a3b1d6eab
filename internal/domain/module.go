package domain

// DefaultModuleDescription is stored when a module is added without a description.
const DefaultModuleDescription = "No description provided"

// Module is a unit of content that belongs to exactly one Skill.
type Module struct {
	ID          string
	Title       string
	Description string
	SkillID     string
}
