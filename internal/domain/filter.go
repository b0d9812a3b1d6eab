package domain

// SkillFilter contains filtering, ordering and pagination for skill listings.
type SkillFilter struct {
	Title     *string // case-insensitive substring
	Status    *SkillStatus
	SortBy    SkillSortField
	SortOrder SortOrder
	Limit     int
	Offset    int
}
