package models

// CompatibilityRule is the persisted form of the pairwise part constraints.
// The checker itself evaluates a fixed in-code table in a fixed order; these
// rows are seeded from it and served read-only for client display.
type CompatibilityRule struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ComponentType1   string `gorm:"not null" json:"component_type_1"`
	ComponentType2   string `gorm:"not null" json:"component_type_2"`
	CompatibilityKey string `gorm:"not null" json:"compatibility_key"`
	RuleDescription  string `gorm:"type:text" json:"rule_description"`
}
