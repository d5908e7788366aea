package models

// Category is a topic grouping for questions
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null;size:255" json:"type"`

	// Relationships
	Questions []Question `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
