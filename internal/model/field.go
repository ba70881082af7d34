package model

// Field is a career field grouping simulations. Static reference data,
// seeded once.
// swagger:model Field
type Field struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:16" json:"icon"`
	Color       string `gorm:"size:32" json:"color"`
}

func (Field) TableName() string {
	return "tech_fields"
}
