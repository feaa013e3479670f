package model

// Category is a static topic grouping (Clothing, Animals, ...), seeded
// once and never mutated.
// swagger:model Category
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
